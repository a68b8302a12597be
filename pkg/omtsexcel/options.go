// Package omtsexcel generates the OMTS Excel authoring templates.
package omtsexcel

// Variant selects which template document to generate.
type Variant string

const (
	// VariantFull is the normalized multi-sheet graph template.
	VariantFull Variant = "full"
	// VariantSupplierList is the denormalized single-sheet supplier list.
	VariantSupplierList Variant = "supplier-list"
)

// DefaultAuthor attributes the tooltip comments when Options.Author is
// unset.
const DefaultAuthor = "OMTS"

// Options configures generation behavior.
type Options struct {
	// WithExamples overlays the worked example dataset onto the template.
	WithExamples bool
	// Author attributes the tooltip comments. Empty means DefaultAuthor.
	Author string
	// BuildID is stamped into the document properties when non-empty, so a
	// generated artifact can be traced back to the run that produced it.
	BuildID string
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{}
}

// CommentAuthor returns the comment author to use.
func (o Options) CommentAuthor() string {
	if o.Author != "" {
		return o.Author
	}
	return DefaultAuthor
}
