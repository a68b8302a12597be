package omtsexcel

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/omts-format/omtsexcel-go/pkg/omtsexcel/builder"
	"github.com/omts-format/omtsexcel-go/pkg/omtsexcel/schema"
)

// Template returns the declared spec for a variant.
func Template(variant Variant) (schema.TemplateSpec, error) {
	switch variant {
	case VariantFull:
		return schema.Full(), nil
	case VariantSupplierList:
		return schema.SupplierList(), nil
	}
	return schema.TemplateSpec{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
}

// Build generates one template variant in memory. The caller owns closing
// the returned file.
func Build(variant Variant, opts Options) (*excelize.File, error) {
	spec, err := Template(variant)
	if err != nil {
		return nil, err
	}
	f, err := builder.Assemble(spec, builder.Params{
		Author:  opts.CommentAuthor(),
		BuildID: opts.BuildID,
	})
	if err != nil {
		return nil, err
	}
	if opts.WithExamples {
		if err := builder.Populate(f, spec); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// Write generates one template variant and persists it to path. The write
// is the only I/O of a generation run; on failure the partial artifact is
// removed and the returned error carries the target path.
func Write(variant Variant, path string, opts Options) error {
	f, err := Build(variant, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	out, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := f.Write(out); err != nil {
		out.Close()
		os.Remove(path)
		return &WriteError{Path: path, Err: err}
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
