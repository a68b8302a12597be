// Package schema declares the sheet and column definitions for both OMTS
// template variants. It is pure data: the builder package renders it, the
// output package serializes it, and nothing here touches a workbook.
package schema

import (
	"errors"
	"fmt"
	"strings"
)

// InstructionsSheetName is the reserved name of the generated instructions
// sheet. Data sheets must not use it.
const InstructionsSheetName = "README"

// maxJoinedDomain is the longest comma-joined selection list Excel accepts
// for an inline list validation.
const maxJoinedDomain = 255

// ErrDomainValue indicates a domain member that cannot be encoded in a
// selection list (empty, or containing a comma or quote).
var ErrDomainValue = errors.New("invalid domain value")

// ErrDomainLength indicates a domain whose joined selection list exceeds
// the 255-character formula limit.
var ErrDomainLength = errors.New("domain too long for selection list")

// ErrDuplicateColumn indicates two columns or fields sharing a name within
// one sheet.
var ErrDuplicateColumn = errors.New("duplicate column name")

// ErrUnknownColumn indicates an example value keyed by an undeclared column
// or field name.
var ErrUnknownColumn = errors.New("example references unknown column")

// ErrDomainMismatch indicates an example value outside its column's domain.
var ErrDomainMismatch = errors.New("example value outside domain")

// ErrBadSheet indicates a structurally invalid sheet declaration.
var ErrBadSheet = errors.New("invalid sheet declaration")

// Layout selects how a sheet's rows are arranged.
type Layout string

const (
	// LayoutTable is a header row followed by data rows. The zero value of
	// Layout is treated as LayoutTable.
	LayoutTable Layout = "table"
	// LayoutKeyValue is a Field/Value/Description listing, one field per row.
	LayoutKeyValue Layout = "key-value"
)

// ColumnRef notes that a column's values are expected to match values
// produced in another sheet. Advisory only; nothing enforces it at
// generation time.
type ColumnRef struct {
	// Sheet is the referenced sheet, or a phrase like "any entity sheet".
	Sheet string `json:"sheet"`
	// Column is the referenced column name.
	Column string `json:"column"`
}

// ColumnSpec describes one column of a table-layout sheet.
type ColumnSpec struct {
	// Name is the stable machine-readable header written to the header row.
	Name string `json:"name"`
	// Required marks columns the importer insists on. Communicated through
	// styling and the instructions sheet, never enforced by validations.
	Required bool `json:"required"`
	// Domain is the closed set of allowed values, rendered as a dropdown.
	Domain []string `json:"domain,omitempty"`
	// Help is the tooltip text attached to the header cell.
	Help string `json:"help,omitempty"`
	// Ref is the advisory cross-sheet reference, if any.
	Ref *ColumnRef `json:"ref,omitempty"`
	// Width is the fixed column width in character units.
	Width float64 `json:"width,omitempty"`
	// PromptTitle and Prompt are shown when a constrained cell is selected.
	PromptTitle string `json:"prompt_title,omitempty"`
	Prompt      string `json:"prompt,omitempty"`
}

// FieldSpec describes one row of a key-value sheet.
type FieldSpec struct {
	// Key is the field name written to column A.
	Key string `json:"key"`
	// Required marks fields the importer insists on.
	Required bool `json:"required"`
	// Domain constrains the value cell, rendered as a dropdown.
	Domain []string `json:"domain,omitempty"`
	// Description is the explanatory text written to column C.
	Description string `json:"description"`
	// Help is the tooltip text attached to the key cell.
	Help string `json:"help,omitempty"`
	// Ref is the advisory cross-sheet reference, if any.
	Ref *ColumnRef `json:"ref,omitempty"`
}

// MetaCell describes one label/value pair of a metadata block placed above
// a table-layout sheet's header row. The value cell sits one column right
// of the label.
type MetaCell struct {
	Label string `json:"label"`
	// Row and Col locate the label cell (1-based).
	Row int `json:"row"`
	Col int `json:"col"`
	// Help is the tooltip text attached to the label cell.
	Help string `json:"help,omitempty"`
	// Domain constrains the value cell.
	Domain      []string `json:"domain,omitempty"`
	PromptTitle string   `json:"prompt_title,omitempty"`
	Prompt      string   `json:"prompt,omitempty"`
}

// ExampleRow is one row of literal example values, keyed by column name so
// the payload survives column reordering.
type ExampleRow struct {
	// Row is the 1-based sheet row the values are written to.
	Row int `json:"row"`
	// Cells maps column name to the literal value.
	Cells map[string]any `json:"cells"`
}

// SheetSpec describes one sheet of a template variant.
type SheetSpec struct {
	// Title is the sheet name shown on the tab.
	Title string `json:"title"`
	// Purpose is the one-line summary used by the instructions overview.
	Purpose string `json:"purpose,omitempty"`
	// Layout selects table or key-value rendering.
	Layout Layout `json:"layout,omitempty"`
	// HeaderRow is the 1-based row holding the column headers. 1 unless a
	// metadata block occupies the rows above.
	HeaderRow int `json:"header_row"`
	// Columns declares the table layout, in physical column order.
	Columns []ColumnSpec `json:"columns,omitempty"`
	// Fields declares the key-value layout, in row order.
	Fields []FieldSpec `json:"fields,omitempty"`
	// MetaBlock declares label/value pairs rendered above the header row.
	MetaBlock []MetaCell `json:"meta_block,omitempty"`
	// ColWidths sets widths by column letter for key-value sheets, whose
	// physical columns are not backed by ColumnSpecs.
	ColWidths map[string]float64 `json:"col_widths,omitempty"`
	// Examples is the fixed example payload for table rows.
	Examples []ExampleRow `json:"examples,omitempty"`
	// MetaExamples holds example values for fields and meta block labels,
	// keyed by field key or label.
	MetaExamples map[string]string `json:"meta_examples,omitempty"`
}

// NoteRow is one line of a static instructions section.
type NoteRow struct {
	Text   string `json:"text"`
	Detail string `json:"detail,omitempty"`
}

// NoteSection is a static instructions section with a heading.
type NoteSection struct {
	Heading string    `json:"heading"`
	Rows    []NoteRow `json:"rows"`
}

// Instructions holds the hand-authored parts of the instructions sheet.
// The required-fields and cross-sheet listings are always derived from the
// live sheet specs instead.
type Instructions struct {
	// Intro lines appear between the title and the derived sections.
	Intro []string `json:"intro,omitempty"`
	// Notes are appended after the derived sections.
	Notes []NoteSection `json:"notes,omitempty"`
}

// TemplateSpec is the complete declaration of one document variant.
type TemplateSpec struct {
	// Name identifies the variant ("full" or "supplier-list").
	Name string `json:"name"`
	// Version is the template compatibility version recorded in the
	// instructions sheet. Renaming or reordering a column without bumping
	// it is a breaking change for the importer.
	Version string `json:"version"`
	// Title is the workbook title, also used as the instructions heading.
	Title string `json:"title"`
	// HeaderColor is the RGB fill of header rows.
	HeaderColor string `json:"header_color"`
	// Sheets lists the data sheets in generation order. The instructions
	// sheet is synthesized by the assembler and is not declared here.
	Sheets []SheetSpec `json:"sheets"`
	// Instructions is the static instructions content.
	Instructions Instructions `json:"instructions"`
}

// InDomain reports whether a value is acceptable for a domain. Empty
// domains accept everything; empty values are always acceptable because
// validations allow blanks.
func InDomain(domain []string, value string) bool {
	if len(domain) == 0 || value == "" {
		return true
	}
	for _, m := range domain {
		if m == value {
			return true
		}
	}
	return false
}

// Validate checks the spec against the constraints the renderer depends on.
// A malformed domain would silently corrupt the rendered selection list, so
// generation must fail here instead.
func (t TemplateSpec) Validate() error {
	if t.Name == "" || t.Version == "" {
		return fmt.Errorf("%w: template name and version must be set", ErrBadSheet)
	}
	// The assembler reorders around Sheets[0] and a variant without data
	// sheets has nothing to render, so rule it out here.
	if len(t.Sheets) == 0 {
		return fmt.Errorf("%w: template %q declares no sheets", ErrBadSheet, t.Name)
	}
	seen := make(map[string]bool)
	for _, s := range t.Sheets {
		if s.Title == "" {
			return fmt.Errorf("%w: empty sheet title", ErrBadSheet)
		}
		if s.Title == InstructionsSheetName {
			return fmt.Errorf("%w: sheet title %q is reserved", ErrBadSheet, s.Title)
		}
		if seen[s.Title] {
			return fmt.Errorf("%w: duplicate sheet title %q", ErrBadSheet, s.Title)
		}
		seen[s.Title] = true
		if err := s.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s SheetSpec) validate() error {
	if s.HeaderRow < 1 {
		return fmt.Errorf("%w: sheet %q: header row %d", ErrBadSheet, s.Title, s.HeaderRow)
	}
	if s.Layout == LayoutKeyValue {
		return s.validateKeyValue()
	}
	return s.validateTable()
}

func (s SheetSpec) validateTable() error {
	if len(s.Columns) == 0 {
		return fmt.Errorf("%w: sheet %q has no columns", ErrBadSheet, s.Title)
	}
	byName := make(map[string]ColumnSpec, len(s.Columns))
	for _, c := range s.Columns {
		if c.Name == "" {
			return fmt.Errorf("%w: sheet %q: empty column name", ErrBadSheet, s.Title)
		}
		if _, dup := byName[c.Name]; dup {
			return fmt.Errorf("%w: %s.%s", ErrDuplicateColumn, s.Title, c.Name)
		}
		byName[c.Name] = c
		if err := checkDomain(s.Title, c.Name, c.Domain); err != nil {
			return err
		}
	}
	for _, mc := range s.MetaBlock {
		if mc.Row < 1 || mc.Col < 1 || mc.Row >= s.HeaderRow {
			return fmt.Errorf("%w: sheet %q: meta cell %q outside the block rows", ErrBadSheet, s.Title, mc.Label)
		}
		if err := checkDomain(s.Title, mc.Label, mc.Domain); err != nil {
			return err
		}
	}
	for _, ex := range s.Examples {
		if ex.Row <= s.HeaderRow {
			return fmt.Errorf("%w: sheet %q: example row %d overlaps the header", ErrBadSheet, s.Title, ex.Row)
		}
		for name, v := range ex.Cells {
			c, ok := byName[name]
			if !ok {
				return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, s.Title, name)
			}
			if !InDomain(c.Domain, fmt.Sprint(v)) {
				return fmt.Errorf("%w: %s.%s: %v", ErrDomainMismatch, s.Title, name, v)
			}
		}
	}
	return s.validateMetaExamples()
}

func (s SheetSpec) validateKeyValue() error {
	if len(s.Fields) == 0 {
		return fmt.Errorf("%w: sheet %q has no fields", ErrBadSheet, s.Title)
	}
	if len(s.Columns) > 0 || len(s.MetaBlock) > 0 {
		return fmt.Errorf("%w: sheet %q mixes layouts", ErrBadSheet, s.Title)
	}
	keys := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Key == "" {
			return fmt.Errorf("%w: sheet %q: empty field key", ErrBadSheet, s.Title)
		}
		if keys[f.Key] {
			return fmt.Errorf("%w: %s.%s", ErrDuplicateColumn, s.Title, f.Key)
		}
		keys[f.Key] = true
		if err := checkDomain(s.Title, f.Key, f.Domain); err != nil {
			return err
		}
	}
	return s.validateMetaExamples()
}

// validateMetaExamples checks that every meta example targets a declared
// field or meta block label and respects its domain.
func (s SheetSpec) validateMetaExamples() error {
	for key, v := range s.MetaExamples {
		domain, ok := s.metaDomain(key)
		if !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, s.Title, key)
		}
		if !InDomain(domain, v) {
			return fmt.Errorf("%w: %s.%s: %v", ErrDomainMismatch, s.Title, key, v)
		}
	}
	return nil
}

func (s SheetSpec) metaDomain(key string) ([]string, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f.Domain, true
		}
	}
	for _, mc := range s.MetaBlock {
		if mc.Label == key {
			return mc.Domain, true
		}
	}
	return nil, false
}

func checkDomain(sheet, column string, domain []string) error {
	if len(domain) == 0 {
		return nil
	}
	for _, m := range domain {
		if m == "" {
			return fmt.Errorf("%w: %s.%s: empty member", ErrDomainValue, sheet, column)
		}
		if strings.ContainsAny(m, `,"`) {
			return fmt.Errorf("%w: %s.%s: %q", ErrDomainValue, sheet, column, m)
		}
	}
	if len(strings.Join(domain, ",")) > maxJoinedDomain {
		return fmt.Errorf("%w: %s.%s", ErrDomainLength, sheet, column)
	}
	return nil
}
