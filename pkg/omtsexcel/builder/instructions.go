package builder

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"

	"github.com/omts-format/omtsexcel-go/pkg/omtsexcel/schema"
)

// instructionLine is one row of the instructions sheet: column A text and
// an optional column B detail.
type instructionLine struct {
	text   string
	detail string
}

// renderInstructions synthesizes the instructions sheet from the whole
// template spec. The sheet overview, required fields, and cross-sheet
// reference listings are derived from the live sheet specs every time, so
// they cannot drift from the schema.
func renderInstructions(f *excelize.File, spec schema.TemplateSpec, styles *StyleSet) error {
	sheet := schema.InstructionsSheetName
	if _, err := f.NewSheet(sheet); err != nil {
		return NewBuildError(sheet, "", err)
	}

	for i, line := range instructionLines(spec) {
		row := i + 1
		cellA := fmt.Sprintf("A%d", row)
		cellB := fmt.Sprintf("B%d", row)
		if line.text != "" {
			if err := f.SetCellValue(sheet, cellA, line.text); err != nil {
				return NewBuildError(sheet, "", err)
			}
		}
		if line.detail != "" {
			if err := f.SetCellValue(sheet, cellB, line.detail); err != nil {
				return NewBuildError(sheet, "", err)
			}
		}
		if err := f.SetCellStyle(sheet, cellA, cellA, lineStyle(styles, row, line.text)); err != nil {
			return NewBuildError(sheet, "", err)
		}
		if err := f.SetCellStyle(sheet, cellB, cellB, styles.Normal); err != nil {
			return NewBuildError(sheet, "", err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 50); err != nil {
		return NewBuildError(sheet, "", err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 60); err != nil {
		return NewBuildError(sheet, "", err)
	}
	return nil
}

// instructionLines assembles the full line sequence: title, intro, derived
// sections, static note sections, and the version stamp.
func instructionLines(spec schema.TemplateSpec) []instructionLine {
	var lines []instructionLine
	add := func(text, detail string) {
		lines = append(lines, instructionLine{text: text, detail: detail})
	}

	add(spec.Title, "")
	add("", "")
	for _, intro := range spec.Instructions.Intro {
		add(intro, "")
	}
	add("", "")

	add("SHEET OVERVIEW", "")
	for _, s := range spec.Sheets {
		add(s.Title, s.Purpose)
	}
	add("", "")

	add("REQUIRED FIELDS", "")
	for _, s := range spec.Sheets {
		if req := requiredNames(s); len(req) > 0 {
			add(s.Title, strings.Join(req, ", "))
		}
	}
	add("", "")

	if refs := referenceLines(spec); len(refs) > 0 {
		add("CROSS-SHEET REFERENCES", "")
		lines = append(lines, refs...)
		add("", "")
	}

	for _, sec := range spec.Instructions.Notes {
		add(sec.Heading, "")
		for _, r := range sec.Rows {
			add(r.Text, r.Detail)
		}
		add("", "")
	}

	add("SPEC VERSION", "")
	add("This template targets OMTS spec version "+spec.Version, "")
	return lines
}

// requiredNames lists a sheet's required column or field names in declared
// order.
func requiredNames(s schema.SheetSpec) []string {
	var names []string
	for _, c := range s.Columns {
		if c.Required {
			names = append(names, c.Name)
		}
	}
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Key)
		}
	}
	return names
}

// referenceLines lists every declared cross-sheet reference in generation
// order.
func referenceLines(spec schema.TemplateSpec) []instructionLine {
	var lines []instructionLine
	add := func(sheet, name string, ref *schema.ColumnRef) {
		if ref == nil {
			return
		}
		lines = append(lines, instructionLine{
			text:   sheet + "." + name,
			detail: fmt.Sprintf("must match %s values in %s", ref.Column, ref.Sheet),
		})
	}
	for _, s := range spec.Sheets {
		for _, c := range s.Columns {
			add(s.Title, c.Name, c.Ref)
		}
		for _, f := range s.Fields {
			add(s.Title, f.Key, f.Ref)
		}
	}
	return lines
}

// lineStyle classifies a line the way the sheet is meant to read: the first
// row is the title, all-caps rows are section headings, indented rows are
// command or listing text.
func lineStyle(styles *StyleSet, row int, text string) int {
	switch {
	case row == 1:
		return styles.Title
	case isSectionHeading(text):
		return styles.Section
	case strings.HasPrefix(text, "    ") || strings.HasPrefix(text, "  -"):
		return styles.Code
	default:
		return styles.Normal
	}
}

// isSectionHeading reports whether a line is all uppercase with at least
// one letter.
func isSectionHeading(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
