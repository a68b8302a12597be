package builder

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/omts-format/omtsexcel-go/pkg/omtsexcel/schema"
)

// Populate overlays the spec's example payload onto an assembled workbook.
// Writes are purely additive cell values: no styling, no constraints, no
// new sheets. The instructions sheet is not a SheetSpec, so it cannot be
// written to from here. Every value aimed at a constrained column is
// re-checked against the domain before it lands.
func Populate(f *excelize.File, spec schema.TemplateSpec) error {
	for _, s := range spec.Sheets {
		if err := populateSheet(f, s); err != nil {
			return err
		}
	}
	return nil
}

func populateSheet(f *excelize.File, s schema.SheetSpec) error {
	if s.Layout == schema.LayoutKeyValue {
		return populateFields(f, s)
	}
	if err := populateMetaBlock(f, s); err != nil {
		return err
	}
	byName := make(map[string]int, len(s.Columns))
	for i, c := range s.Columns {
		byName[c.Name] = i
	}
	for _, ex := range s.Examples {
		for _, name := range sortedKeys(ex.Cells) {
			idx, ok := byName[name]
			if !ok {
				return NewBuildError(s.Title, name, schema.ErrUnknownColumn)
			}
			value := ex.Cells[name]
			col := s.Columns[idx]
			if !schema.InDomain(col.Domain, fmt.Sprint(value)) {
				return NewBuildError(s.Title, name, fmt.Errorf("%w: %v", schema.ErrDomainMismatch, value))
			}
			cell, err := excelize.CoordinatesToCellName(idx+1, ex.Row)
			if err != nil {
				return NewBuildError(s.Title, name, err)
			}
			if err := f.SetCellValue(s.Title, cell, value); err != nil {
				return NewBuildError(s.Title, name, err)
			}
		}
	}
	return nil
}

// populateFields fills the value column of a key-value sheet from the
// sheet's meta examples.
func populateFields(f *excelize.File, s schema.SheetSpec) error {
	for i, field := range s.Fields {
		value, ok := s.MetaExamples[field.Key]
		if !ok || value == "" {
			continue
		}
		if !schema.InDomain(field.Domain, value) {
			return NewBuildError(s.Title, field.Key, fmt.Errorf("%w: %v", schema.ErrDomainMismatch, value))
		}
		cell := fmt.Sprintf("B%d", s.HeaderRow+1+i)
		if err := f.SetCellValue(s.Title, cell, value); err != nil {
			return NewBuildError(s.Title, field.Key, err)
		}
	}
	return nil
}

// populateMetaBlock fills the value cells of a metadata block, one column
// right of each label.
func populateMetaBlock(f *excelize.File, s schema.SheetSpec) error {
	for _, mc := range s.MetaBlock {
		value, ok := s.MetaExamples[mc.Label]
		if !ok || value == "" {
			continue
		}
		if !schema.InDomain(mc.Domain, value) {
			return NewBuildError(s.Title, mc.Label, fmt.Errorf("%w: %v", schema.ErrDomainMismatch, value))
		}
		cell, err := excelize.CoordinatesToCellName(mc.Col+1, mc.Row)
		if err != nil {
			return NewBuildError(s.Title, mc.Label, err)
		}
		if err := f.SetCellValue(s.Title, cell, value); err != nil {
			return NewBuildError(s.Title, mc.Label, err)
		}
	}
	return nil
}

func sortedKeys(cells map[string]any) []string {
	keys := make([]string, 0, len(cells))
	for k := range cells {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
