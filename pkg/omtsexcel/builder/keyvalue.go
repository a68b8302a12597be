package builder

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/omts-format/omtsexcel-go/pkg/omtsexcel/schema"
)

// kvHeaders are the fixed physical columns of a key-value sheet.
var kvHeaders = [3]string{"Field", "Value", "Description"}

// renderKeyValue renders a Field/Value/Description sheet: one field per
// row, the value cell left blank for entry, constrained where the field
// declares a domain.
func renderKeyValue(f *excelize.File, s schema.SheetSpec, styles *StyleSet, author string) error {
	for i, h := range kvHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, s.HeaderRow)
		if err != nil {
			return NewBuildError(s.Title, h, err)
		}
		if err := f.SetCellValue(s.Title, cell, h); err != nil {
			return NewBuildError(s.Title, h, err)
		}
	}
	first, err := excelize.CoordinatesToCellName(1, s.HeaderRow)
	if err != nil {
		return NewBuildError(s.Title, "", err)
	}
	last, err := excelize.CoordinatesToCellName(len(kvHeaders), s.HeaderRow)
	if err != nil {
		return NewBuildError(s.Title, "", err)
	}
	if err := f.SetCellStyle(s.Title, first, last, styles.HeaderBare); err != nil {
		return NewBuildError(s.Title, "", err)
	}

	for i, field := range s.Fields {
		row := s.HeaderRow + 1 + i
		keyCell := fmt.Sprintf("A%d", row)
		valueCell := fmt.Sprintf("B%d", row)
		descCell := fmt.Sprintf("C%d", row)

		if err := f.SetCellValue(s.Title, keyCell, field.Key); err != nil {
			return NewBuildError(s.Title, field.Key, err)
		}
		if err := f.SetCellValue(s.Title, descCell, field.Description); err != nil {
			return NewBuildError(s.Title, field.Key, err)
		}
		if err := f.SetCellStyle(s.Title, keyCell, keyCell, styles.Key); err != nil {
			return NewBuildError(s.Title, field.Key, err)
		}
		if err := f.SetCellStyle(s.Title, valueCell, valueCell, styles.Cell); err != nil {
			return NewBuildError(s.Title, field.Key, err)
		}
		if err := f.SetCellStyle(s.Title, descCell, descCell, styles.Desc); err != nil {
			return NewBuildError(s.Title, field.Key, err)
		}
		if len(field.Domain) > 0 {
			if err := cellConstraint(f, s.Title, valueCell, field.Domain, "", ""); err != nil {
				return NewBuildError(s.Title, field.Key, err)
			}
		}
		if field.Help != "" {
			if err := attachHelp(f, s.Title, keyCell, field.Help, author); err != nil {
				return NewBuildError(s.Title, field.Key, err)
			}
		}
	}

	cols := make([]string, 0, len(s.ColWidths))
	for col := range s.ColWidths {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		if err := f.SetColWidth(s.Title, col, col, s.ColWidths[col]); err != nil {
			return NewBuildError(s.Title, "", err)
		}
	}
	return nil
}
