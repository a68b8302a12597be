// Package builder renders template specs into styled xlsx workbooks.
package builder

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/omts-format/omtsexcel-go/pkg/omtsexcel/schema"
)

const (
	// lastDataRow bounds every selection constraint. Whole-column ranges
	// bloat the file; 10000 rows covers realistic supplier lists.
	lastDataRow = 10000
	// headerRowHeight leaves room for wrapped header names.
	headerRowHeight = 30
	// invalidValueTitle heads the rejection dialog of every constraint.
	invalidValueTitle = "Invalid value"
)

// RenderSheet renders one sheet according to its layout. The sheet must
// already exist in the workbook under s.Title.
func RenderSheet(f *excelize.File, s schema.SheetSpec, styles *StyleSet, author string) error {
	if s.Layout == schema.LayoutKeyValue {
		return renderKeyValue(f, s, styles, author)
	}
	if err := renderTable(f, s, styles, author); err != nil {
		return err
	}
	return renderMetaBlock(f, s, styles, author)
}

// renderTable writes the header row, required-column tinting, widths, the
// filter controls, and one constraint and tooltip per declared column.
func renderTable(f *excelize.File, s schema.SheetSpec, styles *StyleSet, author string) error {
	for i, col := range s.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, s.HeaderRow)
		if err != nil {
			return NewBuildError(s.Title, col.Name, err)
		}
		if err := f.SetCellValue(s.Title, cell, col.Name); err != nil {
			return NewBuildError(s.Title, col.Name, err)
		}
	}

	// Tint required columns before styling the header cells: SetColStyle
	// replaces any cell styles already present in the column.
	for i, col := range s.Columns {
		if !col.Required {
			continue
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return NewBuildError(s.Title, col.Name, err)
		}
		if err := f.SetColStyle(s.Title, name, styles.RequiredCol); err != nil {
			return NewBuildError(s.Title, col.Name, err)
		}
		// The tint covers the data region only; rows above the header keep
		// the default style so a metadata block can apply its own shading.
		if s.HeaderRow > 1 {
			top := name + "1"
			above := fmt.Sprintf("%s%d", name, s.HeaderRow-1)
			if err := f.SetCellStyle(s.Title, top, above, 0); err != nil {
				return NewBuildError(s.Title, col.Name, err)
			}
		}
	}

	first, err := excelize.CoordinatesToCellName(1, s.HeaderRow)
	if err != nil {
		return NewBuildError(s.Title, "", err)
	}
	last, err := excelize.CoordinatesToCellName(len(s.Columns), s.HeaderRow)
	if err != nil {
		return NewBuildError(s.Title, "", err)
	}
	if err := f.SetCellStyle(s.Title, first, last, styles.Header); err != nil {
		return NewBuildError(s.Title, "", err)
	}
	if err := f.SetRowHeight(s.Title, s.HeaderRow, headerRowHeight); err != nil {
		return NewBuildError(s.Title, "", err)
	}

	for i, col := range s.Columns {
		if col.Width <= 0 {
			continue
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return NewBuildError(s.Title, col.Name, err)
		}
		if err := f.SetColWidth(s.Title, name, name, col.Width); err != nil {
			return NewBuildError(s.Title, col.Name, err)
		}
	}

	// Filter controls over exactly the header row.
	if err := f.AutoFilter(s.Title, first+":"+last, nil); err != nil {
		return NewBuildError(s.Title, "", err)
	}

	for i, col := range s.Columns {
		if len(col.Domain) > 0 {
			if err := applyConstraint(f, s.Title, i+1, s.HeaderRow+1, col); err != nil {
				return NewBuildError(s.Title, col.Name, err)
			}
		}
		if col.Help != "" {
			cell, err := excelize.CoordinatesToCellName(i+1, s.HeaderRow)
			if err != nil {
				return NewBuildError(s.Title, col.Name, err)
			}
			if err := attachHelp(f, s.Title, cell, col.Help, author); err != nil {
				return NewBuildError(s.Title, col.Name, err)
			}
		}
	}
	return nil
}

// applyConstraint attaches one selection-list constraint to a column's data
// region, rows firstRow through lastDataRow. Blanks stay valid; rejected
// entries see the full domain.
func applyConstraint(f *excelize.File, sheet string, colIdx, firstRow int, col schema.ColumnSpec) error {
	name, err := excelize.ColumnNumberToName(colIdx)
	if err != nil {
		return err
	}
	dv := excelize.NewDataValidation(true)
	dv.Sqref = fmt.Sprintf("%s%d:%s%d", name, firstRow, name, lastDataRow)
	if err := dv.SetDropList(col.Domain); err != nil {
		return err
	}
	dv.SetError(excelize.DataValidationErrorStyleStop, invalidValueTitle, domainGuidance(col.Domain))
	if col.PromptTitle != "" || col.Prompt != "" {
		dv.SetInput(col.PromptTitle, col.Prompt)
	}
	return f.AddDataValidation(sheet, dv)
}

// cellConstraint is the single-cell counterpart of applyConstraint, used
// for key-value value cells and metadata block value cells.
func cellConstraint(f *excelize.File, sheet, cell string, domain []string, promptTitle, prompt string) error {
	dv := excelize.NewDataValidation(true)
	dv.Sqref = cell
	if err := dv.SetDropList(domain); err != nil {
		return err
	}
	dv.SetError(excelize.DataValidationErrorStyleStop, invalidValueTitle, domainGuidance(domain))
	if promptTitle != "" || prompt != "" {
		dv.SetInput(promptTitle, prompt)
	}
	return f.AddDataValidation(sheet, dv)
}

func domainGuidance(domain []string) string {
	return "Must be one of: " + strings.Join(domain, ", ")
}

// attachHelp attaches a tooltip comment to a header cell. Help never goes
// on data cells.
func attachHelp(f *excelize.File, sheet, cell, text, author string) error {
	return f.AddComment(sheet, excelize.Comment{
		Cell:   cell,
		Author: author,
		Paragraph: []excelize.RichTextRun{
			{Text: text},
		},
	})
}

// renderMetaBlock renders the label/value pairs above a table sheet's
// header row, shading the block's full extent.
func renderMetaBlock(f *excelize.File, s schema.SheetSpec, styles *StyleSet, author string) error {
	if len(s.MetaBlock) == 0 {
		return nil
	}

	maxRow, maxCol := 1, 1
	for _, mc := range s.MetaBlock {
		if mc.Row > maxRow {
			maxRow = mc.Row
		}
		if mc.Col+1 > maxCol {
			maxCol = mc.Col + 1
		}
	}
	blockEnd, err := excelize.CoordinatesToCellName(maxCol, maxRow)
	if err != nil {
		return NewBuildError(s.Title, "", err)
	}
	if err := f.SetCellStyle(s.Title, "A1", blockEnd, styles.MetaFill); err != nil {
		return NewBuildError(s.Title, "", err)
	}

	for _, mc := range s.MetaBlock {
		labelCell, err := excelize.CoordinatesToCellName(mc.Col, mc.Row)
		if err != nil {
			return NewBuildError(s.Title, mc.Label, err)
		}
		valueCell, err := excelize.CoordinatesToCellName(mc.Col+1, mc.Row)
		if err != nil {
			return NewBuildError(s.Title, mc.Label, err)
		}
		if err := f.SetCellValue(s.Title, labelCell, mc.Label); err != nil {
			return NewBuildError(s.Title, mc.Label, err)
		}
		if err := f.SetCellStyle(s.Title, labelCell, labelCell, styles.MetaLabel); err != nil {
			return NewBuildError(s.Title, mc.Label, err)
		}
		if err := f.SetCellStyle(s.Title, valueCell, valueCell, styles.MetaValue); err != nil {
			return NewBuildError(s.Title, mc.Label, err)
		}
		if len(mc.Domain) > 0 {
			if err := cellConstraint(f, s.Title, valueCell, mc.Domain, mc.PromptTitle, mc.Prompt); err != nil {
				return NewBuildError(s.Title, mc.Label, err)
			}
		}
		if mc.Help != "" {
			if err := attachHelp(f, s.Title, labelCell, mc.Help, author); err != nil {
				return NewBuildError(s.Title, mc.Label, err)
			}
		}
	}
	return nil
}
