package builder

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/omts-format/omtsexcel-go/pkg/omtsexcel/schema"
)

// defaultSheet is the sheet excelize seeds a new workbook with; the first
// declared sheet takes it over.
const defaultSheet = "Sheet1"

// Params configures workbook assembly.
type Params struct {
	// Author attributes the tooltip comments.
	Author string
	// BuildID is recorded in the document properties when non-empty.
	BuildID string
}

// DefaultParams returns default assembly parameters.
func DefaultParams() Params {
	return Params{Author: "OMTS"}
}

// Assemble validates the spec and renders it into a fresh workbook: every
// data sheet in generation order, then the instructions sheet, displayed
// first and active. The caller owns closing the returned file.
func Assemble(spec schema.TemplateSpec, params Params) (*excelize.File, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	if err := assemble(f, spec, params); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func assemble(f *excelize.File, spec schema.TemplateSpec, params Params) error {
	styles, err := NewStyleSet(f, spec.HeaderColor)
	if err != nil {
		return fmt.Errorf("register styles: %w", err)
	}

	for i, s := range spec.Sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, s.Title); err != nil {
				return NewBuildError(s.Title, "", err)
			}
		} else {
			if _, err := f.NewSheet(s.Title); err != nil {
				return NewBuildError(s.Title, "", err)
			}
		}
		if err := RenderSheet(f, s, styles, params.Author); err != nil {
			return err
		}
	}

	if err := renderInstructions(f, spec, styles); err != nil {
		return err
	}

	// Generation order ends with the instructions sheet; display order
	// starts with it.
	if err := f.MoveSheet(schema.InstructionsSheetName, spec.Sheets[0].Title); err != nil {
		return NewBuildError(schema.InstructionsSheetName, "", err)
	}
	idx, err := f.GetSheetIndex(schema.InstructionsSheetName)
	if err != nil {
		return NewBuildError(schema.InstructionsSheetName, "", err)
	}
	f.SetActiveSheet(idx)

	return setDocProps(f, spec, params)
}

func setDocProps(f *excelize.File, spec schema.TemplateSpec, params Params) error {
	props := &excelize.DocProperties{
		Title:       spec.Title,
		Creator:     "omtsexcel",
		Subject:     "OMTS " + spec.Name + " template",
		Version:     spec.Version,
		Identifier:  params.BuildID,
		Description: "Generated authoring template for the OMTS supply-chain disclosure format.",
	}
	if err := f.SetDocProps(props); err != nil {
		return fmt.Errorf("set document properties: %w", err)
	}
	return nil
}
