package builder

import "fmt"

// BuildError represents a failure while rendering a sheet.
type BuildError struct {
	Sheet  string
	Column string // column or field name, empty for sheet-level failures
	Err    error
}

func (e *BuildError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("build error in sheet %q, column %q: %v", e.Sheet, e.Column, e.Err)
	}
	return fmt.Sprintf("build error in sheet %q: %v", e.Sheet, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(sheet, column string, err error) *BuildError {
	return &BuildError{
		Sheet:  sheet,
		Column: column,
		Err:    err,
	}
}
