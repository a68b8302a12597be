package omtsexcel

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant indicates a variant name outside the two declared
// template variants.
var ErrUnknownVariant = errors.New("unknown template variant")

// WriteError represents a failure while persisting a generated workbook.
// The partially written artifact has already been discarded when it is
// returned.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
