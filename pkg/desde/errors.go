package desde

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the configured sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrMissingColumn indicates a required column header was not found.
var ErrMissingColumn = errors.New("missing required column")

// LoadError represents an error while loading listings.
type LoadError struct {
	SheetName string
	Stage     string // "open", "sheet", "range", "header", "rows"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(sheetName, stage string, err error) *LoadError {
	return &LoadError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
