// internal/dataset/errors.go
package dataset

import (
	"errors"
	"fmt"
)

// Source errors
var (
	// ErrDataSourceUnavailable indicates the dataset file could not be opened or read
	ErrDataSourceUnavailable = errors.New("data source unavailable")

	// ErrMissingColumn indicates a required column is absent from the header
	ErrMissingColumn = errors.New("missing required column")
)

// Value errors
var (
	// ErrMalformedTimestamp indicates a Start Time value matched none of the known layouts
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrMalformedNumber indicates a numeric column held a non-numeric value
	ErrMalformedNumber = errors.New("malformed number")
)

// Access errors
var (
	// ErrMissingOptionalField indicates demographic data was requested from a
	// dataset that does not carry it
	ErrMissingOptionalField = errors.New("dataset has no demographic fields")
)

// RowError reports which cell of the source failed to parse.
type RowError struct {
	Row    int // 1-based data row, header excluded
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column %q: cannot parse %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
