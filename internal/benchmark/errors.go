package benchmark

import "fmt"

// ColumnError reports a required column missing from the input table.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

// CellError reports a cell that could not be parsed as a number.
type CellError struct {
	Row    int // zero-based data row
	Column string
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %q: invalid number %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }
