package cashflow

import (
	"fmt"
	"strings"
)

// SchemaError reports required input columns absent from the CSV header.
// The whole load fails before any row is processed.
type SchemaError struct {
	Missing []string // canonical lower-case names, in required-column order
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("csv is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ParseError reports a cell that could not be parsed. Line is 1-based and
// counts the header row, so it matches what an editor shows.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
