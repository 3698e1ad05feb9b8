package dataset

import (
	"errors"
	"fmt"
)

// Record is one row of the source dataset.
type Record struct {
	Abbr    string
	Poverty float64
	Smokes  float64
}

// Columns names the header fields a dataset is read from.
type Columns struct {
	Region  string
	Poverty string
	Smokes  string
}

// DefaultColumns matches the header of the census extract.
var DefaultColumns = Columns{Region: "abbr", Poverty: "poverty", Smokes: "smokes"}

var (
	ErrEmpty     = errors.New("dataset: empty csv")
	ErrNoRecords = errors.New("dataset: no records")
	ErrNotFinite = errors.New("dataset: value is not finite")
)

// ParseError reports a value that could not be coerced to a number.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset: line %d: column %q: invalid number %q", e.Line, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }
