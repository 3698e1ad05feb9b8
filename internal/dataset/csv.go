package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load opens path and parses it with Parse.
func Load(path string, cols Columns) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()
	return Parse(f, cols)
}

// Parse reads a headed CSV and returns one Record per data row.
// Header matching is case-insensitive; unknown columns are ignored.
func Parse(r io.Reader, cols Columns) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	idxAbbr, idxPov, idxSmk := -1, -1, -1
	for i, h := range header {
		lh := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		switch lh {
		case strings.ToLower(cols.Region):
			if idxAbbr == -1 {
				idxAbbr = i
			}
		case strings.ToLower(cols.Poverty):
			if idxPov == -1 {
				idxPov = i
			}
		case strings.ToLower(cols.Smokes):
			if idxSmk == -1 {
				idxSmk = i
			}
		}
	}
	var missing []string
	if idxAbbr == -1 {
		missing = append(missing, cols.Region)
	}
	if idxPov == -1 {
		missing = append(missing, cols.Poverty)
	}
	if idxSmk == -1 {
		missing = append(missing, cols.Smokes)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset: columns not found: %s", strings.Join(missing, ", "))
	}

	var out []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		field := func(i int) string {
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		// file line of field i; short rows fall back to the row's first field
		line := func(i int) int {
			if i >= len(row) {
				i = 0
			}
			l, _ := cr.FieldPos(i)
			return l
		}
		pov, err := parseValue(field(idxPov))
		if err != nil {
			return nil, &ParseError{Line: line(idxPov), Column: cols.Poverty, Value: field(idxPov), Err: err}
		}
		smk, err := parseValue(field(idxSmk))
		if err != nil {
			return nil, &ParseError{Line: line(idxSmk), Column: cols.Smokes, Value: field(idxSmk), Err: err}
		}
		out = append(out, Record{Abbr: field(idxAbbr), Poverty: pov, Smokes: smk})
	}
	if len(out) == 0 {
		return nil, ErrNoRecords
	}
	return out, nil
}

// parseValue accepts finite numbers only; NaN and Inf spellings are rejected.
func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}
