// Package dataset provides the tabular row collections the reconciler
// operates on. A Dataset is built from an uploaded CSV or XLSX file and
// keeps every column from the source so exports can round-trip columns the
// core logic never touches.
package dataset

import (
	"fmt"
	"strings"
)

// Dataset is an ordered collection of rows with named columns.
// Cell values are kept as strings; numeric interpretation happens at the
// point of use.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// New creates an empty dataset with the given columns.
func New(columns []string) *Dataset {
	return &Dataset{Columns: columns}
}

// SchemaError reports a required column missing from an input collection.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column %q not found", e.Column)
}

// ParseError reports an input that could not be read as tabular data.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ColumnIndex looks up a column by name, ignoring case and surrounding
// whitespace. Upstream exports are inconsistent about header casing.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, col := range d.Columns {
		if strings.ToLower(strings.TrimSpace(col)) == want {
			return i, true
		}
	}
	return 0, false
}

// RequireColumn is ColumnIndex that fails with a SchemaError when the
// column is absent.
func (d *Dataset) RequireColumn(name string) (int, error) {
	idx, ok := d.ColumnIndex(name)
	if !ok {
		return 0, &SchemaError{Column: name}
	}
	return idx, nil
}

// ColumnsWithPrefix returns the indexes of all columns whose name starts
// with the given prefix (case-sensitive, matching the source export's
// labeling).
func (d *Dataset) ColumnsWithPrefix(prefix string) []int {
	var idxs []int
	for i, col := range d.Columns {
		if strings.HasPrefix(strings.TrimSpace(col), prefix) {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// Cell returns the value at (row, col), or "" when the source row was
// shorter than the header.
func (d *Dataset) Cell(row, col int) string {
	r := d.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// AppendRow adds a row, padding or truncating it to the column count.
func (d *Dataset) AppendRow(row []string) {
	normalized := make([]string, len(d.Columns))
	copy(normalized, row)
	d.Rows = append(d.Rows, normalized)
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Rows) }
