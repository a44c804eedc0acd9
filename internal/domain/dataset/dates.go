package dataset

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing a date cell. The two upload
// sources disagree on format, so the list covers both plus the common
// spreadsheet variants.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04",
	"2006/01/02",
}

// ErrUnparseableDate is returned when a cell matches none of the known
// date layouts.
var ErrUnparseableDate = errors.New("unparseable date")

// ParseDate parses a date cell using the known layouts.
func ParseDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, ErrUnparseableDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnparseableDate
}

// SortByDate orders rows ascending by the given date column. Rows whose
// date fails to parse keep their relative order and sort after every dated
// row, so a few bad cells never abort a run.
func (d *Dataset) SortByDate(col int) {
	type keyed struct {
		t  time.Time
		ok bool
	}
	keys := make([]keyed, len(d.Rows))
	for i := range d.Rows {
		t, err := ParseDate(d.Cell(i, col))
		keys[i] = keyed{t: t, ok: err == nil}
	}

	// Sort a permutation rather than the rows, so each row keeps the key
	// computed for its original position.
	idx := make([]int, len(d.Rows))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if ka.ok != kb.ok {
			return ka.ok
		}
		if !ka.ok {
			return false
		}
		return ka.t.Before(kb.t)
	})

	sorted := make([][]string, len(d.Rows))
	for i, j := range idx {
		sorted[i] = d.Rows[j]
	}
	d.Rows = sorted
}
