package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"iso date", "2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"iso datetime", "2024-03-05 13:45:00", time.Date(2024, 3, 5, 13, 45, 0, 0, time.UTC)},
		{"us date", "03/05/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"us date short", "3/5/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", " 2024-03-05 ", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestParseDate_Unparseable(t *testing.T) {
	for _, input := range []string{"", "not a date", "2024-13-40"} {
		_, err := ParseDate(input)
		assert.ErrorIs(t, err, ErrUnparseableDate, "input %q", input)
	}
}

func TestSortByDate(t *testing.T) {
	d := New([]string{"Order ID", "Date"})
	d.AppendRow([]string{"c", "2024-01-03"})
	d.AppendRow([]string{"a", "2024-01-01"})
	d.AppendRow([]string{"b", "2024-01-02"})

	d.SortByDate(1)

	assert.Equal(t, "a", d.Cell(0, 0))
	assert.Equal(t, "b", d.Cell(1, 0))
	assert.Equal(t, "c", d.Cell(2, 0))
}

func TestSortByDate_UnparseableRowsSortLastInOriginalOrder(t *testing.T) {
	d := New([]string{"Order ID", "Date"})
	d.AppendRow([]string{"x", "garbage"})
	d.AppendRow([]string{"b", "2024-01-02"})
	d.AppendRow([]string{"y", ""})
	d.AppendRow([]string{"a", "2024-01-01"})

	d.SortByDate(1)

	assert.Equal(t, "a", d.Cell(0, 0))
	assert.Equal(t, "b", d.Cell(1, 0))
	assert.Equal(t, "x", d.Cell(2, 0))
	assert.Equal(t, "y", d.Cell(3, 0))
}
