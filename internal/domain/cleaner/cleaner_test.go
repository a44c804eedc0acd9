package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adstack/blockboard-recon/internal/domain/dataset"
	"github.com/adstack/blockboard-recon/internal/infrastructure/config"
)

func newCleaner() *Cleaner {
	return New(config.Default().Ingest)
}

func vendorData(rows ...[]string) *dataset.Dataset {
	d := dataset.New([]string{"Order ID", "Date", "Leads - form", "Notes"})
	for _, r := range rows {
		d.AppendRow(r)
	}
	return d
}

func TestClean_TrimsAndDeduplicates(t *testing.T) {
	// Arrange
	d := vendorData(
		[]string{" abc ", "2024-01-02", "0", "first"},
		[]string{"abc", "2024-01-01", "0", "duplicate"},
		[]string{"def", "2024-01-01", "0", ""},
	)

	// Act
	out, err := newCleaner().Clean(d)

	// Assert
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())
	// First occurrence wins, in ingestion order, before the date sort.
	ids := map[string]string{}
	for i := 0; i < out.Len(); i++ {
		ids[out.Cell(i, 0)] = out.Cell(i, 3)
	}
	assert.Equal(t, map[string]string{"abc": "first", "def": ""}, ids)
}

func TestClean_DropsErrorSentinelRows(t *testing.T) {
	d := vendorData(
		[]string{"#VALUE!", "2024-01-01", "0", ""},
		[]string{"VALUE", "2024-01-01", "0", ""},
		[]string{"ok1", "2024-01-01", "0", ""},
	)

	out, err := newCleaner().Clean(d)

	require.NoError(t, err)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, "ok1", out.Cell(0, 0))
}

func TestClean_ClampsLeadColumnsAboveOneOnly(t *testing.T) {
	d := vendorData(
		[]string{"a", "2024-01-01", "3", ""},
		[]string{"b", "2024-01-02", "1", ""},
		[]string{"c", "2024-01-03", "0.5", ""},
		[]string{"d", "2024-01-04", "n/a", ""},
	)

	out, err := newCleaner().Clean(d)

	require.NoError(t, err)
	assert.Equal(t, "1", out.Cell(0, 2))   // clamped
	assert.Equal(t, "1", out.Cell(1, 2))   // untouched
	assert.Equal(t, "0.5", out.Cell(2, 2)) // untouched
	assert.Equal(t, "n/a", out.Cell(3, 2)) // non-numeric passes through
	// The non-lead column is never clamped.
	assert.Equal(t, "", out.Cell(0, 3))
}

func TestClean_SortsByDateAfterDedup(t *testing.T) {
	// The duplicate with the earlier date arrives second, so it loses the
	// dedup even though a date-first sort would have put it first.
	d := vendorData(
		[]string{"abc", "2024-01-05", "0", "kept"},
		[]string{"abc", "2024-01-01", "0", "dropped"},
		[]string{"def", "2024-01-02", "0", ""},
	)

	out, err := newCleaner().Clean(d)

	require.NoError(t, err)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, "def", out.Cell(0, 0))
	assert.Equal(t, "abc", out.Cell(1, 0))
	assert.Equal(t, "kept", out.Cell(1, 3))
}

func TestClean_Idempotent(t *testing.T) {
	d := vendorData(
		[]string{" abc ", "2024-01-02", "5", ""},
		[]string{"abc", "2024-01-01", "2", ""},
		[]string{"#VALUE!", "2024-01-01", "1", ""},
		[]string{"def", "2024-01-01", "0", ""},
	)

	c := newCleaner()
	once, err := c.Clean(d)
	require.NoError(t, err)
	twice, err := c.Clean(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestClean_NoDuplicateOrSentinelIDsSurvive(t *testing.T) {
	d := vendorData(
		[]string{"a", "2024-01-01", "0", ""},
		[]string{"a ", "2024-01-02", "0", ""},
		[]string{" a", "2024-01-03", "0", ""},
		[]string{"bVALUEc", "2024-01-01", "0", ""},
		[]string{"b", "2024-01-01", "0", ""},
	)

	out, err := newCleaner().Clean(d)

	require.NoError(t, err)
	seen := map[string]bool{}
	for i := 0; i < out.Len(); i++ {
		id := out.Cell(i, 0)
		assert.NotContains(t, id, "VALUE")
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
	assert.Equal(t, 2, out.Len())
}

func TestClean_MissingIDColumn(t *testing.T) {
	d := dataset.New([]string{"Date", "Leads - form"})
	d.AppendRow([]string{"2024-01-01", "1"})

	_, err := newCleaner().Clean(d)

	var schemaErr *dataset.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Order ID", schemaErr.Column)
}
