// Package cleaner normalizes the raw Blockboard order export before
// matching. Upstream extraction leaves behind spreadsheet error sentinels,
// duplicated order rows, and lead counters that overcount, all of which
// would inflate the match numbers.
package cleaner

import (
	"strconv"
	"strings"

	"github.com/adstack/blockboard-recon/internal/domain/dataset"
	"github.com/adstack/blockboard-recon/internal/infrastructure/config"
)

// Cleaner applies the vendor-side cleaning pipeline. It is stateless and
// safe to reuse across invocations.
type Cleaner struct {
	idColumn    string
	dateColumn  string
	leadsPrefix string
	errorMarker string
}

// New creates a cleaner from the ingest configuration.
func New(cfg config.IngestConfig) *Cleaner {
	return &Cleaner{
		idColumn:    cfg.VendorIDColumn,
		dateColumn:  cfg.VendorDateColumn,
		leadsPrefix: cfg.LeadsPrefix,
		errorMarker: cfg.ErrorMarker,
	}
}

// Clean runs the pipeline, in order:
//
//  1. trim order identifiers
//  2. drop rows whose identifier contains the error marker
//  3. deduplicate by identifier, first occurrence wins (ingestion order)
//  4. clamp every lead column cell to at most 1
//
// and finally sorts the surviving rows by date. Dedup runs on ingestion
// order, before the date sort, so "first occurrence" means first in the
// uploaded file. Clean is idempotent: running it on its own output returns
// an equal dataset.
func (c *Cleaner) Clean(d *dataset.Dataset) (*dataset.Dataset, error) {
	idCol, err := d.RequireColumn(c.idColumn)
	if err != nil {
		return nil, err
	}
	dateCol, err := d.RequireColumn(c.dateColumn)
	if err != nil {
		return nil, err
	}

	leadCols := d.ColumnsWithPrefix(c.leadsPrefix)

	out := dataset.New(d.Columns)
	seen := make(map[string]bool, d.Len())

	for i := 0; i < d.Len(); i++ {
		id := strings.TrimSpace(d.Cell(i, idCol))
		if strings.Contains(id, c.errorMarker) {
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		row := make([]string, len(d.Columns))
		for j := range d.Columns {
			row[j] = d.Cell(i, j)
		}
		row[idCol] = id
		for _, j := range leadCols {
			row[j] = clampLead(row[j])
		}
		out.AppendRow(row)
	}

	out.SortByDate(dateCol)
	return out, nil
}

// clampLead caps a lead counter at 1. A lead column is a binary "had a
// lead" signal even when the source counted several, so anything above 1
// truncates to 1. Values at or below 1, and cells that are not numbers,
// pass through untouched.
func clampLead(cell string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return cell
	}
	if v > 1 {
		return "1"
	}
	return cell
}
