// Package report renders reconciliation output: the matches-per-day series
// that feeds the dashboard chart, and the two-sheet spreadsheet export.
package report

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/adstack/blockboard-recon/internal/domain/dataset"
)

// ContentType is the MIME type the export is delivered with.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names in the exported workbook.
const (
	SheetAllOrders     = "All Orders"
	SheetMatchedOrders = "Matched Orders"
)

const dateColumnWidth = 12

// DailyCount is one point of the matches-per-day series.
type DailyCount struct {
	Date    string `json:"date"` // yyyy-mm-dd
	Matches int    `json:"matches"`
}

// DailyMatches aggregates matched rows by calendar date, ascending. Rows
// whose date cell fails to parse are dropped from the series rather than
// failing the run.
func DailyMatches(matched *dataset.Dataset, dateColumn string) ([]DailyCount, error) {
	dateCol, err := matched.RequireColumn(dateColumn)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for i := 0; i < matched.Len(); i++ {
		t, err := dataset.ParseDate(matched.Cell(i, dateCol))
		if err != nil {
			continue
		}
		counts[t.Format("2006-01-02")]++
	}

	series := make([]DailyCount, 0, len(counts))
	for date, n := range counts {
		series = append(series, DailyCount{Date: date, Matches: n})
	}
	sort.Slice(series, func(a, b int) bool {
		return series[a].Date < series[b].Date
	})
	return series, nil
}

// BuildWorkbook writes the two-sheet export: the full cleaned vendor
// dataset on "All Orders" and the matched subset on "Matched Orders". The
// date column is serialized as a plain yyyy-mm-dd calendar date; cells
// that fail to parse keep their raw value so no rows are lost from the
// export.
func BuildWorkbook(all, matched *dataset.Dataset, dateColumn string) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetAllOrders); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(SheetMatchedOrders); err != nil {
		f.Close()
		return nil, err
	}

	if err := writeSheet(f, SheetAllOrders, all, dateColumn); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSheet(f, SheetMatchedOrders, matched, dateColumn); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, d *dataset.Dataset, dateColumn string) error {
	dateCol, hasDate := d.ColumnIndex(dateColumn)

	header := make([]interface{}, len(d.Columns))
	for i, col := range d.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i := 0; i < d.Len(); i++ {
		row := make([]interface{}, len(d.Columns))
		for j := range d.Columns {
			cell := d.Cell(i, j)
			if hasDate && j == dateCol {
				if t, err := dataset.ParseDate(cell); err == nil {
					cell = t.Format("2006-01-02")
				}
			}
			row[j] = cell
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			return err
		}
	}

	if hasDate {
		name, err := excelize.ColumnNumberToName(dateCol + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, dateColumnWidth); err != nil {
			return fmt.Errorf("set date column width: %w", err)
		}
	}

	return nil
}
