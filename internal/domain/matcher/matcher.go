// Package matcher determines which vendor-reported orders correspond to
// real, medium-qualified client orders.
//
// The matcher uses exact identifier equality:
//   - Client rows are first filtered to the client's qualifying mediums
//   - Identifiers are compared post-trim, case-sensitive
//   - Matching is a set-membership test, so duplicate client rows with the
//     same identifier never inflate the count for one vendor order
//
// Example usage:
//
//	m := matcher.New(profiles, cfg.Ingest)
//	ids, err := m.FilterClientIDs("Nutrisystem", clientData)
//	result, err := m.Match(ids, cleanedVendorData)
package matcher

import (
	"strings"

	"github.com/adstack/blockboard-recon/internal/domain/dataset"
	"github.com/adstack/blockboard-recon/internal/infrastructure/config"
)

// Matcher matches cleaned vendor orders against filtered client
// transactions.
type Matcher struct {
	profiles     *Profiles
	idColumn     string
	mediumColumn string
	vendorIDCol  string
}

// New creates a matcher over the given profile table and ingest column
// names.
func New(profiles *Profiles, cfg config.IngestConfig) *Matcher {
	return &Matcher{
		profiles:     profiles,
		idColumn:     cfg.ClientIDColumn,
		mediumColumn: cfg.ClientMediumColumn,
		vendorIDCol:  cfg.VendorIDColumn,
	}
}

// FilterClientIDs selects the transaction identifiers of client rows whose
// medium is in the client's qualifying set. Identifiers are trimmed of
// surrounding whitespace. An unknown client name yields an empty set.
func (m *Matcher) FilterClientIDs(client string, d *dataset.Dataset) (map[string]bool, error) {
	idCol, err := d.RequireColumn(m.idColumn)
	if err != nil {
		return nil, err
	}
	mediumCol, err := d.RequireColumn(m.mediumColumn)
	if err != nil {
		return nil, err
	}

	allowed := m.profiles.AllowedMediums(client)

	ids := make(map[string]bool)
	for i := 0; i < d.Len(); i++ {
		if !allowed[d.Cell(i, mediumCol)] {
			continue
		}
		ids[strings.TrimSpace(d.Cell(i, idCol))] = true
	}
	return ids, nil
}

// Match intersects the vendor order identifiers with the client identifier
// set. MatchCount is computed over the distinct vendor identifiers;
// Matched is re-derived over every vendor row, which agrees with
// MatchCount as long as the vendor dataset was deduplicated.
func (m *Matcher) Match(clientIDs map[string]bool, vendor *dataset.Dataset) (*MatchResult, error) {
	idCol, err := vendor.RequireColumn(m.vendorIDCol)
	if err != nil {
		return nil, err
	}

	unique := make(map[string]bool, vendor.Len())
	for i := 0; i < vendor.Len(); i++ {
		unique[vendor.Cell(i, idCol)] = true
	}

	count := 0
	for id := range unique {
		if clientIDs[id] {
			count++
		}
	}

	matched := dataset.New(vendor.Columns)
	for i := 0; i < vendor.Len(); i++ {
		if clientIDs[vendor.Cell(i, idCol)] {
			matched.AppendRow(vendor.Rows[i])
		}
	}

	return &MatchResult{
		MatchCount: count,
		Matched:    matched,
	}, nil
}
