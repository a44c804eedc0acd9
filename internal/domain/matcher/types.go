package matcher

import "github.com/adstack/blockboard-recon/internal/domain/dataset"

// MatchResult holds the outcome of matching vendor orders against the
// filtered client transaction set.
type MatchResult struct {
	// MatchCount is the number of distinct vendor order identifiers found
	// in the client set. This is the authoritative unique-order figure.
	MatchCount int

	// Matched holds every surviving vendor row whose identifier is in the
	// client set. After cleaning deduplicates by identifier,
	// Matched.Len() == MatchCount; if cleaning were skipped the two could
	// diverge, and MatchCount wins.
	Matched *dataset.Dataset
}
