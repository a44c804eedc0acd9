// Package service orchestrates a reconciliation run: parse both uploads,
// clean the vendor data, filter the client data, match, and derive the
// financial metrics. One request in, one complete result out; nothing is
// kept between runs.
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/adstack/blockboard-recon/internal/domain/cleaner"
	"github.com/adstack/blockboard-recon/internal/domain/dataset"
	"github.com/adstack/blockboard-recon/internal/domain/matcher"
	"github.com/adstack/blockboard-recon/internal/domain/metrics"
	"github.com/adstack/blockboard-recon/internal/infrastructure/config"
	"github.com/adstack/blockboard-recon/internal/report"
)

// ReconcileRequest holds one run's inputs: the two uploaded files and the
// user-supplied scalars.
type ReconcileRequest struct {
	Client         string
	Spend          decimal.Decimal
	CPA            decimal.Decimal
	OrderGoal      int // display-only, not used in any calculation
	ClientFile     io.Reader
	ClientFilename string
	VendorFile     io.Reader
	VendorFilename string
}

// Summary carries the headline figures of a run.
type Summary struct {
	Client             string
	UniqueVendorOrders int // distinct order IDs after cleaning
	TotalVendorOrders  int // rows in the raw vendor upload
	OrderGoal          int
	MatchCount         int
	Revenue            decimal.Decimal
	Spend              decimal.Decimal
	Profit             decimal.Decimal
	ProfitMargin       decimal.Decimal
	CostPerOrder       decimal.Decimal
}

// Result is the complete outcome of a reconciliation run.
type Result struct {
	Summary Summary
	Daily   []report.DailyCount

	// AllOrders is the cleaned vendor dataset; Matched is the subset whose
	// identifiers were found in the filtered client set. Both feed the
	// spreadsheet export.
	AllOrders *dataset.Dataset
	Matched   *dataset.Dataset
}

// ReconcileService runs the reconciliation pipeline.
type ReconcileService struct {
	cfg      *config.Config
	profiles *matcher.Profiles
	cleaner  *cleaner.Cleaner
	matcher  *matcher.Matcher
	logger   *slog.Logger
}

// NewReconcileService creates the service from configuration. The client
// profile table is built once here and never mutated.
func NewReconcileService(cfg *config.Config, logger *slog.Logger) *ReconcileService {
	if logger == nil {
		logger = slog.Default()
	}
	profiles := matcher.NewProfiles(cfg.Clients)
	return &ReconcileService{
		cfg:      cfg,
		profiles: profiles,
		cleaner:  cleaner.New(cfg.Ingest),
		matcher:  matcher.New(profiles, cfg.Ingest),
		logger:   logger,
	}
}

// ClientNames returns the selectable client profiles.
func (s *ReconcileService) ClientNames() []string {
	return s.profiles.Names()
}

// VendorDateColumn returns the configured vendor date column name, which
// the export path needs for its date formatting.
func (s *ReconcileService) VendorDateColumn() string {
	return s.cfg.Ingest.VendorDateColumn
}

// Reconcile runs one complete pass. It either returns an internally
// consistent result or a typed failure; there are no partial results and
// no retries.
func (s *ReconcileService) Reconcile(ctx context.Context, req ReconcileRequest) (*Result, error) {
	clientData, err := dataset.Read(req.ClientFile, req.ClientFilename)
	if err != nil {
		return nil, fmt.Errorf("client file: %w", err)
	}
	vendorData, err := dataset.Read(req.VendorFile, req.VendorFilename)
	if err != nil {
		return nil, fmt.Errorf("vendor file: %w", err)
	}

	// Client rows are ordered by date up front; vendor ordering happens
	// inside Clean, after dedup.
	if dateCol, ok := clientData.ColumnIndex(s.cfg.Ingest.ClientDateColumn); ok {
		clientData.SortByDate(dateCol)
	}

	totalVendorRows := vendorData.Len()

	cleaned, err := s.cleaner.Clean(vendorData)
	if err != nil {
		return nil, fmt.Errorf("vendor file: %w", err)
	}

	if !s.profiles.Known(req.Client) {
		s.logger.Warn("unknown client profile, run will yield zero matches", "client", req.Client)
	}

	clientIDs, err := s.matcher.FilterClientIDs(req.Client, clientData)
	if err != nil {
		return nil, fmt.Errorf("client file: %w", err)
	}

	match, err := s.matcher.Match(clientIDs, cleaned)
	if err != nil {
		return nil, fmt.Errorf("vendor file: %w", err)
	}

	m := metrics.Calculate(match.MatchCount, req.CPA, req.Spend)

	daily, err := report.DailyMatches(match.Matched, s.cfg.Ingest.VendorDateColumn)
	if err != nil {
		return nil, fmt.Errorf("vendor file: %w", err)
	}

	s.logger.Info("reconciliation complete",
		"client", req.Client,
		"vendor_rows", totalVendorRows,
		"unique_vendor_orders", cleaned.Len(),
		"qualified_client_ids", len(clientIDs),
		"match_count", match.MatchCount,
	)

	return &Result{
		Summary: Summary{
			Client:             req.Client,
			UniqueVendorOrders: cleaned.Len(),
			TotalVendorOrders:  totalVendorRows,
			OrderGoal:          req.OrderGoal,
			MatchCount:         match.MatchCount,
			Revenue:            m.Revenue,
			Spend:              req.Spend,
			Profit:             m.Profit,
			ProfitMargin:       m.ProfitMargin,
			CostPerOrder:       m.CostPerOrder,
		},
		Daily:     daily,
		AllOrders: cleaned,
		Matched:   match.Matched,
	}, nil
}
