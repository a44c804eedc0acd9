package dto

import (
	"github.com/adstack/blockboard-recon/internal/application/service"
	"github.com/adstack/blockboard-recon/internal/report"
)

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// ClientsResponse lists the selectable client profiles.
type ClientsResponse struct {
	Clients []string `json:"clients"`
}

// SummaryResponse carries the headline figures of a run. Money fields are
// serialized as fixed two-decimal strings; rounding happens only here, at
// the presentation boundary.
type SummaryResponse struct {
	Client             string `json:"client"`
	UniqueVendorOrders int    `json:"unique_vendor_orders"`
	TotalVendorOrders  int    `json:"total_vendor_orders"`
	OrderGoal          int    `json:"order_goal"`
	MatchCount         int    `json:"match_count"`
	Revenue            string `json:"revenue"`
	Spend              string `json:"spend"`
	Profit             string `json:"profit"`
	ProfitMargin       string `json:"profit_margin"`
	CostPerOrder       string `json:"cost_per_order"`
}

// ReconcileResponse is the full JSON result of POST /api/reconcile.
type ReconcileResponse struct {
	Summary SummaryResponse     `json:"summary"`
	Daily   []report.DailyCount `json:"daily_matches"`
}

// ToReconcileResponse converts a service result to its API representation.
func ToReconcileResponse(res *service.Result) ReconcileResponse {
	s := res.Summary
	return ReconcileResponse{
		Summary: SummaryResponse{
			Client:             s.Client,
			UniqueVendorOrders: s.UniqueVendorOrders,
			TotalVendorOrders:  s.TotalVendorOrders,
			OrderGoal:          s.OrderGoal,
			MatchCount:         s.MatchCount,
			Revenue:            s.Revenue.StringFixed(2),
			Spend:              s.Spend.StringFixed(2),
			Profit:             s.Profit.StringFixed(2),
			ProfitMargin:       s.ProfitMargin.StringFixed(2),
			CostPerOrder:       s.CostPerOrder.StringFixed(2),
		},
		Daily: res.Daily,
	}
}
