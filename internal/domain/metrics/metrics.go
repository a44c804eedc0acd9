// Package metrics derives the spend and revenue figures for a
// reconciliation run. All money math uses decimal arithmetic; rounding to
// two places is left to the presentation layer.
package metrics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Metrics holds the derived financial figures.
type Metrics struct {
	Revenue      decimal.Decimal
	Profit       decimal.Decimal
	ProfitMargin decimal.Decimal
	CostPerOrder decimal.Decimal
}

// Calculate derives metrics from the match count and the two user-supplied
// scalars:
//
//	revenue        = cpa × matchCount
//	profit         = revenue − spend
//	profit_margin  = profit / revenue × 100
//	cost_per_order = spend / matchCount
//
// Profit margin is defined as exactly 0 when revenue is 0, and cost per
// order as 0 when the match count is 0. Both are policy choices to keep a
// zero-match run presentable, not mathematical identities.
func Calculate(matchCount int, cpa, spend decimal.Decimal) Metrics {
	count := decimal.NewFromInt(int64(matchCount))

	revenue := cpa.Mul(count)
	profit := revenue.Sub(spend)

	margin := decimal.Zero
	if !revenue.IsZero() {
		margin = profit.Div(revenue).Mul(hundred)
	}

	costPerOrder := decimal.Zero
	if matchCount > 0 {
		costPerOrder = spend.Div(count)
	}

	return Metrics{
		Revenue:      revenue,
		Profit:       profit,
		ProfitMargin: margin,
		CostPerOrder: costPerOrder,
	}
}
