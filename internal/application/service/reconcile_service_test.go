package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adstack/blockboard-recon/internal/domain/dataset"
	"github.com/adstack/blockboard-recon/internal/infrastructure/config"
)

const clientCSV = `transaction_id,order_medium,easternstandardate
A1,organic,2024-01-01
B2,email,2024-01-02
C3,paid_search,2024-01-03
 D4 ,direct,2024-01-04
`

const vendorCSV = `Date,Order ID,Leads - form
2024-01-03,C3,4
2024-01-01,A1 ,1
2024-01-01,A1,1
2024-01-02,#VALUE!,0
2024-01-05,Z9,0
`

func newService() *ReconcileService {
	return NewReconcileService(config.Default(), nil)
}

func request(client string) ReconcileRequest {
	return ReconcileRequest{
		Client:         client,
		Spend:          decimal.RequireFromString("100.00"),
		CPA:            decimal.RequireFromString("25.00"),
		OrderGoal:      50,
		ClientFile:     strings.NewReader(clientCSV),
		ClientFilename: "client.csv",
		VendorFile:     strings.NewReader(vendorCSV),
		VendorFilename: "vendor.csv",
	}
}

func TestReconcile(t *testing.T) {
	// Act
	result, err := newService().Reconcile(context.Background(), request("Crepe Erase"))

	// Assert
	require.NoError(t, err)
	s := result.Summary

	// Five vendor rows uploaded; the sentinel and the duplicate "A1" are
	// cleaned away.
	assert.Equal(t, 5, s.TotalVendorOrders)
	assert.Equal(t, 3, s.UniqueVendorOrders)

	// "A1 " trims into a match, C3 matches, Z9 has no client counterpart,
	// B2 is filtered out by medium.
	assert.Equal(t, 2, s.MatchCount)
	assert.Equal(t, s.MatchCount, result.Matched.Len())

	assert.Equal(t, "50.00", s.Revenue.StringFixed(2))
	assert.Equal(t, "-50.00", s.Profit.StringFixed(2))
	assert.Equal(t, "-100.00", s.ProfitMargin.StringFixed(2))
	assert.Equal(t, "50.00", s.CostPerOrder.StringFixed(2))
	assert.Equal(t, 50, s.OrderGoal)

	// Cleaned vendor rows come back date-sorted with leads clamped.
	assert.Equal(t, "A1", result.AllOrders.Cell(0, 1))
	assert.Equal(t, "1", result.AllOrders.Cell(0, 2))
	assert.Equal(t, "C3", result.AllOrders.Cell(1, 1))
	assert.Equal(t, "1", result.AllOrders.Cell(1, 2)) // 4 clamped

	assert.Equal(t, []string{"2024-01-01", "2024-01-03"}, dailyDates(result))
}

func TestReconcile_UnknownClientYieldsZeroMatches(t *testing.T) {
	result, err := newService().Reconcile(context.Background(), request("Unknown Co"))

	require.NoError(t, err)
	assert.Equal(t, 0, result.Summary.MatchCount)
	assert.Equal(t, 0, result.Matched.Len())
	assert.Equal(t, "0.00", result.Summary.Revenue.StringFixed(2))
	assert.Equal(t, "0.00", result.Summary.ProfitMargin.StringFixed(2))
	assert.Equal(t, "0.00", result.Summary.CostPerOrder.StringFixed(2))
	assert.Empty(t, result.Daily)
}

func TestReconcile_VendorFileMissingIDColumn(t *testing.T) {
	req := request("Crepe Erase")
	req.VendorFile = strings.NewReader("Date,Something\n2024-01-01,x\n")

	_, err := newService().Reconcile(context.Background(), req)

	var schemaErr *dataset.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Order ID", schemaErr.Column)
}

func TestReconcile_ClientFileMissingMediumColumn(t *testing.T) {
	req := request("Crepe Erase")
	req.ClientFile = strings.NewReader("transaction_id,easternstandardate\nA1,2024-01-01\n")

	_, err := newService().Reconcile(context.Background(), req)

	var schemaErr *dataset.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "order_medium", schemaErr.Column)
}

func TestReconcile_UnparseableClientFile(t *testing.T) {
	req := request("Crepe Erase")
	req.ClientFile = strings.NewReader("")

	_, err := newService().Reconcile(context.Background(), req)

	var parseErr *dataset.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestClientNames(t *testing.T) {
	assert.Equal(t, []string{"Crepe Erase", "Nutrisystem", "Smileactives"}, newService().ClientNames())
}

func dailyDates(r *Result) []string {
	dates := make([]string, 0, len(r.Daily))
	for _, d := range r.Daily {
		dates = append(dates, d.Date)
	}
	return dates
}
