// The reconcile command runs one reconciliation pass from the command
// line: two input files in, a summary on stdout and a two-sheet workbook
// on disk.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/adstack/blockboard-recon/internal/application/service"
	"github.com/adstack/blockboard-recon/internal/infrastructure/config"
	"github.com/adstack/blockboard-recon/internal/infrastructure/logging"
	"github.com/adstack/blockboard-recon/internal/report"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to config file")
		client     = flag.String("client", "", "client profile name")
		clientFile = flag.String("client-file", "", "path to the client order export")
		vendorFile = flag.String("vendor-file", "", "path to the Blockboard order export")
		spendArg   = flag.String("spend", "0", "media spend")
		cpaArg     = flag.String("cpa", "0", "cost per acquisition")
		goal       = flag.Int("goal", 0, "IO order goal (display only)")
		out        = flag.String("out", "blockboard_data.xlsx", "output workbook path")
	)
	flag.Parse()

	if *client == "" || *clientFile == "" || *vendorFile == "" {
		fmt.Fprintln(os.Stderr, "usage: reconcile -client NAME -client-file FILE -vendor-file FILE [-spend N] [-cpa N] [-goal N] [-out FILE]")
		os.Exit(2)
	}

	cfg := config.LoadOrEnvWithPath(*configPath)
	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "reconcile")

	spend, err := decimal.NewFromString(*spendArg)
	if err != nil || spend.IsNegative() {
		fatal(logger, "invalid -spend value", *spendArg)
	}
	cpa, err := decimal.NewFromString(*cpaArg)
	if err != nil || cpa.IsNegative() {
		fatal(logger, "invalid -cpa value", *cpaArg)
	}

	cf, err := os.Open(*clientFile)
	if err != nil {
		fatal(logger, "open client file", err)
	}
	defer cf.Close()

	vf, err := os.Open(*vendorFile)
	if err != nil {
		fatal(logger, "open vendor file", err)
	}
	defer vf.Close()

	svc := service.NewReconcileService(cfg, logger)
	result, err := svc.Reconcile(context.Background(), service.ReconcileRequest{
		Client:         *client,
		Spend:          spend,
		CPA:            cpa,
		OrderGoal:      *goal,
		ClientFile:     cf,
		ClientFilename: *clientFile,
		VendorFile:     vf,
		VendorFilename: *vendorFile,
	})
	if err != nil {
		fatal(logger, "reconciliation failed", err)
	}

	s := result.Summary
	fmt.Println("Results:")
	fmt.Printf("  Unique Blockboard order IDs:  %d\n", s.UniqueVendorOrders)
	fmt.Printf("  Total Blockboard order rows:  %d\n", s.TotalVendorOrders)
	fmt.Printf("  IO order goal:                %d\n", s.OrderGoal)
	fmt.Printf("  Matched Blockboard orders:    %d\n", s.MatchCount)
	fmt.Printf("  Blockboard revenue:           %s\n", s.Revenue.StringFixed(2))
	fmt.Printf("  Blockboard media spend:       %s\n", s.Spend.StringFixed(2))
	fmt.Printf("  Blockboard CPO:               %s\n", s.CostPerOrder.StringFixed(2))
	fmt.Printf("  Profit margin:                %s%%\n", s.ProfitMargin.StringFixed(2))

	wb, err := report.BuildWorkbook(result.AllOrders, result.Matched, svc.VendorDateColumn())
	if err != nil {
		fatal(logger, "build workbook", err)
	}
	defer wb.Close()

	if err := wb.SaveAs(*out); err != nil {
		fatal(logger, "write workbook", err)
	}
	logger.Info("workbook written", "path", *out)
}

func fatal(logger *slog.Logger, msg string, detail any) {
	logger.Error(msg, "detail", detail)
	os.Exit(1)
}
