// The api command serves the reconciliation HTTP API.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/adstack/blockboard-recon/internal/api"
	"github.com/adstack/blockboard-recon/internal/application/service"
	"github.com/adstack/blockboard-recon/internal/infrastructure/config"
	"github.com/adstack/blockboard-recon/internal/infrastructure/logging"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg := config.LoadOrEnvWithPath(*configPath)
	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "api")

	svc := service.NewReconcileService(cfg, logging.NewLoggerWithSystem(cfg.Observability.Logging, "reconcile"))
	server := api.NewServer(cfg, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
