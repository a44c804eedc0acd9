// Package api provides the HTTP shell around the reconciliation pipeline.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/adstack/blockboard-recon/internal/api/handlers"
	"github.com/adstack/blockboard-recon/internal/api/middleware"
	"github.com/adstack/blockboard-recon/internal/application/service"
	"github.com/adstack/blockboard-recon/internal/infrastructure/config"
)

// Server is the HTTP API server.
type Server struct {
	cfg    config.ServerConfig
	engine *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new API server around the reconcile service.
func NewServer(cfg *config.Config, svc *service.ReconcileService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logging(logger))
	engine.MaxMultipartMemory = cfg.Server.MaxUploadBytes

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s := &Server{
		cfg:    cfg.Server,
		engine: engine,
		logger: logger,
	}
	s.setupRoutes(svc)
	return s
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes(svc *service.ReconcileService) {
	reconcileHandler := handlers.NewReconcileHandler(svc, s.logger)
	clientsHandler := handlers.NewClientsHandler(svc)

	api := s.engine.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.GET("/clients", clientsHandler.List)
		api.POST("/reconcile", reconcileHandler.Reconcile)
		api.POST("/reconcile/export", reconcileHandler.Export)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the server and blocks until the context is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "port", s.cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
