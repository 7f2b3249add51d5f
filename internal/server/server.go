// Package server assembles the HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"transaction-importer/internal/config"
	"transaction-importer/internal/handlers"
	"transaction-importer/internal/middleware"
	"transaction-importer/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the collaborators the HTTP API is built from
type Dependencies struct {
	ImportService services.ImportServiceInterface
	LedgerService services.LedgerServiceInterface
	Uploads       handlers.UploadStore
	Health        handlers.HealthChecker
	Logger        *slog.Logger
}

// Server is the HTTP API with its import throttle
type Server struct {
	echo    *echo.Echo
	config  *config.Config
	limiter *middleware.RateLimiter
	logger  *slog.Logger
}

// New builds the router and registers every route
func New(cfg *config.Config, deps Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	e.Use(middleware.PanicRecovery(deps.Logger))

	limiter := middleware.NewRateLimiter(float64(cfg.Import.RatePerSecond), cfg.Import.RateBurst)

	importHandler := handlers.NewImportHandler(deps.ImportService, deps.Uploads)
	ledgerHandler := handlers.NewLedgerHandler(deps.LedgerService)
	healthHandler := handlers.NewHealthCheckHandler(deps.Health)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	imports := e.Group("/transactions/import", limiter.Middleware())
	imports.POST("", importHandler.ImportTransactions, echomw.BodyLimit(strconv.FormatInt(cfg.Import.MaxUploadBytes, 10)))
	imports.POST("/staged", importHandler.ImportStaged)

	e.GET("/transactions", ledgerHandler.ListTransactions)
	e.GET("/transactions/balance", ledgerHandler.GetBalance)
	e.GET("/categories", ledgerHandler.ListCategories)

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		echo:    e,
		config:  cfg,
		limiter: limiter,
		logger:  logger,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Server.Address(),
		Handler:      s.echo,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	go s.limiter.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve HTTP: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("HTTP server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return nil
}
