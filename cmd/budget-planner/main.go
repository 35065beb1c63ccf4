package main

import (
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"budget-planner/internal/config"
	"budget-planner/internal/database"
	"budget-planner/internal/handlers"
	"budget-planner/internal/ledger"
	"budget-planner/internal/middleware"
	"budget-planner/internal/repositories"
	"budget-planner/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("budget-planner stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("Starting budget-planner",
		"environment", cfg.Server.Environment,
		"address", cfg.Server.Address(),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewPrometheusMetrics(registry)

	ledgerService := services.NewLedgerService(ledger.New(), logger, metrics)

	// Snapshot exports are optional; the ledger itself lives in memory only
	var (
		exportRepo repositories.ExportRepositoryInterface
		dbHealth   handlers.HealthChecker
	)
	if cfg.Database.Enabled {
		db, err := database.Initialize(&cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize export database: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("Failed to close export database", "error", err)
			}
		}()

		exportRepo = repositories.NewExportRepository(db.DB)
		dbHealth = db
		logger.Info("Database exports enabled", "driver", cfg.Database.Driver)
	} else {
		logger.Info("Database exports disabled")
	}

	exportService := services.NewExportService(ledgerService, exportRepo, &cfg.Export, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Seed.SampleData {
		generator := services.NewSampleGenerator(uint64(time.Now().UnixNano()), logger, metrics)
		seeded, err := generator.Seed(ctx, ledgerService, cfg.Seed.SampleCount)
		if err != nil {
			return fmt.Errorf("failed to seed sample transactions after %d: %w", seeded, err)
		}
		logger.Info("Seeded sample transactions", "count", seeded)
	}

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.IPExtractor = middleware.ClientIPExtractor(cfg.Security.TrustProxyHeaders)
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(registry, logger).Handle

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader, echo.HeaderContentDisposition},
	}))
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(rateLimiter.Middleware())

	handlers.RegisterRoutes(e, &handlers.Handlers{
		Transactions: handlers.NewTransactionHandler(ledgerService),
		Summary:      handlers.NewSummaryHandler(ledgerService),
		Exports:      handlers.NewExportHandler(exportService),
		Health:       handlers.NewHealthCheckHandler(dbHealth, ledgerService),
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rateLimiter.RunCleanup(gctx)
		return nil
	})

	g.Go(func() error {
		logger.Info("HTTP server listening", "address", server.Addr)
		if err := e.StartServer(server); err != nil && !goerrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down budget-planner...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Budget-planner shutdown complete", "transactions", ledgerService.Count())
	return nil
}

// newLogger uses JSON output in production and text output elsewhere
func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Server.LogLevel))); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
