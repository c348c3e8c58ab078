package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/planboard/planboard/internal/app"
	"github.com/planboard/planboard/internal/auth"
	"github.com/planboard/planboard/internal/batches"
	"github.com/planboard/planboard/internal/materials"
	"github.com/planboard/planboard/internal/observability"
	"github.com/planboard/planboard/internal/platform/db"
	"github.com/planboard/planboard/internal/recipes"
	"github.com/planboard/planboard/internal/report"
	"github.com/planboard/planboard/internal/skus"
)

func runMigrations(dsn, dir string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, dir)
}

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	if err := runMigrations(cfg.PGDSN, cfg.MigrationsDir); err != nil {
		logger.Error("apply migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("migrations applied")

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	configured := auth.Credentials{User: cfg.ReportUser, Password: cfg.ReportPassword}
	if !configured.Configured() {
		logger.Warn("report credentials not configured, export endpoint will reject all requests")
	}
	authHandler := auth.NewHandler(logger, configured)
	credsMiddleware := auth.Middleware{Configured: configured, Logger: logger}

	skuRepo := skus.NewRepository(pool)
	skuService := skus.NewService(skuRepo)
	skuHandler := skus.NewHandler(logger, skuService)

	materialsRepo := materials.NewRepository(pool)
	materialsService := materials.NewService(materialsRepo)
	materialsHandler := materials.NewHandler(logger, materialsService)

	recipesRepo := recipes.NewRepository(pool)
	recipesService := recipes.NewService(recipesRepo)
	recipesHandler := recipes.NewHandler(logger, recipesService)

	batchesRepo := batches.NewRepository(pool)
	batchesService := batches.NewService(batchesRepo)
	batchesHandler := batches.NewHandler(logger, batchesService)

	reportRepo := report.NewRepository(pool)
	reportService := report.NewService(reportRepo)
	reportHandler := report.NewHandler(logger, reportService, credsMiddleware)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		AuthHandler:      authHandler,
		SKUHandler:       skuHandler,
		MaterialsHandler: materialsHandler,
		RecipesHandler:   recipesHandler,
		BatchesHandler:   batchesHandler,
		ReportHandler:    reportHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
