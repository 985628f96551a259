package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "mesa-fund/internal/adapter/http"
	"mesa-fund/internal/adapter/memory"
	"mesa-fund/internal/adapter/postgres"
	"mesa-fund/internal/adapter/rabbitmq"
	"mesa-fund/internal/adapter/usecase"
	"mesa-fund/internal/config"
	"mesa-fund/internal/core/port"
	"mesa-fund/internal/db"
	"mesa-fund/internal/metrics"
)

// main is the entry point of the mesa-fund ledger. It loads configuration,
// selects the storage backend (optionally running database migrations),
// wires the event publisher and metrics, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.CampaignRepository
	switch cfg.Ledger.StorageKind() {
	case "postgres":
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		repo = postgres.NewCampaignRepository(pool)
	default:
		logger.Warn("using in-memory storage; state is lost on restart")
		repo = memory.NewCampaignRepository()
	}

	var publisher port.EventPublisher = rabbitmq.NoopPublisher{Logger: logger}
	if cfg.AMQP.Enabled() {
		p, err := rabbitmq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
		if err != nil {
			// events stay in the ledger log; observers can page them over HTTP
			logger.Warn("rabbitmq unavailable, publishing disabled", slog.Any("error", err))
		} else {
			defer p.Close()
			publisher = p
		}
	}

	ledgerMetrics := metrics.NewLedger()
	svc := usecase.NewLedgerUseCase(repo,
		usecase.WithLogger(logger),
		usecase.WithPublisher(publisher),
		usecase.WithMetrics(ledgerMetrics),
		usecase.WithTextLimits(cfg.Ledger.TextLimits()),
		usecase.WithLatestWindow(cfg.Ledger.LatestDefault, cfg.Ledger.LatestMax),
	)

	if n := cfg.Ledger.SeedCampaigns; n > 0 {
		if err = db.Seed(ctx, svc, n); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("seeded demo campaigns", slog.Int("count", n))
		}
	}

	opts := []httpadapter.Option{
		httpadapter.WithCORS(cfg.HTTP.AllowedOrigins),
		httpadapter.WithTimeout(cfg.HTTP.RequestTimeout),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, httpadapter.WithMetrics(cfg.Metrics.Path, ledgerMetrics.Handler()))
	}
	handler := httpadapter.NewHandler(svc, logger, opts...)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("storage", cfg.Ledger.StorageKind()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
