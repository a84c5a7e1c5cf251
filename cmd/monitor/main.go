package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/stackswatch7000-backend/internal/archive"
	"github.com/goodnatureofminers/stackswatch7000-backend/internal/clock"
	"github.com/goodnatureofminers/stackswatch7000-backend/internal/ledger"
	"github.com/goodnatureofminers/stackswatch7000-backend/internal/metrics"
	"github.com/goodnatureofminers/stackswatch7000-backend/internal/model"
	"github.com/goodnatureofminers/stackswatch7000-backend/internal/repository"
	"github.com/goodnatureofminers/stackswatch7000-backend/internal/service"
	"github.com/goodnatureofminers/stackswatch7000-backend/internal/stacks"
	"github.com/goodnatureofminers/stackswatch7000-backend/pkg/ttlcache"
)

type config struct {
	PostgresDSN       string        `long:"postgres-dsn" env:"WALLET_MONITOR_POSTGRES_DSN" description:"Postgres DSN" required:"true"`
	ClickhouseDSN     string        `long:"clickhouse-dsn" env:"WALLET_MONITOR_CLICKHOUSE_DSN" description:"optional ClickHouse DSN for the analytics archive"`
	Network           model.Network `long:"network" env:"WALLET_MONITOR_NETWORK" default:"mainnet" description:"Stacks network (mainnet or testnet)"`
	RequestTimeout    time.Duration `long:"request-timeout" env:"WALLET_MONITOR_REQUEST_TIMEOUT" default:"30s" description:"HTTP timeout for chain API requests"`
	CacheDuration     time.Duration `long:"cache-duration" env:"WALLET_MONITOR_CACHE_DURATION" default:"300s" description:"TTL for cached balance responses"`
	RequestsPerSecond int           `long:"rps" env:"WALLET_MONITOR_RPS" default:"10" description:"chain API rate limit"`
	Tolerance         string        `long:"tolerance" env:"WALLET_MONITOR_TOLERANCE" default:"0.001" description:"discrepancy tolerance in STX"`
	Workers           int           `long:"workers" env:"WALLET_MONITOR_WORKERS" default:"8" description:"concurrent account checks"`
	BatchTimeout      time.Duration `long:"batch-timeout" env:"WALLET_MONITOR_BATCH_TIMEOUT" default:"10m" description:"deadline for a full reconciliation pass"`
	AccountID         int64         `long:"account-id" env:"WALLET_MONITOR_ACCOUNT_ID" description:"check a single account instead of all"`
	IncludeInactive   bool          `long:"include-inactive" env:"WALLET_MONITOR_INCLUDE_INACTIVE" description:"also check inactive and excluded accounts"`
	History           int           `long:"history" env:"WALLET_MONITOR_HISTORY" description:"show the last N balance checks for --account-id instead of reconciling"`
	Format            string        `long:"format" env:"WALLET_MONITOR_FORMAT" default:"table" choice:"table" choice:"json" description:"output format"`
	Interval          time.Duration `long:"interval" env:"WALLET_MONITOR_INTERVAL" description:"run continuously at this interval instead of once"`
	MetricsAddr       string        `long:"metrics-addr" env:"WALLET_MONITOR_METRICS_ADDR" default:":2112" description:"address for metrics server in interval mode"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewProduction()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("wallet monitor stopped")
			return
		}
		logger.Fatal("wallet monitor failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	tolerance, err := decimal.NewFromString(cfg.Tolerance)
	if err != nil {
		return fmt.Errorf("parse tolerance: %w", err)
	}

	repo, err := repository.NewRepository(cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	if cfg.History > 0 {
		if cfg.AccountID == 0 {
			return errors.New("--history requires --account-id")
		}
		return printHistory(ctx, os.Stdout, repo, cfg.AccountID, cfg.History, cfg.Format)
	}

	calculator, err := ledger.NewCalculator(repo)
	if err != nil {
		return fmt.Errorf("init calculator: %w", err)
	}

	chain, err := stacks.NewClient(stacks.Config{
		Network:           cfg.Network,
		Timeout:           cfg.RequestTimeout,
		CacheTTL:          cfg.CacheDuration,
		RequestsPerSecond: cfg.RequestsPerSecond,
	}, ttlcache.New[[]byte](), metrics.NewAPIClient(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init chain client: %w", err)
	}

	var logArchive service.LogArchive
	if cfg.ClickhouseDSN != "" {
		store, err := archive.NewStore(cfg.ClickhouseDSN)
		if err != nil {
			return fmt.Errorf("init archive store: %w", err)
		}
		defer func() {
			_ = store.Close()
		}()

		arch, err := archive.New(logger, store, metrics.NewArchive(), archive.Config{})
		if err != nil {
			return fmt.Errorf("init archive: %w", err)
		}
		arch.Start(ctx)
		defer arch.Stop()
		logArchive = arch
	}

	reconciler, err := service.NewReconciler(repo, calculator, chain, logArchive, tolerance, logger)
	if err != nil {
		return fmt.Errorf("init reconciler: %w", err)
	}

	monitor, err := service.NewMonitor(repo, reconciler, metrics.NewMonitor(), service.MonitorConfig{
		WorkerCount:  cfg.Workers,
		BatchTimeout: cfg.BatchTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("init monitor: %w", err)
	}

	if cfg.AccountID != 0 {
		result, err := monitor.MonitorSingle(ctx, cfg.AccountID)
		if err != nil {
			return err
		}
		return printResult(os.Stdout, result, cfg.Format)
	}

	runOnce := func(ctx context.Context) error {
		summary, err := monitor.MonitorAll(ctx, !cfg.IncludeInactive)
		if err != nil {
			return err
		}
		return printSummary(os.Stdout, summary, cfg.Format)
	}

	if cfg.Interval <= 0 {
		return runOnce(ctx)
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)
	logger.Info("starting wallet monitor",
		zap.Duration("interval", cfg.Interval),
		zap.String("network", string(cfg.Network)))

	return clock.Every(ctx, cfg.Interval, runOnce, func(err error) {
		logger.Error("reconciliation pass failed", zap.Error(err))
	})
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
