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
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/assets"
	"github.com/assetsightworks/assetsight-backend/internal/metrics"
	"github.com/assetsightworks/assetsight-backend/internal/model"
	"github.com/assetsightworks/assetsight-backend/internal/repository/clickhouse"
	"github.com/assetsightworks/assetsight-backend/internal/transport"
)

type config struct {
	Addr          string `long:"addr" env:"API_ADDR" description:"listen address" default:":8000"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"API_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network       string `long:"network" env:"API_NETWORK" description:"network name" default:"mainnet"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
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

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network := model.Network(cfg.Network)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, network, metrics.NewRepository(network))
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Warn("close repository", zap.Error(closeErr))
		}
	}()

	// The reprocess hook replays stored transactions through the same fold
	// the assets service runs.
	reprocessor, err := assets.NewProcessor(repo, metrics.NewAssetProcessor(network), network, assets.DefaultConfig(), logger)
	if err != nil {
		return fmt.Errorf("init asset processor: %w", err)
	}
	handler, err := transport.NewHandler(repo, reprocessor, network, logger)
	if err != nil {
		return fmt.Errorf("init handler: %w", err)
	}

	router := handler.Router()
	router.Use(metrics.NewAPIServer(network).Middleware)

	mux := http.NewServeMux()
	mux.Handle("/", router)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", cfg.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
