package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/lightningnetwork/lnd/clock"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/assets"
	"github.com/assetsightworks/assetsight-backend/internal/futures"
	"github.com/assetsightworks/assetsight-backend/internal/leader"
	"github.com/assetsightworks/assetsight-backend/internal/metrics"
	"github.com/assetsightworks/assetsight-backend/internal/model"
	"github.com/assetsightworks/assetsight-backend/internal/node"
	"github.com/assetsightworks/assetsight-backend/internal/notify"
	"github.com/assetsightworks/assetsight-backend/internal/repository/clickhouse"
	"github.com/assetsightworks/assetsight-backend/internal/syncer"
)

type config struct {
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"SYNCER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network         string        `long:"network" env:"SYNCER_NETWORK" description:"network name" default:"mainnet"`
	RPCURL          string        `long:"rpc-url" env:"SYNCER_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8766"`
	RPCUser         string        `long:"rpc-user" env:"SYNCER_RPC_USER" description:"node RPC username"`
	RPCPassword     string        `long:"rpc-password" env:"SYNCER_RPC_PASSWORD" description:"node RPC password"`
	RPCRateLimit    int           `long:"rpc-rate-limit" env:"SYNCER_RPC_RATE_LIMIT" description:"node RPC requests per second" default:"10"`
	SyncEnabled     bool          `long:"sync-enabled" env:"SYNCER_SYNC_ENABLED" description:"run the sync loops" default:"true"`
	PollInterval    time.Duration `long:"poll-interval" env:"SYNCER_POLL_INTERVAL" description:"idle wait once a service has caught up" default:"5s"`
	SyncedTolerance uint64        `long:"synced-tolerance" env:"SYNCER_SYNCED_TOLERANCE" description:"blocks behind target still reported as synced" default:"5"`
	StepBlocks      uint64        `long:"step-blocks" env:"SYNCER_STEP_BLOCKS" description:"blocks fetched per catch-up step" default:"128"`
	BlockTimeout    time.Duration `long:"block-timeout" env:"SYNCER_BLOCK_TIMEOUT" description:"per block fetch timeout" default:"30s"`
	MaxReorgDepth   uint64        `long:"max-reorg-depth" env:"SYNCER_MAX_REORG_DEPTH" description:"rollback depth before parking the blocks service in error" default:"100"`
	FuturesTickSpec string        `long:"futures-tick" env:"SYNCER_FUTURES_TICK" description:"cron spec for the time unlock pass" default:"*/30 * * * * *"`
	RedisAddr       string        `long:"redis-addr" env:"SYNCER_REDIS_ADDR" description:"redis for the leader lock and indexed-block events; empty runs without either"`
	MetricsAddr     string        `long:"metrics-addr" env:"SYNCER_METRICS_ADDR" description:"prometheus listen address" default:":9090"`
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
		logger.Fatal("syncer failed", zap.Error(err))
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

	rpc, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init node rpc client: %w", err)
	}
	defer func() {
		rpc.Shutdown()
		rpc.WaitForShutdown()
	}()

	source, err := node.NewClient(rpc, cfg.RPCRateLimit, metrics.NewNodeClient(network), logger)
	if err != nil {
		return fmt.Errorf("init node client: %w", err)
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				logger.Warn("close redis client", zap.Error(closeErr))
			}
		}()
	}

	// Metrics are served outside the leadership scope so a standby replica
	// is still scrapeable.
	go serveMetrics(ctx, cfg.MetricsAddr, logger)

	if !cfg.SyncEnabled {
		logger.Info("sync disabled; serving metrics only")
		<-ctx.Done()
		return nil
	}

	lock := leader.NewLock(redisClient, network, leader.DefaultConfig(), logger)
	return lock.Run(ctx, func(ctx context.Context) error {
		return runServices(ctx, cfg, repo, source, redisClient, network, logger)
	})
}

// runServices drives the three sync loops and the time unlock tick for as
// long as the context holds, which is until shutdown or lost leadership.
func runServices(
	ctx context.Context,
	cfg config,
	repo *clickhouse.Repository,
	source *node.Client,
	redisClient *redis.Client,
	network model.Network,
	logger *zap.Logger,
) error {
	var notifier syncer.Notifier
	if redisClient != nil {
		publisher := notify.NewPublisher(redisClient, network, notify.DefaultConfig(), logger)
		publisher.Start(ctx)
		defer publisher.Stop()
		notifier = publisher
	}

	assetProcessor, err := assets.NewProcessor(repo, metrics.NewAssetProcessor(network), network, assets.DefaultConfig(), logger)
	if err != nil {
		return fmt.Errorf("init asset processor: %w", err)
	}
	futureTracker, err := futures.NewTracker(repo, metrics.NewFutureTracker(network), clock.NewDefaultClock(), network, futures.DefaultConfig(), logger)
	if err != nil {
		return fmt.Errorf("init future tracker: %w", err)
	}

	ingesterCfg := syncer.DefaultIngesterConfig()
	ingesterCfg.StepBlocks = cfg.StepBlocks
	ingesterCfg.BlockTimeout = cfg.BlockTimeout
	ingesterCfg.MaxReorgDepth = cfg.MaxReorgDepth
	blocksMetrics := metrics.NewCoordinator(model.ServiceBlocks, network)
	ingester, err := syncer.NewBlockIngester(repo, source, assetProcessor, futureTracker, blocksMetrics, notifier, network, ingesterCfg, logger)
	if err != nil {
		return fmt.Errorf("init block ingester: %w", err)
	}

	coordCfg := syncer.Config{
		PollInterval:    cfg.PollInterval,
		SyncedTolerance: cfg.SyncedTolerance,
	}
	loops := []struct {
		service   model.SyncService
		processor syncer.Processor
		metrics   syncer.CoordinatorMetrics
	}{
		{model.ServiceBlocks, ingester, blocksMetrics},
		{model.ServiceAssets, assetProcessor, metrics.NewCoordinator(model.ServiceAssets, network)},
		{model.ServiceFutures, futureTracker, metrics.NewCoordinator(model.ServiceFutures, network)},
	}
	coordinators := make([]*syncer.Coordinator, 0, len(loops))
	for _, loop := range loops {
		coordinator, err := syncer.NewCoordinator(loop.processor, repo, loop.metrics, loop.service, network, coordCfg, logger)
		if err != nil {
			return fmt.Errorf("init %s coordinator: %w", loop.service, err)
		}
		coordinators = append(coordinators, coordinator)
	}

	scheduler := cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cron.DefaultLogger)))
	if _, err := scheduler.AddFunc(cfg.FuturesTickSpec, func() {
		tickCtx, cancel := context.WithTimeout(ctx, 25*time.Second)
		defer cancel()
		if err := futureTracker.EvaluateTimeUnlocks(tickCtx); err != nil {
			logger.Warn("time unlock pass failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("schedule time unlock pass: %w", err)
	}
	scheduler.Start()
	defer func() {
		<-scheduler.Stop().Done()
	}()

	logger.Info("sync services starting",
		zap.String("network", string(network)),
		zap.Uint64("step_blocks", cfg.StepBlocks))

	errCh := make(chan error, len(coordinators))
	var wg sync.WaitGroup
	for _, coordinator := range coordinators {
		coordinator := coordinator
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := coordinator.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- err
			}
		}()
	}
	wg.Wait()
	close(errCh)
	return <-errCh
}

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		<-ctx.Done()
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()

	logger.Info("starting metrics server", zap.String("addr", addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("metrics server failed", zap.Error(err))
	}
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(cfg, nil)
}
