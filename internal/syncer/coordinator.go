package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/clock"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// StepResult is the durably committed outcome of one processor step.
type StepResult struct {
	// Current is the last committed height after the step. A rollback moves
	// it backwards.
	Current uint64
	// Target is the height the service is chasing.
	Target uint64
	// Blocks is how many blocks the step committed.
	Blocks int
	// Items is how many domain records the step materialized.
	Items uint64
}

// Config tunes one coordinator loop.
type Config struct {
	// PollInterval is the idle wait once the service has caught up.
	PollInterval time.Duration
	// SyncedTolerance is how many blocks behind target still count as synced.
	SyncedTolerance uint64
	Backoff         BackoffConfig
}

// DefaultConfig returns coordinator settings suited for a tip follower.
func DefaultConfig() Config {
	return Config{
		PollInterval:    5 * time.Second,
		SyncedTolerance: 5,
		Backoff:         DefaultBackoffConfig(),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.PollInterval <= 0 {
		c.PollInterval = def.PollInterval
	}
	if c.SyncedTolerance == 0 {
		c.SyncedTolerance = def.SyncedTolerance
	}
	return c
}

// Coordinator drives one service's sync loop: load the persisted state, run
// one processor step, fold the committed progress back into sync_state. The
// persisted row is the source of truth, so operator pause and rollback clamps
// written by other components take effect on the next tick.
type Coordinator struct {
	logger    *zap.Logger
	service   model.SyncService
	network   model.Network
	processor Processor
	store     StateStore
	metrics   CoordinatorMetrics
	sleep     func(context.Context, time.Duration) error

	pollInterval    time.Duration
	syncedTolerance uint64
	backoff         *backoff
	window          progressWindow
}

// NewCoordinator builds a Coordinator for one sync service.
func NewCoordinator(
	processor Processor,
	store StateStore,
	metrics CoordinatorMetrics,
	service model.SyncService,
	network model.Network,
	cfg Config,
	logger *zap.Logger,
) (*Coordinator, error) {
	logger = logger.With(
		zap.String("service", string(service)),
		zap.String("network", string(network)),
	)
	if processor == nil {
		return nil, errors.New("coordinator processor is required")
	}
	if store == nil {
		return nil, errors.New("coordinator store is required")
	}
	if metrics == nil {
		return nil, errors.New("coordinator metrics is required")
	}
	cfg = cfg.withDefaults()

	return &Coordinator{
		logger:          logger,
		service:         service,
		network:         network,
		processor:       processor,
		store:           store,
		metrics:         metrics,
		sleep:           clock.SleepWithContext,
		pollInterval:    cfg.PollInterval,
		syncedTolerance: cfg.SyncedTolerance,
		backoff:         newBackoff(cfg.Backoff),
	}, nil
}

// Run drives the sync loop until the context is canceled.
func (c *Coordinator) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := c.run(ctx); err != nil {
			delay := c.backoff.Next()
			c.logger.Warn("sync step failed, backing off", zap.Error(err), zap.Duration("sleep", delay))
			if sleepErr := c.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		c.backoff.Reset()
	}
}

func (c *Coordinator) run(ctx context.Context) error {
	state, err := c.store.SyncState(ctx, c.service)
	if err != nil {
		return fmt.Errorf("load sync state: %w", err)
	}
	if state == nil {
		state = &model.SyncState{
			Network: c.network,
			Service: c.service,
			Status:  model.SyncNotStarted,
		}
	}
	if state.Status == model.SyncPaused {
		c.logger.Debug("service paused; waiting", zap.Duration("sleep", c.pollInterval))
		return c.sleep(ctx, c.pollInterval)
	}

	started := time.Now()
	res, err := c.processor.Step(ctx, *state)
	c.metrics.ObserveStep(err, res.Blocks, started)
	if err != nil {
		if errors.Is(err, ErrReorgDepthExceeded) {
			c.logger.Error("rollback limit exceeded, operator intervention required", zap.Error(err))
		}
		c.recordFailure(ctx, *state, err)
		return err
	}

	if res.Blocks == 0 && res.Target == 0 && state.Status == model.SyncNotStarted {
		// Nothing discovered yet; do not materialize a state row.
		return c.sleep(ctx, c.pollInterval)
	}

	*state = c.fold(*state, res, time.Since(started))
	c.metrics.SetProgress(state.CurrentBlock, state.TargetBlock)
	if err := c.store.UpsertSyncState(ctx, *state); err != nil {
		return fmt.Errorf("persist sync state: %w", err)
	}

	if res.Blocks == 0 {
		return c.sleep(ctx, c.pollInterval)
	}
	return nil
}

// fold merges a committed step into the persisted state and recomputes the
// derived status, rolling average and completion estimate.
func (c *Coordinator) fold(state model.SyncState, res StepResult, elapsed time.Duration) model.SyncState {
	now := time.Now().UTC()

	state.CurrentBlock = res.Current
	state.TargetBlock = res.Target
	state.BlocksProcessed += uint64(res.Blocks)
	state.ItemsProcessed += res.Items
	state.LastError = ""
	state.LastSyncedAt = now

	c.window.observe(res.Blocks, elapsed)
	state.AvgBlockTime = c.window.averageBlockTime()

	if behind := state.BehindBlocks(); behind > c.syncedTolerance {
		state.Status = model.SyncSyncing
		state.EstimatedCompletion = time.Time{}
		if state.AvgBlockTime > 0 {
			state.EstimatedCompletion = now.Add(time.Duration(behind) * state.AvgBlockTime)
		}
	} else {
		state.Status = model.SyncSynced
		state.EstimatedCompletion = time.Time{}
	}
	return state
}

func (c *Coordinator) recordFailure(ctx context.Context, state model.SyncState, stepErr error) {
	state.Status = model.SyncError
	state.LastError = stepErr.Error()
	state.LastSyncedAt = time.Now().UTC()
	if err := c.store.UpsertSyncState(ctx, state); err != nil {
		c.logger.Error("persist error state failed", zap.Error(err))
	}
}

const progressWindowSize = 32

type stepSample struct {
	blocks  int
	elapsed time.Duration
}

// progressWindow keeps the most recent committed steps for the rolling
// per-block time average. Idle steps are not sampled.
type progressWindow struct {
	samples [progressWindowSize]stepSample
	next    int
	count   int
}

func (w *progressWindow) observe(blocks int, elapsed time.Duration) {
	if blocks <= 0 {
		return
	}
	w.samples[w.next] = stepSample{blocks: blocks, elapsed: elapsed}
	w.next = (w.next + 1) % progressWindowSize
	if w.count < progressWindowSize {
		w.count++
	}
}

func (w *progressWindow) averageBlockTime() time.Duration {
	var blocks int
	var elapsed time.Duration
	for i := 0; i < w.count; i++ {
		blocks += w.samples[i].blocks
		elapsed += w.samples[i].elapsed
	}
	if blocks == 0 {
		return 0
	}
	return elapsed / time.Duration(blocks)
}
