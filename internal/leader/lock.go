// Package leader serializes the sync daemon behind a redis lock so exactly
// one instance advances the chain views at a time.
package leader

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/clock"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// ErrLeadershipLost reports that another instance took the lock over while
// the callback was running. The caller is expected to exit and restart.
var ErrLeadershipLost = errors.New("leadership lost")

// campaignJitter spreads acquisition retries so standby instances do not all
// hit redis the moment a lock expires.
const campaignJitter = 0.5

// refreshScript extends the lock only while this instance still owns it.
var refreshScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
end
return 0
`)

// releaseScript deletes the lock only while this instance still owns it.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Config tunes the lock lifecycle.
type Config struct {
	// TTL is how long the lock survives without a refresh.
	TTL time.Duration
	// RetryInterval is the wait between acquisition attempts.
	RetryInterval time.Duration
}

// DefaultConfig returns lock settings suited for a long-running daemon.
func DefaultConfig() Config {
	return Config{
		TTL:           15 * time.Second,
		RetryInterval: 5 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.TTL <= 0 {
		c.TTL = def.TTL
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = def.RetryInterval
	}
	return c
}

// Lock is a single-holder redis lock refreshed in the background while the
// guarded callback runs. A nil client disables locking, which suits
// single-instance deployments.
type Lock struct {
	logger *zap.Logger
	client *redis.Client
	key    string
	id     string
	cfg    Config
	sleep  func(context.Context, time.Duration) error
}

// NewLock builds the leader lock for one network.
func NewLock(client *redis.Client, network model.Network, cfg Config, logger *zap.Logger) *Lock {
	return &Lock{
		logger: logger.With(zap.String("network", string(network))),
		client: client,
		key:    fmt.Sprintf("assetsight:%s:syncer.leader", network),
		id:     instanceID(),
		cfg:    cfg.withDefaults(),
		sleep: func(ctx context.Context, d time.Duration) error {
			return clock.SleepWithJitter(ctx, d, campaignJitter)
		},
	}
}

// Run blocks until leadership is acquired, then invokes fn with a context
// that is canceled if the lock is lost. The lock is released when fn
// returns. With locking disabled fn runs directly.
func (l *Lock) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if l.client == nil {
		l.logger.Info("leader lock disabled")
		return fn(ctx)
	}

	if err := l.acquire(ctx); err != nil {
		return err
	}
	l.logger.Info("leadership acquired", zap.String("key", l.key), zap.String("id", l.id))

	leaderCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var lost atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if l.refresh(leaderCtx) {
			lost.Store(true)
			cancel()
		}
	}()

	err := fn(leaderCtx)
	cancel()
	wg.Wait()
	l.release()

	if lost.Load() && (err == nil || errors.Is(err, context.Canceled)) {
		return ErrLeadershipLost
	}
	return err
}

func (l *Lock) acquire(ctx context.Context) error {
	for {
		ok, err := l.client.SetNX(ctx, l.key, l.id, l.cfg.TTL).Result()
		switch {
		case err != nil:
			l.logger.Warn("leader lock attempt failed", zap.Error(err))
		case ok:
			return nil
		default:
			l.logger.Debug("leader lock held elsewhere; waiting", zap.String("key", l.key))
		}
		if err := l.sleep(ctx, l.cfg.RetryInterval); err != nil {
			return err
		}
	}
}

// refresh extends the lock until the context ends. It reports true when
// leadership is gone: either the key changed hands, or refreshes kept
// failing past the TTL so another instance may already hold it.
func (l *Lock) refresh(ctx context.Context) bool {
	interval := l.cfg.TTL / 3
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var failures int
	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			kept, err := refreshScript.Run(ctx, l.client, []string{l.key}, l.id, l.cfg.TTL.Milliseconds()).Int()
			if err != nil {
				if ctx.Err() != nil {
					return false
				}
				failures++
				l.logger.Warn("leader lock refresh failed", zap.Error(err), zap.Int("failures", failures))
				if time.Duration(failures)*interval >= l.cfg.TTL {
					return true
				}
				continue
			}
			failures = 0
			if kept == 0 {
				l.logger.Error("leader lock taken over", zap.String("key", l.key))
				return true
			}
		}
	}
}

func (l *Lock) release() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{l.key}, l.id).Err(); err != nil {
		l.logger.Warn("leader lock release failed", zap.Error(err))
		return
	}
	l.logger.Info("leadership released", zap.String("key", l.key))
}

func instanceID() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "syncer"
	}
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return host + "-" + hex.EncodeToString(buf)
}
