// Package notify publishes indexed-block events over redis pub/sub so
// downstream consumers can follow the chain tip without polling the store.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/model"
	"github.com/assetsightworks/assetsight-backend/pkg/batcher"
)

// Config tunes event buffering and publish pacing.
type Config struct {
	// FlushSize is how many events one flush publishes.
	FlushSize int
	// FlushInterval bounds how long a buffered event waits.
	FlushInterval time.Duration
	// PublishRPS rate-limits flushes toward redis.
	PublishRPS int
}

// DefaultConfig returns publisher settings suited for tip following.
func DefaultConfig() Config {
	return Config{
		FlushSize:     64,
		FlushInterval: time.Second,
		PublishRPS:    10,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.FlushSize <= 0 {
		c.FlushSize = def.FlushSize
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = def.FlushInterval
	}
	if c.PublishRPS <= 0 {
		c.PublishRPS = def.PublishRPS
	}
	return c
}

// blockIndexedEvent is the published payload. The network rides along so
// pattern subscribers across networks can tell events apart.
type blockIndexedEvent struct {
	Network   string    `json:"network"`
	Height    uint64    `json:"height"`
	Hash      string    `json:"hash"`
	IndexedAt time.Time `json:"indexedAt"`
}

// Publisher buffers indexed-block events and publishes them to the
// network's block.indexed channel. Publishing is best effort: a full
// buffer drops events and flush failures are logged, never surfaced to
// the ingestion path.
type Publisher struct {
	logger  *zap.Logger
	channel string
	events  *batcher.Batcher[blockIndexedEvent]
	network model.Network
}

// NewPublisher builds the event publisher for one network.
func NewPublisher(client *redis.Client, network model.Network, cfg Config, logger *zap.Logger) *Publisher {
	logger = logger.With(zap.String("network", string(network)))
	cfg = cfg.withDefaults()

	p := &Publisher{
		logger:  logger,
		channel: fmt.Sprintf("assetsight:%s:block.indexed", network),
		network: network,
	}
	p.events = batcher.New(logger, func(ctx context.Context, events []blockIndexedEvent) error {
		return publish(ctx, client, p.channel, events)
	}, cfg.FlushSize, cfg.FlushInterval, cfg.PublishRPS)
	return p
}

// Start begins the background flush loop.
func (p *Publisher) Start(ctx context.Context) {
	p.events.Start(ctx)
}

// Stop drains the buffer and stops the flush loop.
func (p *Publisher) Stop() {
	p.events.Stop()
}

// BlockIndexed queues one event without blocking.
func (p *Publisher) BlockIndexed(height uint64, hash string) {
	ev := blockIndexedEvent{
		Network:   string(p.network),
		Height:    height,
		Hash:      hash,
		IndexedAt: time.Now().UTC(),
	}
	if !p.events.TryAdd(ev) {
		p.logger.Debug("indexed-block event dropped", zap.Uint64("height", height))
	}
}

func publish(ctx context.Context, client *redis.Client, channel string, events []blockIndexedEvent) error {
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("encode event %d: %w", ev.Height, err)
		}
		if err := client.Publish(ctx, channel, payload).Err(); err != nil {
			return fmt.Errorf("publish %s: %w", channel, err)
		}
	}
	return nil
}
