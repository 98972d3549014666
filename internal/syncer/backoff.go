package syncer

import (
	"math"
	"math/rand"
	"time"
)

// BackoffConfig tunes the retry delay applied after failed sync steps.
type BackoffConfig struct {
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	Multiplier    float64
	JitterEnabled bool
}

// DefaultBackoffConfig returns production-ready retry settings.
func DefaultBackoffConfig() BackoffConfig {
	return BackoffConfig{
		InitialDelay:  2 * time.Second,
		MaxDelay:      60 * time.Second,
		Multiplier:    2.0,
		JitterEnabled: true,
	}
}

// backoff tracks a failure streak and yields an exponentially growing delay,
// jittered to prevent thundering herd.
type backoff struct {
	cfg     BackoffConfig
	attempt int
}

func newBackoff(cfg BackoffConfig) *backoff {
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = DefaultBackoffConfig().InitialDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = DefaultBackoffConfig().MaxDelay
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = DefaultBackoffConfig().Multiplier
	}
	return &backoff{cfg: cfg}
}

// Next returns the delay for the current failure streak and advances it.
func (b *backoff) Next() time.Duration {
	delay := float64(b.cfg.InitialDelay) * math.Pow(b.cfg.Multiplier, float64(b.attempt))
	if delay > float64(b.cfg.MaxDelay) {
		delay = float64(b.cfg.MaxDelay)
	}
	b.attempt++

	if b.cfg.JitterEnabled {
		jitter := rand.Float64() * 0.3 * delay
		delay = delay + jitter - (0.15 * delay)
	}

	return time.Duration(delay)
}

// Reset clears the failure streak after a successful step.
func (b *backoff) Reset() {
	b.attempt = 0
}
