// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"math/rand"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SleepWithJitter waits for d spread by up to ±spread/2 of itself, so loops
// sharing an interval across instances drift apart instead of firing in step.
// A non-positive duration returns immediately.
func SleepWithJitter(ctx context.Context, d time.Duration, spread float64) error {
	if d <= 0 {
		return ctx.Err()
	}
	if spread > 0 {
		d += time.Duration((rand.Float64() - 0.5) * spread * float64(d))
	}
	return SleepWithContext(ctx, d)
}
