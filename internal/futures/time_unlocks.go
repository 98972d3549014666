package futures

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// EvaluateTimeUnlocks releases every locked output whose wall-clock condition
// has passed. Height conditions resolve inside Step; this pass runs on a
// schedule because time passes without new blocks. Released rows keep
// UnlockedHeight at zero, so a later rollback never re-locks them.
func (t *Tracker) EvaluateTimeUnlocks(ctx context.Context) error {
	started := time.Now()
	err := t.evaluateTimeUnlocks(ctx)
	t.metrics.ObserveTimePass(err, started)
	return err
}

func (t *Tracker) evaluateTimeUnlocks(ctx context.Context) error {
	now := t.clk.Now().UTC()
	due, err := t.store.LockedFuturesDueByTime(ctx, now)
	if err != nil {
		return fmt.Errorf("locked futures due by time: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	changed := make([]model.FutureOutput, 0, len(due))
	for _, row := range due {
		row.Status = model.FutureUnlocked
		row.UnlockedBy = model.UnlockedByTime
		row.UnlockedAt = now
		changed = append(changed, row)
	}
	if err := t.store.UpsertFutureOutputs(ctx, changed); err != nil {
		return fmt.Errorf("upsert future outputs: %w", err)
	}

	t.metrics.ObserveTransitions("unlocked_time", len(changed))
	t.logger.Info("released time locked outputs",
		zap.Int("count", len(changed)),
		zap.Time("now", now))
	return nil
}
