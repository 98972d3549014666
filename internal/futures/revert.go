package futures

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// Revert rolls back every lifecycle transition recorded above the reorg
// ancestor. Rows created above it are already gone by the time the blocks
// service calls this; what remains are older outputs that were unlocked or
// spent on the discarded branch. Spends above the ancestor are cleared, and
// height releases above it are re-locked. Time releases stand: UnlockedHeight
// stays zero for those, and wall-clock time does not rewind with the chain.
func (t *Tracker) Revert(ctx context.Context, height uint64) error {
	rows, err := t.store.FutureTransitionsAbove(ctx, height)
	if err != nil {
		return fmt.Errorf("future transitions above %d: %w", height, err)
	}

	if len(rows) > 0 {
		changed := make([]model.FutureOutput, 0, len(rows))
		for _, row := range rows {
			if row.SpentHeight > height {
				row.SpentTxID = ""
				row.SpentHeight = 0
				row.SpentAt = time.Time{}
				row.Status = model.FutureLocked
				if row.UnlockedBy != model.UnlockedByNone {
					row.Status = model.FutureUnlocked
				}
			}
			if row.UnlockedBy == model.UnlockedByConfirmations && row.UnlockedHeight > height {
				row.Status = model.FutureLocked
				row.UnlockedBy = model.UnlockedByNone
				row.UnlockedHeight = 0
				row.UnlockedAt = time.Time{}
			}
			changed = append(changed, row)
		}
		if err := t.store.UpsertFutureOutputs(ctx, changed); err != nil {
			return fmt.Errorf("upsert future outputs: %w", err)
		}
		t.logger.Info("reverted future transitions",
			zap.Uint64("height", height),
			zap.Int("count", len(changed)))
	}

	// The rollback also dropped rows created above the ancestor and cleared
	// spends put outpoints back in play, so rebuild the cache from the store
	// rather than patching it.
	return t.warmOutstanding(ctx)
}
