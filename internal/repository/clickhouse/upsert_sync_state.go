package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// UpsertSyncState writes the progress row for one service.
func (r *Repository) UpsertSyncState(ctx context.Context, state model.SyncState) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_sync_state", err, start)
	}()

	const query = `
INSERT INTO sync_state (
	network,
	service,
	current_block,
	target_block,
	blocks_processed,
	items_processed,
	avg_block_time_ms,
	estimated_completion,
	status,
	last_error,
	last_synced_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare sync state batch: %w", err)
	}

	if err = batch.Append(
		string(state.Network),
		string(state.Service),
		state.CurrentBlock,
		state.TargetBlock,
		state.BlocksProcessed,
		state.ItemsProcessed,
		state.AvgBlockTime.Milliseconds(),
		epochWhenZero(state.EstimatedCompletion),
		string(state.Status),
		state.LastError,
		epochWhenZero(state.LastSyncedAt),
	); err != nil {
		return fmt.Errorf("append sync state: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("upsert sync state: %w", err)
	}
	return nil
}
