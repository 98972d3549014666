package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

const latestSyncStateColumns = `
	service,
	argMax(current_block, updated_at) AS current_block,
	argMax(target_block, updated_at) AS target_block,
	argMax(blocks_processed, updated_at) AS blocks_processed,
	argMax(items_processed, updated_at) AS items_processed,
	argMax(avg_block_time_ms, updated_at) AS avg_block_time_ms,
	argMax(estimated_completion, updated_at) AS estimated_completion,
	argMax(status, updated_at) AS status,
	argMax(last_error, updated_at) AS last_error,
	argMax(last_synced_at, updated_at) AS last_synced_at`

func (r *Repository) scanSyncState(rows driver.Rows) (model.SyncState, error) {
	var (
		state   = model.SyncState{Network: r.network}
		service string
		status  string
		avgMS   int64
	)
	if err := rows.Scan(
		&service,
		&state.CurrentBlock,
		&state.TargetBlock,
		&state.BlocksProcessed,
		&state.ItemsProcessed,
		&avgMS,
		&state.EstimatedCompletion,
		&status,
		&state.LastError,
		&state.LastSyncedAt,
	); err != nil {
		return model.SyncState{}, err
	}
	state.Service = model.SyncService(service)
	state.Status = model.SyncStatus(status)
	state.AvgBlockTime = time.Duration(avgMS) * time.Millisecond
	state.EstimatedCompletion = zeroWhenEpoch(state.EstimatedCompletion)
	state.LastSyncedAt = zeroWhenEpoch(state.LastSyncedAt)
	return state, nil
}

// SyncState returns one service's progress row, or nil when the service has
// never written one.
func (r *Repository) SyncState(ctx context.Context, service model.SyncService) (*model.SyncState, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("sync_state", err, start)
	}()

	const query = `
SELECT` + latestSyncStateColumns + `
FROM sync_state
WHERE network = ? AND service = ?
GROUP BY service`

	rows, err := r.conn.Query(ctx, query, r.network, string(service))
	if err != nil {
		return nil, fmt.Errorf("query sync state: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		return nil, nil
	}

	state, err := r.scanSyncState(rows)
	if err != nil {
		return nil, fmt.Errorf("scan sync state: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sync state: %w", err)
	}

	return &state, nil
}
