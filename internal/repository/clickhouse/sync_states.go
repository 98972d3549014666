package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// SyncStates returns the progress rows of every service, keyed by service.
func (r *Repository) SyncStates(ctx context.Context) (map[model.SyncService]model.SyncState, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("sync_states", err, start)
	}()

	const query = `
SELECT` + latestSyncStateColumns + `
FROM sync_state
WHERE network = ?
GROUP BY service`

	rows, err := r.conn.Query(ctx, query, r.network)
	if err != nil {
		return nil, fmt.Errorf("query sync states: %w", err)
	}
	defer closeRows(rows, &err)

	result := make(map[model.SyncService]model.SyncState, len(model.SyncServices))
	for rows.Next() {
		state, scanErr := r.scanSyncState(rows)
		if scanErr != nil {
			err = scanErr
			return nil, fmt.Errorf("scan sync state: %w", err)
		}
		result[state.Service] = state
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sync states: %w", err)
	}

	return result, nil
}
