package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// FutureTransitionsAbove returns futures created at or below the given height
// whose unlock or spend was recorded above it. A rollback reverts these
// transitions; futures created above the height are deleted outright instead.
func (r *Repository) FutureTransitionsAbove(ctx context.Context, height uint64) ([]model.FutureOutput, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("future_transitions_above", err, start)
	}()

	const query = `
SELECT` + latestFutureColumns + `
FROM future_outputs
WHERE network = ?
GROUP BY txid, vout
HAVING created_height <= ? AND (unlocked_height > ? OR spent_height > ?)
ORDER BY created_height ASC, txid ASC, vout ASC`

	rows, err := r.conn.Query(ctx, query, r.network, height, height, height)
	if err != nil {
		return nil, fmt.Errorf("query future transitions above height: %w", err)
	}
	defer closeRows(rows, &err)

	var futures []model.FutureOutput
	for rows.Next() {
		future, scanErr := r.scanFutureOutput(rows)
		if scanErr != nil {
			err = scanErr
			return nil, fmt.Errorf("scan future output: %w", err)
		}
		futures = append(futures, future)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate future transitions: %w", err)
	}

	return futures, nil
}
