package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// LockedFuturesDueByTime returns locked futures whose time condition is
// satisfied at the given instant.
func (r *Repository) LockedFuturesDueByTime(ctx context.Context, now time.Time) ([]model.FutureOutput, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("locked_futures_due_by_time", err, start)
	}()

	const query = `
SELECT` + latestFutureColumns + `
FROM future_outputs
WHERE network = ?
GROUP BY txid, vout
HAVING status = 'locked' AND lock_time >= 0 AND unlock_time <= ?
ORDER BY unlock_time ASC, txid ASC, vout ASC`

	rows, err := r.conn.Query(ctx, query, r.network, now)
	if err != nil {
		return nil, fmt.Errorf("query locked futures due by time: %w", err)
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
		return nil, fmt.Errorf("iterate locked futures: %w", err)
	}

	return futures, nil
}
