package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// LockedFuturesDueByHeight returns locked futures whose height condition is
// satisfied at the given height.
func (r *Repository) LockedFuturesDueByHeight(ctx context.Context, height uint64) ([]model.FutureOutput, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("locked_futures_due_by_height", err, start)
	}()

	const query = `
SELECT` + latestFutureColumns + `
FROM future_outputs
WHERE network = ?
GROUP BY txid, vout
HAVING status = 'locked' AND unlock_height >= 0 AND unlock_height <= ?
ORDER BY unlock_height ASC, txid ASC, vout ASC`

	rows, err := r.conn.Query(ctx, query, r.network, height)
	if err != nil {
		return nil, fmt.Errorf("query locked futures due by height: %w", err)
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
