package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
)

// OutstandingFutureOutpoints returns the outpoints of every future output
// that has not been spent yet. The tracker warms its spend-detection cache
// from this on startup and after a rollback.
func (r *Repository) OutstandingFutureOutpoints(ctx context.Context) ([]chain.Outpoint, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("outstanding_future_outpoints", err, start)
	}()

	const query = `
SELECT txid, vout
FROM future_outputs
WHERE network = ?
GROUP BY txid, vout
HAVING argMax(status, updated_at) != 'spent'`

	rows, err := r.conn.Query(ctx, query, r.network)
	if err != nil {
		return nil, fmt.Errorf("query outstanding future outpoints: %w", err)
	}
	defer closeRows(rows, &err)

	var outpoints []chain.Outpoint
	for rows.Next() {
		var op chain.Outpoint
		if err = rows.Scan(&op.TxID, &op.Vout); err != nil {
			return nil, fmt.Errorf("scan future outpoint: %w", err)
		}
		outpoints = append(outpoints, op)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate future outpoints: %w", err)
	}

	return outpoints, nil
}
