package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// BlockHashAtHeight returns the stored hash for a height, resolving to the
// latest version when a replay rewrote the row.
func (r *Repository) BlockHashAtHeight(ctx context.Context, height uint64) (string, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_hash_at_height", err, start)
	}()

	const query = `
SELECT argMax(hash, updated_at) AS hash
FROM blocks
WHERE network = ? AND height = ?
GROUP BY height`

	rows, err := r.conn.Query(ctx, query, r.network, height)
	if err != nil {
		return "", false, fmt.Errorf("query block hash at height: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		return "", false, nil
	}

	var hash string
	if err = rows.Scan(&hash); err != nil {
		return "", false, fmt.Errorf("scan block hash: %w", err)
	}
	if err = rows.Err(); err != nil {
		return "", false, fmt.Errorf("iterate block hash: %w", err)
	}

	return hash, true, nil
}
