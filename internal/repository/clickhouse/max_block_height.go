package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// MaxBlockHeight returns the highest stored block height. The second return
// value reports whether any block exists at all, so height 0 from an empty
// store is not mistaken for a stored genesis block.
func (r *Repository) MaxBlockHeight(ctx context.Context) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_block_height", err, start)
	}()

	const query = `
SELECT coalesce(max(height), toUInt64(0)) AS max_height, count() AS total
FROM blocks
WHERE network = ?`

	rows, err := r.conn.Query(ctx, query, r.network)
	if err != nil {
		return 0, false, fmt.Errorf("query max block height: %w", err)
	}
	defer closeRows(rows, &err)

	var (
		height uint64
		total  uint64
	)
	if !rows.Next() {
		return 0, false, fmt.Errorf("max block height not found")
	}
	if err = rows.Scan(&height, &total); err != nil {
		return 0, false, fmt.Errorf("scan max block height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max block height: %w", err)
	}

	return height, total > 0, nil
}
