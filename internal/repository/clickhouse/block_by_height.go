package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// BlockByHeight returns one stored block, or nil when the height is unknown.
func (r *Repository) BlockByHeight(ctx context.Context, height uint64) (*model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_by_height", err, start)
	}()

	const query = `
SELECT
	height,
	argMax(hash, updated_at) AS hash,
	argMax(prev_hash, updated_at) AS prev_hash,
	argMax(timestamp, updated_at) AS timestamp,
	argMax(difficulty, updated_at) AS difficulty,
	argMax(size, updated_at) AS size,
	argMax(miner, updated_at) AS miner,
	argMax(tx_count, updated_at) AS tx_count,
	argMax(txids, updated_at) AS txids
FROM blocks
WHERE network = ? AND height = ?
GROUP BY height`

	rows, err := r.conn.Query(ctx, query, r.network, height)
	if err != nil {
		return nil, fmt.Errorf("query block by height: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		return nil, nil
	}

	block := model.Block{Network: r.network}
	if err = rows.Scan(
		&block.Height,
		&block.Hash,
		&block.PrevHash,
		&block.Timestamp,
		&block.Difficulty,
		&block.Size,
		&block.Miner,
		&block.TXCount,
		&block.TxIDs,
	); err != nil {
		return nil, fmt.Errorf("scan block: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block: %w", err)
	}

	return &block, nil
}
