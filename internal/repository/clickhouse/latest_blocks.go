package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// LatestBlocks returns up to limit blocks below beforeHeight, newest first.
// beforeHeight 0 means the tip.
func (r *Repository) LatestBlocks(ctx context.Context, limit uint64, beforeHeight uint64) ([]model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_blocks", err, start)
	}()

	if limit == 0 {
		return nil, nil
	}

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
WHERE network = ? AND (? = 0 OR height < ?)
GROUP BY height
ORDER BY height DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, r.network, beforeHeight, beforeHeight, limit)
	if err != nil {
		return nil, fmt.Errorf("query latest blocks: %w", err)
	}
	defer closeRows(rows, &err)

	var blocks []model.Block
	for rows.Next() {
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
		blocks = append(blocks, block)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate latest blocks: %w", err)
	}

	return blocks, nil
}
