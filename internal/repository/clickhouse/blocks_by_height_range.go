package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// BlocksByHeightRange returns stored blocks in [fromHeight, toHeight] in
// ascending height order. Heights that were never stored are absent.
func (r *Repository) BlocksByHeightRange(ctx context.Context, fromHeight, toHeight uint64) ([]model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("blocks_by_height_range", err, start)
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
WHERE network = ? AND height >= ? AND height <= ?
GROUP BY height
ORDER BY height ASC`

	rows, err := r.conn.Query(ctx, query, r.network, fromHeight, toHeight)
	if err != nil {
		return nil, fmt.Errorf("query blocks by height range: %w", err)
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
		return nil, fmt.Errorf("iterate blocks: %w", err)
	}

	return blocks, nil
}
