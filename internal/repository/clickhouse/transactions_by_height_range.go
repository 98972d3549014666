package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// TransactionsByHeightRange returns every transaction in [fromHeight, toHeight],
// ordered by height and position within the block so replays fold events in
// the order the chain produced them.
func (r *Repository) TransactionsByHeightRange(ctx context.Context, fromHeight, toHeight uint64) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transactions_by_height_range", err, start)
	}()

	const query = `
SELECT
	txid,
	block_height,
	argMax(block_hash, updated_at) AS block_hash,
	argMax(tx_index, updated_at) AS tx_index,
	argMax(timestamp, updated_at) AS timestamp,
	argMax(type, updated_at) AS type,
	argMax(input_count, updated_at) AS input_count,
	argMax(output_count, updated_at) AS output_count,
	argMax(asset_payload, updated_at) AS asset_payload,
	argMax(future_payload, updated_at) AS future_payload
FROM transactions
WHERE network = ? AND block_height >= ? AND block_height <= ?
GROUP BY block_height, txid
ORDER BY block_height ASC, tx_index ASC`

	rows, err := r.conn.Query(ctx, query, r.network, fromHeight, toHeight)
	if err != nil {
		return nil, fmt.Errorf("query transactions by height range: %w", err)
	}
	defer closeRows(rows, &err)

	var txs []model.Transaction
	for rows.Next() {
		var (
			tx     = model.Transaction{Network: r.network}
			txType string
		)
		if err = rows.Scan(
			&tx.TxID,
			&tx.BlockHeight,
			&tx.BlockHash,
			&tx.TxIndex,
			&tx.Timestamp,
			&txType,
			&tx.InputCount,
			&tx.OutputCount,
			&tx.AssetPayload,
			&tx.FuturePayload,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Type = chain.TxType(txType)
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return txs, nil
}
