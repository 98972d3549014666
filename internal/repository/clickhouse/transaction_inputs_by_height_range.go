package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// TransactionInputsByHeightRange returns every input in [fromHeight, toHeight],
// grouped by transaction id.
func (r *Repository) TransactionInputsByHeightRange(ctx context.Context, fromHeight, toHeight uint64) (map[string][]model.TransactionInput, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_inputs_by_height_range", err, start)
	}()

	const query = `
SELECT
	txid,
	input_index,
	block_height,
	argMax(prev_txid, updated_at) AS prev_txid,
	argMax(prev_vout, updated_at) AS prev_vout,
	argMax(address, updated_at) AS address,
	argMax(value, updated_at) AS value,
	argMax(is_coinbase, updated_at) AS is_coinbase,
	argMax(timestamp, updated_at) AS timestamp
FROM transaction_inputs
WHERE network = ? AND block_height >= ? AND block_height <= ?
GROUP BY block_height, txid, input_index
ORDER BY txid ASC, input_index ASC`

	rows, err := r.conn.Query(ctx, query, r.network, fromHeight, toHeight)
	if err != nil {
		return nil, fmt.Errorf("query transaction inputs by height range: %w", err)
	}
	defer closeRows(rows, &err)

	result := make(map[string][]model.TransactionInput)
	for rows.Next() {
		in := model.TransactionInput{Network: r.network}
		if err = rows.Scan(
			&in.TxID,
			&in.Index,
			&in.BlockHeight,
			&in.PrevTxID,
			&in.PrevVout,
			&in.Address,
			&in.Value,
			&in.IsCoinbase,
			&in.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan transaction input: %w", err)
		}
		result[in.TxID] = append(result[in.TxID], in)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction inputs: %w", err)
	}

	return result, nil
}
