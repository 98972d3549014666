package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// TransactionOutputsByTxID returns a transaction's outputs in index order.
func (r *Repository) TransactionOutputsByTxID(ctx context.Context, txid string) ([]model.TransactionOutput, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_outputs_by_txid", err, start)
	}()

	const query = `
SELECT
	txid,
	output_index,
	block_height,
	argMax(address, updated_at) AS address,
	argMax(value, updated_at) AS value,
	argMax(timestamp, updated_at) AS timestamp
FROM transaction_outputs
WHERE network = ? AND txid = ?
GROUP BY block_height, txid, output_index
ORDER BY output_index ASC`

	rows, err := r.conn.Query(ctx, query, r.network, txid)
	if err != nil {
		return nil, fmt.Errorf("query transaction outputs by txid: %w", err)
	}
	defer closeRows(rows, &err)

	var outputs []model.TransactionOutput
	for rows.Next() {
		out := model.TransactionOutput{Network: r.network}
		if err = rows.Scan(
			&out.TxID,
			&out.Index,
			&out.BlockHeight,
			&out.Address,
			&out.Value,
			&out.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan transaction output: %w", err)
		}
		outputs = append(outputs, out)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction outputs: %w", err)
	}

	return outputs, nil
}
