package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// TransactionOutputsByHeightRange returns every output in [fromHeight, toHeight],
// grouped by transaction id.
func (r *Repository) TransactionOutputsByHeightRange(ctx context.Context, fromHeight, toHeight uint64) (map[string][]model.TransactionOutput, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_outputs_by_height_range", err, start)
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
WHERE network = ? AND block_height >= ? AND block_height <= ?
GROUP BY block_height, txid, output_index
ORDER BY txid ASC, output_index ASC`

	rows, err := r.conn.Query(ctx, query, r.network, fromHeight, toHeight)
	if err != nil {
		return nil, fmt.Errorf("query transaction outputs by height range: %w", err)
	}
	defer closeRows(rows, &err)

	result := make(map[string][]model.TransactionOutput)
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
		result[out.TxID] = append(result[out.TxID], out)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction outputs: %w", err)
	}

	return result, nil
}
