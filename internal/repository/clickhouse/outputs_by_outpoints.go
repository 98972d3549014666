package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// OutputsByOutpoints returns stored outputs for the requested outpoints, keyed
// by the outpoint string. Missing outpoints are simply absent from the result.
func (r *Repository) OutputsByOutpoints(ctx context.Context, outpoints []chain.Outpoint) (map[string]model.TransactionOutput, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("outputs_by_outpoints", err, start)
	}()

	result := make(map[string]model.TransactionOutput, len(outpoints))
	if len(outpoints) == 0 {
		return result, nil
	}

	wanted := make(map[string]struct{}, len(outpoints))
	txids := make([]string, 0, len(outpoints))
	seen := make(map[string]struct{}, len(outpoints))
	for _, op := range outpoints {
		wanted[op.String()] = struct{}{}
		if _, ok := seen[op.TxID]; !ok {
			seen[op.TxID] = struct{}{}
			txids = append(txids, op.TxID)
		}
	}

	const query = `
SELECT
	txid,
	output_index,
	block_height,
	argMax(address, updated_at) AS address,
	argMax(value, updated_at) AS value,
	argMax(timestamp, updated_at) AS timestamp
FROM transaction_outputs
WHERE network = ? AND txid IN ?
GROUP BY block_height, txid, output_index`

	rows, err := r.conn.Query(ctx, query, r.network, txids)
	if err != nil {
		return nil, fmt.Errorf("query outputs by outpoints: %w", err)
	}
	defer closeRows(rows, &err)

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
			return nil, fmt.Errorf("scan output: %w", err)
		}
		key := chain.Outpoint{TxID: out.TxID, Vout: out.Index}.String()
		if _, ok := wanted[key]; ok {
			result[key] = out
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outputs: %w", err)
	}

	return result, nil
}
