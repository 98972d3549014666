package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// FuturesByOutpoints returns the latest version of each requested future
// output, keyed by the outpoint string.
func (r *Repository) FuturesByOutpoints(ctx context.Context, outpoints []chain.Outpoint) (map[string]model.FutureOutput, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("futures_by_outpoints", err, start)
	}()

	result := make(map[string]model.FutureOutput, len(outpoints))
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
SELECT` + latestFutureColumns + `
FROM future_outputs
WHERE network = ? AND txid IN ?
GROUP BY txid, vout`

	rows, err := r.conn.Query(ctx, query, r.network, txids)
	if err != nil {
		return nil, fmt.Errorf("query futures by outpoints: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		future, scanErr := r.scanFutureOutput(rows)
		if scanErr != nil {
			err = scanErr
			return nil, fmt.Errorf("scan future output: %w", err)
		}
		key := chain.Outpoint{TxID: future.TxID, Vout: future.Vout}.String()
		if _, ok := wanted[key]; ok {
			result[key] = future
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate futures: %w", err)
	}

	return result, nil
}
