package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// AssetUpdateEvents returns the stored update transactions touching the given
// assets up to maxHeight, in the order the chain applied them. Rebuilds fold
// these over the create payload to restore mutable fields.
func (r *Repository) AssetUpdateEvents(ctx context.Context, assetIDs []string, maxHeight uint64) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("asset_update_events", err, start)
	}()

	if len(assetIDs) == 0 {
		return nil, nil
	}

	const query = `
SELECT
	txid,
	block_height,
	argMax(tx_index, updated_at) AS tx_index,
	argMax(timestamp, updated_at) AS timestamp,
	argMax(asset_payload, updated_at) AS asset_payload
FROM transactions
WHERE network = ? AND type = 'asset_update' AND block_height <= ?
	AND JSONExtractString(asset_payload, 'assetId') IN ?
GROUP BY block_height, txid
ORDER BY block_height ASC, tx_index ASC`

	rows, err := r.conn.Query(ctx, query, r.network, maxHeight, assetIDs)
	if err != nil {
		return nil, fmt.Errorf("query asset update events: %w", err)
	}
	defer closeRows(rows, &err)

	var txs []model.Transaction
	for rows.Next() {
		tx := model.Transaction{Network: r.network, Type: chain.TxTypeAssetUpdate}
		if err = rows.Scan(
			&tx.TxID,
			&tx.BlockHeight,
			&tx.TxIndex,
			&tx.Timestamp,
			&tx.AssetPayload,
		); err != nil {
			return nil, fmt.Errorf("scan asset update event: %w", err)
		}
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate asset update events: %w", err)
	}

	return txs, nil
}
