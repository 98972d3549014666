package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// AssetTransferAggregates recomputes each asset's minted supply, transfer
// count and last transfer recipient from transfer rows up to maxHeight.
// Duplicate row versions collapse in the inner grouping, which is what makes
// replaying a block after a partial flush safe.
func (r *Repository) AssetTransferAggregates(ctx context.Context, assetIDs []string, maxHeight uint64) (map[string]model.AssetTransferAggregate, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("asset_transfer_aggregates", err, start)
	}()

	result := make(map[string]model.AssetTransferAggregate, len(assetIDs))
	if len(assetIDs) == 0 {
		return result, nil
	}

	const query = `
WITH latest AS (
	SELECT
		asset_id,
		block_height,
		txid,
		vout,
		argMax(amount, updated_at) AS amount,
		argMax(kind, updated_at) AS kind,
		argMax(to_address, updated_at) AS to_address,
		argMax(tx_index, updated_at) AS tx_index
	FROM asset_transfers
	WHERE network = ? AND asset_id IN ? AND block_height <= ?
	GROUP BY asset_id, block_height, txid, vout
)
SELECT
	asset_id,
	sumIf(amount, kind = 'mint') AS minted,
	count() AS transfer_count,
	argMaxIf(to_address, (block_height, tx_index, vout), kind = 'transfer') AS last_recipient
FROM latest
GROUP BY asset_id`

	rows, err := r.conn.Query(ctx, query, r.network, assetIDs, maxHeight)
	if err != nil {
		return nil, fmt.Errorf("query asset transfer aggregates: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			assetID   string
			aggregate model.AssetTransferAggregate
		)
		if err = rows.Scan(
			&assetID,
			&aggregate.Minted,
			&aggregate.TransferCount,
			&aggregate.LastRecipient,
		); err != nil {
			return nil, fmt.Errorf("scan asset transfer aggregate: %w", err)
		}
		result[assetID] = aggregate
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate asset transfer aggregates: %w", err)
	}

	return result, nil
}
