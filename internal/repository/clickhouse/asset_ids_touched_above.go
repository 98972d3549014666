package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// AssetIDsTouchedAbove returns every asset id referenced by a transfer row or
// a typed transaction above the given height. A rollback captures this before
// deleting so it knows which surviving assets to rebuild.
func (r *Repository) AssetIDsTouchedAbove(ctx context.Context, height uint64) ([]string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("asset_ids_touched_above", err, start)
	}()

	const query = `
SELECT DISTINCT asset_id
FROM (
	SELECT asset_id
	FROM asset_transfers
	WHERE network = ? AND block_height > ?
	UNION ALL
	SELECT JSONExtractString(asset_payload, 'assetId') AS asset_id
	FROM transactions
	WHERE network = ? AND block_height > ?
		AND type IN ('asset_create', 'asset_mint', 'asset_transfer', 'asset_update')
)
WHERE asset_id != ''`

	rows, err := r.conn.Query(ctx, query, r.network, height, r.network, height)
	if err != nil {
		return nil, fmt.Errorf("query asset ids touched above height: %w", err)
	}
	defer closeRows(rows, &err)

	var assetIDs []string
	for rows.Next() {
		var assetID string
		if err = rows.Scan(&assetID); err != nil {
			return nil, fmt.Errorf("scan asset id: %w", err)
		}
		assetIDs = append(assetIDs, assetID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate asset ids: %w", err)
	}

	return assetIDs, nil
}
