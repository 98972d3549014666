package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// AssetsByIDs returns the latest version of each requested asset, keyed by
// asset id. Unknown ids are absent from the result.
func (r *Repository) AssetsByIDs(ctx context.Context, assetIDs []string) (map[string]model.Asset, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("assets_by_ids", err, start)
	}()

	result := make(map[string]model.Asset, len(assetIDs))
	if len(assetIDs) == 0 {
		return result, nil
	}

	const query = `
SELECT` + latestAssetColumns + `
FROM assets
WHERE network = ? AND asset_id IN ?
GROUP BY asset_id`

	rows, err := r.conn.Query(ctx, query, r.network, assetIDs)
	if err != nil {
		return nil, fmt.Errorf("query assets by ids: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		asset, scanErr := r.scanAsset(rows)
		if scanErr != nil {
			err = scanErr
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		result[asset.AssetID] = asset
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assets: %w", err)
	}

	return result, nil
}
