package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// AssetsByAddress returns every asset the address created or currently owns.
func (r *Repository) AssetsByAddress(ctx context.Context, address string) ([]model.Asset, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("assets_by_address", err, start)
	}()

	const query = `
SELECT` + latestAssetColumns + `
FROM assets
WHERE network = ?
GROUP BY asset_id
HAVING creator = ? OR current_owner = ?
ORDER BY created_height ASC, asset_id ASC`

	rows, err := r.conn.Query(ctx, query, r.network, address, address)
	if err != nil {
		return nil, fmt.Errorf("query assets by address: %w", err)
	}
	defer closeRows(rows, &err)

	var assets []model.Asset
	for rows.Next() {
		asset, scanErr := r.scanAsset(rows)
		if scanErr != nil {
			err = scanErr
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, asset)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assets by address: %w", err)
	}

	return assets, nil
}
