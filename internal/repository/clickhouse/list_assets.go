package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// ListAssets returns a page of assets, newest first. Hidden assets are
// excluded unless includeHidden is set.
func (r *Repository) ListAssets(ctx context.Context, limit, offset uint64, includeHidden bool) ([]model.Asset, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_assets", err, start)
	}()

	if limit == 0 {
		return nil, nil
	}

	const query = `
SELECT` + latestAssetColumns + `
FROM assets
WHERE network = ?
GROUP BY asset_id
HAVING ? OR hidden = false
ORDER BY created_height DESC, asset_id ASC
LIMIT ? OFFSET ?`

	rows, err := r.conn.Query(ctx, query, r.network, includeHidden, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
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
		return nil, fmt.Errorf("iterate assets: %w", err)
	}

	return assets, nil
}
