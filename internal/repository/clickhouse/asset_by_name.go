package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// AssetByName returns the asset stored under a normalized name, or nil when
// unknown. Callers normalize the declared name before the lookup.
func (r *Repository) AssetByName(ctx context.Context, name string) (*model.Asset, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("asset_by_name", err, start)
	}()

	const query = `
SELECT` + latestAssetColumns + `
FROM assets
WHERE network = ? AND name = ?
GROUP BY asset_id
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, r.network, name)
	if err != nil {
		return nil, fmt.Errorf("query asset by name: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		return nil, nil
	}

	asset, err := r.scanAsset(rows)
	if err != nil {
		return nil, fmt.Errorf("scan asset: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate asset: %w", err)
	}

	return &asset, nil
}
