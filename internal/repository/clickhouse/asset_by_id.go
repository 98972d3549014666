package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// latestAssetColumns resolves the newest version of every asset field. Every
// asset reader shares it so the views cannot drift apart.
const latestAssetColumns = `
	asset_id,
	argMax(name, updated_at) AS name,
	argMax(kind, updated_at) AS kind,
	argMax(creator, updated_at) AS creator,
	argMax(current_owner, updated_at) AS current_owner,
	argMax(total_supply, updated_at) AS total_supply,
	argMax(circulating_supply, updated_at) AS circulating_supply,
	argMax(transfer_count, updated_at) AS transfer_count,
	argMax(is_sub_asset, updated_at) AS is_sub_asset,
	argMax(parent_asset_name, updated_at) AS parent_asset_name,
	argMax(updatable, updated_at) AS updatable,
	argMax(reference_hash, updated_at) AS reference_hash,
	argMax(hidden, updated_at) AS hidden,
	argMax(created_height, updated_at) AS created_height,
	argMax(created_at, updated_at) AS created_at`

func (r *Repository) scanAsset(rows driver.Rows) (model.Asset, error) {
	var (
		asset = model.Asset{Network: r.network}
		kind  string
	)
	if err := rows.Scan(
		&asset.AssetID,
		&asset.Name,
		&kind,
		&asset.Creator,
		&asset.CurrentOwner,
		&asset.TotalSupply,
		&asset.CirculatingSupply,
		&asset.TransferCount,
		&asset.IsSubAsset,
		&asset.ParentAssetName,
		&asset.Updatable,
		&asset.ReferenceHash,
		&asset.Hidden,
		&asset.CreatedHeight,
		&asset.CreatedAt,
	); err != nil {
		return model.Asset{}, err
	}
	asset.Kind = chain.AssetKind(kind)
	return asset, nil
}

// AssetByID returns one asset in its latest version, or nil when unknown.
func (r *Repository) AssetByID(ctx context.Context, assetID string) (*model.Asset, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("asset_by_id", err, start)
	}()

	const query = `
SELECT` + latestAssetColumns + `
FROM assets
WHERE network = ? AND asset_id = ?
GROUP BY asset_id`

	rows, err := r.conn.Query(ctx, query, r.network, assetID)
	if err != nil {
		return nil, fmt.Errorf("query asset by id: %w", err)
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
