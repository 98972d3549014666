package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// UpsertAssets writes asset rows. The table is a ReplacingMergeTree keyed by
// (network, asset_id), so writing the full current state of an asset
// supersedes any earlier version of the same row.
func (r *Repository) UpsertAssets(ctx context.Context, assets []model.Asset) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_assets", err, start)
	}()

	if len(assets) == 0 {
		return nil
	}

	const query = `
INSERT INTO assets (
	network,
	asset_id,
	name,
	kind,
	creator,
	current_owner,
	total_supply,
	circulating_supply,
	transfer_count,
	is_sub_asset,
	parent_asset_name,
	updatable,
	reference_hash,
	hidden,
	created_height,
	created_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare assets batch: %w", err)
	}

	for _, asset := range assets {
		if err = batch.Append(
			string(asset.Network),
			asset.AssetID,
			asset.Name,
			string(asset.Kind),
			asset.Creator,
			asset.CurrentOwner,
			asset.TotalSupply,
			asset.CirculatingSupply,
			asset.TransferCount,
			asset.IsSubAsset,
			asset.ParentAssetName,
			asset.Updatable,
			asset.ReferenceHash,
			asset.Hidden,
			asset.CreatedHeight,
			asset.CreatedAt,
		); err != nil {
			return fmt.Errorf("append asset: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("upsert assets: %w", err)
	}
	return nil
}
