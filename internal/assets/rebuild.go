package assets

import (
	"context"
	"fmt"
	"sort"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// Rebuild rematerializes the given assets and addresses after every chain row
// above height was deleted. Assets created above the height are gone from the
// store and drop out naturally; survivors get their mutable fields refolded
// from the creation declaration and the update events still on record, then
// the transfer aggregates reapplied as of the rollback height.
func (p *Processor) Rebuild(ctx context.Context, assetIDs, addresses []string, height uint64) error {
	survivors, err := p.store.AssetsByIDs(ctx, assetIDs)
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	if len(survivors) > 0 {
		working, err := p.refoldAssets(ctx, survivors, height)
		if err != nil {
			return err
		}
		rows, err := p.materializeAssets(ctx, working, height)
		if err != nil {
			return err
		}
		if err := p.store.UpsertAssets(ctx, rows); err != nil {
			return fmt.Errorf("upsert assets: %w", err)
		}
	}

	touched := make(map[string]struct{}, len(addresses))
	for _, address := range addresses {
		if address != "" {
			touched[address] = struct{}{}
		}
	}
	rows, err := p.materializeAddresses(ctx, touched, height)
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		if err := p.store.UpsertAddresses(ctx, rows); err != nil {
			return fmt.Errorf("upsert addresses: %w", err)
		}
	}
	return nil
}

// refoldAssets resets each surviving asset's mutable fields from its stored
// creation declaration, then replays the update events at or below the
// rollback height in chain order. Updates folded while an asset was already
// locked stay skipped, matching the original pass.
func (p *Processor) refoldAssets(ctx context.Context, survivors map[string]model.Asset, height uint64) (map[string]*model.Asset, error) {
	ids := make([]string, 0, len(survivors))
	for id := range survivors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	working := make(map[string]*model.Asset, len(survivors))
	for _, id := range ids {
		asset := survivors[id]
		working[id] = &asset
	}

	creates, err := p.store.AssetCreateEvents(ctx, ids, height)
	if err != nil {
		return nil, fmt.Errorf("asset create events: %w", err)
	}
	for _, tx := range creates {
		payload, err := chain.DecodeAssetPayload([]byte(tx.AssetPayload))
		if err != nil || payload == nil {
			continue
		}
		asset, ok := working[payload.AssetID]
		if !ok {
			continue
		}
		owner := payload.Owner
		if owner == "" {
			owner = asset.Creator
		}
		asset.CurrentOwner = owner
		asset.Updatable = payload.Updatable
		asset.TotalSupply = payload.MaxSupply
		asset.ReferenceHash = payload.ReferenceHash
	}

	updates, err := p.store.AssetUpdateEvents(ctx, ids, height)
	if err != nil {
		return nil, fmt.Errorf("asset update events: %w", err)
	}
	for _, tx := range updates {
		payload, err := chain.DecodeAssetPayload([]byte(tx.AssetPayload))
		if err != nil || payload == nil {
			continue
		}
		asset, ok := working[payload.AssetID]
		if !ok || !asset.Updatable {
			continue
		}
		applyAssetUpdate(asset, payload)
	}

	return working, nil
}
