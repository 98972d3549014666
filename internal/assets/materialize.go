package assets

import (
	"context"
	"fmt"
	"sort"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// materializeAssets recomputes the transfer-derived fields of every working
// asset from deduplicated transfer rows up to maxHeight and returns the rows
// to upsert, ordered by asset id.
func (p *Processor) materializeAssets(ctx context.Context, working map[string]*model.Asset, maxHeight uint64) ([]model.Asset, error) {
	if len(working) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(working))
	for id := range working {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	aggregates, err := p.store.AssetTransferAggregates(ctx, ids, maxHeight)
	if err != nil {
		return nil, fmt.Errorf("asset transfer aggregates: %w", err)
	}

	rows := make([]model.Asset, 0, len(ids))
	for _, id := range ids {
		asset := *working[id]
		applyTransferAggregates(&asset, aggregates[id])
		rows = append(rows, asset)
	}
	return rows, nil
}

// applyTransferAggregates overwrites the replay-derived fields. Ownership of
// a non fungible asset follows its latest transfer recipient.
func applyTransferAggregates(asset *model.Asset, agg model.AssetTransferAggregate) {
	asset.CirculatingSupply = agg.Minted
	asset.TransferCount = agg.TransferCount
	if asset.Kind == chain.AssetKindNonFungible && agg.LastRecipient != "" {
		asset.CurrentOwner = agg.LastRecipient
	}
}

// materializeAddresses rebuilds the touched address records from absolute
// aggregates. An address with no surviving activity produces no row.
func (p *Processor) materializeAddresses(ctx context.Context, touched map[string]struct{}, maxHeight uint64) ([]model.Address, error) {
	if len(touched) == 0 {
		return nil, nil
	}
	addresses := make([]string, 0, len(touched))
	for address := range touched {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	chainAggs, err := p.store.AddressChainAggregates(ctx, addresses, maxHeight)
	if err != nil {
		return nil, fmt.Errorf("address chain aggregates: %w", err)
	}
	balances, err := p.store.AddressAssetBalances(ctx, addresses, maxHeight)
	if err != nil {
		return nil, fmt.Errorf("address asset balances: %w", err)
	}
	roles, err := p.store.AddressAssetRoles(ctx, addresses)
	if err != nil {
		return nil, fmt.Errorf("address asset roles: %w", err)
	}

	rows := make([]model.Address, 0, len(addresses))
	for _, address := range addresses {
		agg, active := chainAggs[address]
		held := balances[address]
		role := roles[address]
		if !active && len(held) == 0 && role == (model.AddressAssetRoles{}) {
			continue
		}
		var balance uint64
		if agg.Received > agg.Sent {
			balance = agg.Received - agg.Sent
		}
		rows = append(rows, model.Address{
			Network:        p.network,
			Address:        address,
			Balance:        balance,
			TotalReceived:  agg.Received,
			TotalSent:      agg.Sent,
			TxCount:        agg.TxCount,
			AssetBalances:  held,
			AssetsCreated:  uint32(role.Created),
			AssetsOwned:    uint32(role.Owned),
			IsCreator:      role.Created > 0,
			IsContract:     role.Owned > 0,
			FirstSeenBlock: agg.FirstSeenBlock,
			FirstSeenAt:    agg.FirstSeenAt,
			LastSeenAt:     agg.LastSeenAt,
		})
	}
	return rows, nil
}
