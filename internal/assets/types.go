// Package assets materializes the asset, transfer and address views from
// stored chain rows. The processor trails the blocks service: each step
// replays a range of already persisted transactions, folds the asset
// operations they declare in chain order, and recomputes every touched
// asset and address record from deduplicated rows so replaying a range is
// idempotent.
package assets

import (
	"context"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the repository surface the asset processor replays from and
	// materializes into.
	Store interface {
		SyncState(ctx context.Context, service model.SyncService) (*model.SyncState, error)
		TransactionsByHeightRange(ctx context.Context, fromHeight, toHeight uint64) ([]model.Transaction, error)
		TransactionInputsByHeightRange(ctx context.Context, fromHeight, toHeight uint64) (map[string][]model.TransactionInput, error)
		TransactionOutputsByHeightRange(ctx context.Context, fromHeight, toHeight uint64) (map[string][]model.TransactionOutput, error)
		TransactionByTxID(ctx context.Context, txid string) (*model.Transaction, error)
		TransactionInputsByTxID(ctx context.Context, txid string) ([]model.TransactionInput, error)
		TransactionOutputsByTxID(ctx context.Context, txid string) ([]model.TransactionOutput, error)
		OutputsByOutpoints(ctx context.Context, outpoints []chain.Outpoint) (map[string]model.TransactionOutput, error)
		AssetsByIDs(ctx context.Context, assetIDs []string) (map[string]model.Asset, error)
		AssetCreateEvents(ctx context.Context, assetIDs []string, maxHeight uint64) ([]model.Transaction, error)
		AssetUpdateEvents(ctx context.Context, assetIDs []string, maxHeight uint64) ([]model.Transaction, error)
		AssetTransferAggregates(ctx context.Context, assetIDs []string, maxHeight uint64) (map[string]model.AssetTransferAggregate, error)
		AddressChainAggregates(ctx context.Context, addresses []string, maxHeight uint64) (map[string]model.AddressChainAggregate, error)
		AddressAssetBalances(ctx context.Context, addresses []string, maxHeight uint64) (map[string]map[string]uint64, error)
		AddressAssetRoles(ctx context.Context, addresses []string) (map[string]model.AddressAssetRoles, error)
		InsertAssetTransfers(ctx context.Context, transfers []model.AssetTransfer) error
		UpsertAssets(ctx context.Context, assets []model.Asset) error
		UpsertAddresses(ctx context.Context, addresses []model.Address) error
	}

	// Metrics records processor outcomes.
	Metrics interface {
		ObserveStep(err error, started time.Time)
		ObserveTransfers(kind model.TransferKind, count int)
		ObserveConflict(reason string)
	}
)
