// Package transport exposes the read API over the materialized chain views,
// plus the operator hooks for replaying transactions and pausing services.
package transport

import (
	"context"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the repository surface the API reads from. Sync state writes
	// exist only for the operator pause and resume hooks.
	Store interface {
		Ping(ctx context.Context) error
		SyncStates(ctx context.Context) (map[model.SyncService]model.SyncState, error)
		SyncState(ctx context.Context, service model.SyncService) (*model.SyncState, error)
		UpsertSyncState(ctx context.Context, state model.SyncState) error
		MaxBlockHeight(ctx context.Context) (uint64, bool, error)
		LatestBlocks(ctx context.Context, limit, beforeHeight uint64) ([]model.Block, error)
		BlockByHeight(ctx context.Context, height uint64) (*model.Block, error)
		TransactionByTxID(ctx context.Context, txid string) (*model.Transaction, error)
		TransactionInputsByTxID(ctx context.Context, txid string) ([]model.TransactionInput, error)
		TransactionOutputsByTxID(ctx context.Context, txid string) ([]model.TransactionOutput, error)
		ListAssets(ctx context.Context, limit, offset uint64, includeHidden bool) ([]model.Asset, error)
		AssetByID(ctx context.Context, assetID string) (*model.Asset, error)
		AssetByName(ctx context.Context, name string) (*model.Asset, error)
		AssetTransfersByAsset(ctx context.Context, assetID string, limit, offset uint64) ([]model.AssetTransfer, error)
		AddressByID(ctx context.Context, address string) (*model.Address, error)
		AssetsByAddress(ctx context.Context, address string) ([]model.Asset, error)
		ListFutureOutputs(ctx context.Context, filter model.FutureFilter) ([]model.FutureOutput, error)
	}

	// Reprocessor replays one stored transaction's asset semantics on demand.
	Reprocessor interface {
		Reprocess(ctx context.Context, txid string) error
	}
)
