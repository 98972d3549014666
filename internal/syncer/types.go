// Package syncer contains the sync engine: one coordinator loop per service
// plus the blocks ingester that follows the node tip and owns reorg recovery.
package syncer

import (
	"context"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Processor advances one sync service by at most one batch per call. The
	// returned result reflects only durably committed work; on error nothing
	// is assumed to have advanced.
	Processor interface {
		Step(ctx context.Context, state model.SyncState) (StepResult, error)
	}

	// StateStore persists per-service sync progress.
	StateStore interface {
		SyncState(ctx context.Context, service model.SyncService) (*model.SyncState, error)
		UpsertSyncState(ctx context.Context, state model.SyncState) error
	}

	// Source serves chain data from the node.
	Source interface {
		ChainTip(ctx context.Context) (uint64, error)
		BlockHash(ctx context.Context, height uint64) (string, error)
		BlockAtHeight(ctx context.Context, height uint64) (*chain.Block, error)
	}

	// ChainStore is the repository surface the blocks ingester writes and the
	// reorg rollback reads back.
	ChainStore interface {
		MaxBlockHeight(ctx context.Context) (uint64, bool, error)
		BlockHashAtHeight(ctx context.Context, height uint64) (string, bool, error)
		InsertBlocks(ctx context.Context, blocks []model.Block) error
		InsertTransactions(ctx context.Context, txs []model.Transaction) error
		InsertTransactionOutputs(ctx context.Context, outputs []model.TransactionOutput) error
		InsertTransactionInputs(ctx context.Context, inputs []model.TransactionInput) error
		AssetIDsTouchedAbove(ctx context.Context, height uint64) ([]string, error)
		AddressesTouchedAbove(ctx context.Context, height uint64) ([]string, error)
		DeleteChainDataAboveHeight(ctx context.Context, height uint64) error
		SyncState(ctx context.Context, service model.SyncService) (*model.SyncState, error)
		UpsertSyncState(ctx context.Context, state model.SyncState) error
	}

	// AssetRebuilder recomputes the touched asset and address records from the
	// rows that survive a rollback.
	AssetRebuilder interface {
		Rebuild(ctx context.Context, assetIDs, addresses []string, height uint64) error
	}

	// FutureReverter rolls future output transitions recorded above the fork
	// ancestor back to their pre-fork state.
	FutureReverter interface {
		Revert(ctx context.Context, height uint64) error
	}

	// Notifier publishes indexed-block events. Implementations are best
	// effort and must never block the ingestion path.
	Notifier interface {
		BlockIndexed(height uint64, hash string)
	}

	CoordinatorMetrics interface {
		ObserveStep(err error, blocks int, started time.Time)
		SetProgress(current, target uint64)
	}

	IngesterMetrics interface {
		ObserveReorg(err error, depth uint64)
	}
)
