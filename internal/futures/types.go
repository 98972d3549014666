// Package futures tracks time and height locked outputs through their
// lifecycle. The tracker trails the blocks service: each step replays stored
// blocks to record newly created locked outputs, release the ones whose
// height condition is met and mark spends, while a periodic pass releases
// outputs whose wall-clock condition has passed. Spend detection is
// pre-filtered by an in-memory outstanding-outpoint cache so a step does not
// query the store for every input it sees.
package futures

import (
	"context"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the repository surface the future tracker replays from and
	// materializes into.
	Store interface {
		SyncState(ctx context.Context, service model.SyncService) (*model.SyncState, error)
		BlocksByHeightRange(ctx context.Context, fromHeight, toHeight uint64) ([]model.Block, error)
		TransactionsByHeightRange(ctx context.Context, fromHeight, toHeight uint64) ([]model.Transaction, error)
		TransactionInputsByHeightRange(ctx context.Context, fromHeight, toHeight uint64) (map[string][]model.TransactionInput, error)
		TransactionOutputsByHeightRange(ctx context.Context, fromHeight, toHeight uint64) (map[string][]model.TransactionOutput, error)
		OutstandingFutureOutpoints(ctx context.Context) ([]chain.Outpoint, error)
		FuturesByOutpoints(ctx context.Context, outpoints []chain.Outpoint) (map[string]model.FutureOutput, error)
		LockedFuturesDueByHeight(ctx context.Context, height uint64) ([]model.FutureOutput, error)
		LockedFuturesDueByTime(ctx context.Context, now time.Time) ([]model.FutureOutput, error)
		FutureTransitionsAbove(ctx context.Context, height uint64) ([]model.FutureOutput, error)
		UpsertFutureOutputs(ctx context.Context, futures []model.FutureOutput) error
	}

	// Metrics records tracker outcomes.
	Metrics interface {
		ObserveStep(err error, started time.Time)
		ObserveTimePass(err error, started time.Time)
		ObserveTransitions(transition string, count int)
	}
)
