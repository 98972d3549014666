package assets

import (
	"context"
	"fmt"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// Reprocess replays one stored transaction's asset semantics on demand. The
// (txid, vout) transfer key makes replaying an already processed transaction
// a no-op, so an operator can retry one that a consistency guard skipped
// after correcting the underlying data.
func (p *Processor) Reprocess(ctx context.Context, txid string) error {
	tx, err := p.store.TransactionByTxID(ctx, txid)
	if err != nil {
		return fmt.Errorf("load transaction: %w", err)
	}
	if tx == nil {
		return fmt.Errorf("transaction %s not found", txid)
	}
	if !tx.Type.IsAssetOp() {
		return fmt.Errorf("transaction %s carries no asset operation", txid)
	}

	payload, err := chain.DecodeAssetPayload([]byte(tx.AssetPayload))
	if err != nil {
		return fmt.Errorf("transaction %s: %w", txid, err)
	}
	if payload == nil {
		return fmt.Errorf("transaction %s has no asset payload", txid)
	}

	ins, err := p.store.TransactionInputsByTxID(ctx, txid)
	if err != nil {
		return fmt.Errorf("load inputs: %w", err)
	}
	outs, err := p.store.TransactionOutputsByTxID(ctx, txid)
	if err != nil {
		return fmt.Errorf("load outputs: %w", err)
	}

	ops := []classifiedOp{{tx: *tx, payload: payload}}
	inputs := map[string][]model.TransactionInput{txid: ins}
	outputs := map[string][]model.TransactionOutput{txid: outs}

	existing, err := p.loadExisting(ctx, ops)
	if err != nil {
		return err
	}
	prevouts, err := p.resolvePrevouts(ctx, ops, inputs)
	if err != nil {
		return err
	}

	b := p.foldOps(ops, existing, inputs, outputs, prevouts)

	// Materialize against the service's current position so aggregates cover
	// everything already replayed, not just this transaction's block.
	maxHeight := tx.BlockHeight
	state, err := p.store.SyncState(ctx, model.ServiceAssets)
	if err != nil {
		return fmt.Errorf("assets sync state: %w", err)
	}
	if state != nil && state.CurrentBlock > maxHeight {
		maxHeight = state.CurrentBlock
	}

	return p.commit(ctx, b, maxHeight)
}
