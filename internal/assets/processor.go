package assets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
	"github.com/assetsightworks/assetsight-backend/internal/syncer"
	"github.com/assetsightworks/assetsight-backend/pkg/workerpool"
)

// Config tunes the asset processor step.
type Config struct {
	// StepBlocks caps how many stored heights one step replays.
	StepBlocks uint64
	// WorkerCount is the payload classification fan-out.
	WorkerCount int
}

// DefaultConfig returns processor settings suited for trailing the ingester.
func DefaultConfig() Config {
	return Config{
		StepBlocks:  256,
		WorkerCount: 4,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.StepBlocks == 0 {
		c.StepBlocks = def.StepBlocks
	}
	if c.WorkerCount <= 0 {
		c.WorkerCount = def.WorkerCount
	}
	return c
}

// Processor is the assets service processor. Each step replays a range of
// stored transactions the blocks service has already committed, folds their
// asset operations in chain order and rematerializes every touched asset and
// address record from absolute aggregates. It also serves as the rebuild hook
// the blocks service invokes after a rollback.
type Processor struct {
	logger  *zap.Logger
	network model.Network
	store   Store
	metrics Metrics
	cfg     Config
}

// NewProcessor builds the assets service processor.
func NewProcessor(store Store, metrics Metrics, network model.Network, cfg Config, logger *zap.Logger) (*Processor, error) {
	logger = logger.With(zap.String("network", string(network)))
	if store == nil {
		return nil, errors.New("asset processor store is required")
	}
	if metrics == nil {
		return nil, errors.New("asset processor metrics is required")
	}

	return &Processor{
		logger:  logger,
		network: network,
		store:   store,
		metrics: metrics,
		cfg:     cfg.withDefaults(),
	}, nil
}

// Step replays the next range of stored blocks against the asset views.
func (p *Processor) Step(ctx context.Context, state model.SyncState) (syncer.StepResult, error) {
	started := time.Now()
	res, err := p.step(ctx, state)
	p.metrics.ObserveStep(err, started)
	return res, err
}

func (p *Processor) step(ctx context.Context, state model.SyncState) (syncer.StepResult, error) {
	blocksState, err := p.store.SyncState(ctx, model.ServiceBlocks)
	if err != nil {
		return syncer.StepResult{}, fmt.Errorf("blocks sync state: %w", err)
	}
	if blocksState == nil || blocksState.Status == model.SyncNotStarted {
		// Nothing ingested yet.
		return syncer.StepResult{}, nil
	}
	target := blocksState.CurrentBlock

	from := state.CurrentBlock + 1
	if state.Status == model.SyncNotStarted {
		from = 0
	}
	if from > target {
		return syncer.StepResult{Current: state.CurrentBlock, Target: target}, nil
	}
	end := target
	if limit := from + p.cfg.StepBlocks - 1; end > limit {
		end = limit
	}

	txs, err := p.store.TransactionsByHeightRange(ctx, from, end)
	if err != nil {
		return syncer.StepResult{}, fmt.Errorf("load transactions %d-%d: %w", from, end, err)
	}
	inputs, err := p.store.TransactionInputsByHeightRange(ctx, from, end)
	if err != nil {
		return syncer.StepResult{}, fmt.Errorf("load inputs %d-%d: %w", from, end, err)
	}
	outputs, err := p.store.TransactionOutputsByHeightRange(ctx, from, end)
	if err != nil {
		return syncer.StepResult{}, fmt.Errorf("load outputs %d-%d: %w", from, end, err)
	}

	ops, err := p.classifyOps(ctx, txs)
	if err != nil {
		return syncer.StepResult{}, fmt.Errorf("classify operations: %w", err)
	}
	existing, err := p.loadExisting(ctx, ops)
	if err != nil {
		return syncer.StepResult{}, err
	}
	prevouts, err := p.resolvePrevouts(ctx, ops, inputs)
	if err != nil {
		return syncer.StepResult{}, err
	}

	b := p.foldOps(ops, existing, inputs, outputs, prevouts)
	for _, rows := range inputs {
		for _, in := range rows {
			b.addAddress(in.Address)
		}
	}
	for _, rows := range outputs {
		for _, out := range rows {
			b.addAddress(out.Address)
		}
	}

	if err := p.commit(ctx, b, end); err != nil {
		return syncer.StepResult{}, err
	}

	return syncer.StepResult{
		Current: end,
		Target:  target,
		Blocks:  int(end - from + 1),
		Items:   uint64(b.events),
	}, nil
}

// classifyOps decodes asset payloads concurrently, preserving chain order.
// A payload that fails to decode downgrades the operation to a plain
// transfer: the transaction stays on record, the asset semantics are dropped.
func (p *Processor) classifyOps(ctx context.Context, txs []model.Transaction) ([]classifiedOp, error) {
	assetTxs := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Type.IsAssetOp() {
			assetTxs = append(assetTxs, tx)
		}
	}
	if len(assetTxs) == 0 {
		return nil, nil
	}

	return workerpool.Map(ctx, p.cfg.WorkerCount, assetTxs, func(_ context.Context, tx model.Transaction) (classifiedOp, error) {
		payload, err := chain.DecodeAssetPayload([]byte(tx.AssetPayload))
		if err == nil && payload == nil {
			err = errors.New("asset operation without payload")
		}
		if err != nil {
			p.logger.Warn("malformed asset payload",
				zap.String("txid", tx.TxID),
				zap.Uint64("height", tx.BlockHeight),
				zap.Error(err))
			p.metrics.ObserveConflict("malformed_payload")
			return classifiedOp{tx: tx}, nil
		}
		return classifiedOp{tx: tx, payload: payload}, nil
	})
}

func (p *Processor) loadExisting(ctx context.Context, ops []classifiedOp) (map[string]model.Asset, error) {
	seen := make(map[string]struct{}, len(ops))
	ids := make([]string, 0, len(ops))
	for _, op := range ops {
		if op.payload == nil {
			continue
		}
		if _, ok := seen[op.payload.AssetID]; ok {
			continue
		}
		seen[op.payload.AssetID] = struct{}{}
		ids = append(ids, op.payload.AssetID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	assets, err := p.store.AssetsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	return assets, nil
}

// resolvePrevouts loads the previous outputs behind asset operation inputs
// whose ingested rows carry no address.
func (p *Processor) resolvePrevouts(ctx context.Context, ops []classifiedOp, inputs map[string][]model.TransactionInput) (map[string]model.TransactionOutput, error) {
	var outpoints []chain.Outpoint
	for _, op := range ops {
		if op.payload == nil {
			continue
		}
		for _, in := range inputs[op.tx.TxID] {
			if in.IsCoinbase || in.Address != "" {
				continue
			}
			outpoints = append(outpoints, chain.Outpoint{TxID: in.PrevTxID, Vout: in.PrevVout})
		}
	}
	if len(outpoints) == 0 {
		return nil, nil
	}

	prevouts, err := p.store.OutputsByOutpoints(ctx, outpoints)
	if err != nil {
		return nil, fmt.Errorf("resolve previous outputs: %w", err)
	}
	return prevouts, nil
}

// commit flushes transfer rows first so the aggregate recomputes see them,
// then materializes assets before addresses because address roles read the
// latest asset rows.
func (p *Processor) commit(ctx context.Context, b *batch, maxHeight uint64) error {
	if len(b.transfers) > 0 {
		if err := p.store.InsertAssetTransfers(ctx, b.transfers); err != nil {
			return fmt.Errorf("insert asset transfers: %w", err)
		}
	}

	assetRows, err := p.materializeAssets(ctx, b.assets, maxHeight)
	if err != nil {
		return err
	}
	if len(assetRows) > 0 {
		if err := p.store.UpsertAssets(ctx, assetRows); err != nil {
			return fmt.Errorf("upsert assets: %w", err)
		}
	}

	addressRows, err := p.materializeAddresses(ctx, b.addresses, maxHeight)
	if err != nil {
		return err
	}
	if len(addressRows) > 0 {
		if err := p.store.UpsertAddresses(ctx, addressRows); err != nil {
			return fmt.Errorf("upsert addresses: %w", err)
		}
	}

	p.metrics.ObserveTransfers(model.TransferMint, b.mints)
	p.metrics.ObserveTransfers(model.TransferMove, b.moves)
	return nil
}
