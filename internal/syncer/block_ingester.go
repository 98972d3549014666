package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
	"github.com/assetsightworks/assetsight-backend/pkg/workerpool"
)

// BatchConfig bounds how many rows accumulate before an intermediate flush.
type BatchConfig struct {
	Blocks       int
	Transactions int
	Outputs      int
	Inputs       int
}

// DefaultBatchConfig returns flush thresholds suited for catch-up ingestion.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		Blocks:       100,
		Transactions: 500,
		Outputs:      1000,
		Inputs:       1000,
	}
}

// IngesterConfig tunes the blocks service step.
type IngesterConfig struct {
	// StepBlocks caps how many heights one step fetches.
	StepBlocks uint64
	// WorkerCount is the block fetch fan-out.
	WorkerCount int
	// BlockTimeout bounds a single block fetch.
	BlockTimeout time.Duration
	// MaxReorgDepth bounds how far the rollback walk may go before parking
	// the service in the error state.
	MaxReorgDepth uint64
	Batch         BatchConfig
}

// DefaultIngesterConfig returns ingester settings suited for a tip follower.
func DefaultIngesterConfig() IngesterConfig {
	return IngesterConfig{
		StepBlocks:    128,
		WorkerCount:   8,
		BlockTimeout:  30 * time.Second,
		MaxReorgDepth: 100,
		Batch:         DefaultBatchConfig(),
	}
}

func (c IngesterConfig) withDefaults() IngesterConfig {
	def := DefaultIngesterConfig()
	if c.StepBlocks == 0 {
		c.StepBlocks = def.StepBlocks
	}
	if c.WorkerCount <= 0 {
		c.WorkerCount = def.WorkerCount
	}
	if c.BlockTimeout <= 0 {
		c.BlockTimeout = def.BlockTimeout
	}
	if c.MaxReorgDepth == 0 {
		c.MaxReorgDepth = def.MaxReorgDepth
	}
	if c.Batch.Blocks <= 0 {
		c.Batch.Blocks = def.Batch.Blocks
	}
	if c.Batch.Transactions <= 0 {
		c.Batch.Transactions = def.Batch.Transactions
	}
	if c.Batch.Outputs <= 0 {
		c.Batch.Outputs = def.Batch.Outputs
	}
	if c.Batch.Inputs <= 0 {
		c.Batch.Inputs = def.Batch.Inputs
	}
	return c
}

// BlockIngester is the blocks service processor. It follows the node tip,
// persists raw chain rows in accumulated batches, and owns reorg recovery:
// on a fork it rolls every affected table back to the common ancestor and
// clamps all three services so they replay from there.
type BlockIngester struct {
	logger   *zap.Logger
	network  model.Network
	store    ChainStore
	source   Source
	assets   AssetRebuilder
	futures  FutureReverter
	metrics  IngesterMetrics
	notifier Notifier
	cfg      IngesterConfig
}

// NewBlockIngester builds the blocks service processor. The notifier may be
// nil when indexed-block events are not wired.
func NewBlockIngester(
	store ChainStore,
	source Source,
	assets AssetRebuilder,
	futures FutureReverter,
	metrics IngesterMetrics,
	notifier Notifier,
	network model.Network,
	cfg IngesterConfig,
	logger *zap.Logger,
) (*BlockIngester, error) {
	logger = logger.With(zap.String("network", string(network)))
	if store == nil {
		return nil, errors.New("block ingester store is required")
	}
	if source == nil {
		return nil, errors.New("block ingester source is required")
	}
	if assets == nil {
		return nil, errors.New("block ingester asset rebuilder is required")
	}
	if futures == nil {
		return nil, errors.New("block ingester future reverter is required")
	}
	if metrics == nil {
		return nil, errors.New("block ingester metrics is required")
	}

	return &BlockIngester{
		logger:   logger,
		network:  network,
		store:    store,
		source:   source,
		assets:   assets,
		futures:  futures,
		metrics:  metrics,
		notifier: notifier,
		cfg:      cfg.withDefaults(),
	}, nil
}

// Step ingests the next run of blocks, or rolls back to the fork ancestor
// when the node disagrees with the stored chain.
func (s *BlockIngester) Step(ctx context.Context, state model.SyncState) (StepResult, error) {
	tip, err := s.source.ChainTip(ctx)
	if err != nil {
		return StepResult{}, fmt.Errorf("chain tip: %w", err)
	}

	start, err := s.startHeight(ctx, state)
	if err != nil {
		return StepResult{}, err
	}
	if start > tip {
		if state.CurrentBlock > tip {
			// The node lost height; treat it as a fork at the new tip.
			ancestor, err := s.resolveReorg(ctx, tip)
			if err != nil {
				return StepResult{}, err
			}
			return StepResult{Current: ancestor, Target: tip}, nil
		}
		return StepResult{Current: state.CurrentBlock, Target: tip}, nil
	}

	end := tip
	if limit := start + s.cfg.StepBlocks - 1; end > limit {
		end = limit
	}
	heights := make([]uint64, 0, end-start+1)
	for h := start; h <= end; h++ {
		heights = append(heights, h)
	}

	run, err := workerpool.Map(ctx, s.cfg.WorkerCount, heights, s.fetchBlock)
	if err != nil {
		return StepResult{}, fmt.Errorf("fetch blocks %d-%d: %w", start, end, err)
	}
	if err := verifyRunLinkage(run); err != nil {
		return StepResult{}, err
	}

	if start > 0 {
		parentHash, found, err := s.store.BlockHashAtHeight(ctx, start-1)
		if err != nil {
			return StepResult{}, fmt.Errorf("stored hash at %d: %w", start-1, err)
		}
		if found && parentHash != run[0].PrevHash {
			ancestor, err := s.resolveReorg(ctx, start-1)
			if err != nil {
				return StepResult{}, err
			}
			return StepResult{Current: ancestor, Target: tip}, nil
		}
	}

	items, err := s.persistRun(ctx, run)
	if err != nil {
		return StepResult{}, err
	}
	s.notifyIndexed(run)

	return StepResult{
		Current: end,
		Target:  tip,
		Blocks:  len(run),
		Items:   items,
	}, nil
}

// startHeight picks where the next run begins. A missing sync_state row on a
// populated store resumes from the highest stored block rather than genesis.
func (s *BlockIngester) startHeight(ctx context.Context, state model.SyncState) (uint64, error) {
	if state.Status != model.SyncNotStarted {
		return state.CurrentBlock + 1, nil
	}
	maxHeight, found, err := s.store.MaxBlockHeight(ctx)
	if err != nil {
		return 0, fmt.Errorf("max stored height: %w", err)
	}
	if !found {
		return 0, nil
	}
	return maxHeight + 1, nil
}

func (s *BlockIngester) fetchBlock(ctx context.Context, height uint64) (*chain.Block, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.BlockTimeout)
	defer cancel()
	return s.source.BlockAtHeight(ctx, height)
}

// verifyRunLinkage rejects a fetched run whose blocks do not chain onto each
// other, which happens when the node reorganizes mid fetch.
func verifyRunLinkage(run []*chain.Block) error {
	for i := 1; i < len(run); i++ {
		if run[i].PrevHash != run[i-1].Hash {
			return fmt.Errorf("fetched run broken at height %d: parent %s, stored predecessor %s",
				run[i].Height, run[i].PrevHash, run[i-1].Hash)
		}
	}
	return nil
}

func (s *BlockIngester) persistRun(ctx context.Context, run []*chain.Block) (uint64, error) {
	blocks := make([]model.Block, 0, s.cfg.Batch.Blocks)
	txs := make([]model.Transaction, 0, s.cfg.Batch.Transactions)
	outputs := make([]model.TransactionOutput, 0, s.cfg.Batch.Outputs)
	inputs := make([]model.TransactionInput, 0, s.cfg.Batch.Inputs)
	var items uint64

	flush := func() error {
		if err := s.flushBatches(ctx, blocks, txs, outputs, inputs); err != nil {
			return err
		}
		blocks = blocks[:0]
		txs = txs[:0]
		outputs = outputs[:0]
		inputs = inputs[:0]
		return nil
	}

	for _, block := range run {
		row, blockTxs, blockOutputs, blockInputs, err := s.convertBlock(block)
		if err != nil {
			return 0, err
		}
		blocks = append(blocks, row)
		txs = append(txs, blockTxs...)
		outputs = append(outputs, blockOutputs...)
		inputs = append(inputs, blockInputs...)
		items += uint64(len(blockTxs))

		if len(blocks) >= s.cfg.Batch.Blocks ||
			len(txs) >= s.cfg.Batch.Transactions ||
			len(outputs) >= s.cfg.Batch.Outputs ||
			len(inputs) >= s.cfg.Batch.Inputs {
			if err := flush(); err != nil {
				return 0, err
			}
		}
	}

	return items, flush()
}

func (s *BlockIngester) flushBatches(
	ctx context.Context,
	blocks []model.Block,
	txs []model.Transaction,
	outputs []model.TransactionOutput,
	inputs []model.TransactionInput,
) error {
	if len(blocks) > 0 {
		if err := s.store.InsertBlocks(ctx, blocks); err != nil {
			return fmt.Errorf("batch insert blocks: %w", err)
		}
	}
	if len(txs) > 0 {
		if err := s.store.InsertTransactions(ctx, txs); err != nil {
			return fmt.Errorf("batch insert transactions: %w", err)
		}
	}
	if len(outputs) > 0 {
		if err := s.store.InsertTransactionOutputs(ctx, outputs); err != nil {
			return fmt.Errorf("batch insert outputs: %w", err)
		}
	}
	if len(inputs) > 0 {
		if err := s.store.InsertTransactionInputs(ctx, inputs); err != nil {
			return fmt.Errorf("batch insert inputs: %w", err)
		}
	}
	return nil
}

func (s *BlockIngester) convertBlock(block *chain.Block) (model.Block, []model.Transaction, []model.TransactionOutput, []model.TransactionInput, error) {
	row := model.Block{
		Network:    s.network,
		Height:     block.Height,
		Hash:       block.Hash,
		PrevHash:   block.PrevHash,
		Timestamp:  block.Timestamp,
		Difficulty: block.Difficulty,
		Size:       block.Size,
		Miner:      block.Miner,
		TXCount:    uint32(len(block.Txs)),
		TxIDs:      make([]string, 0, len(block.Txs)),
	}

	txs := make([]model.Transaction, 0, len(block.Txs))
	var outputs []model.TransactionOutput
	var inputs []model.TransactionInput

	for i, tx := range block.Txs {
		row.TxIDs = append(row.TxIDs, tx.TxID)

		assetPayload, err := marshalPayload(tx.Asset)
		if err != nil {
			return model.Block{}, nil, nil, nil, fmt.Errorf("tx %s asset payload: %w", tx.TxID, err)
		}
		futurePayload, err := marshalPayload(tx.Future)
		if err != nil {
			return model.Block{}, nil, nil, nil, fmt.Errorf("tx %s future payload: %w", tx.TxID, err)
		}

		// Unrecognized declared types carry no known semantics and are
		// stored as standard transfers.
		txType := tx.Type
		if txType == chain.TxTypeUnknown {
			txType = chain.TxTypeStandard
		}

		txs = append(txs, model.Transaction{
			Network:       s.network,
			TxID:          tx.TxID,
			BlockHeight:   block.Height,
			BlockHash:     block.Hash,
			TxIndex:       uint32(i),
			Timestamp:     block.Timestamp,
			Type:          txType,
			InputCount:    uint32(len(tx.Inputs)),
			OutputCount:   uint32(len(tx.Outputs)),
			AssetPayload:  assetPayload,
			FuturePayload: futurePayload,
		})

		for _, out := range tx.Outputs {
			outputs = append(outputs, model.TransactionOutput{
				Network:     s.network,
				TxID:        tx.TxID,
				Index:       out.Index,
				Address:     out.Address,
				Value:       out.Value,
				BlockHeight: block.Height,
				Timestamp:   block.Timestamp,
			})
		}
		for j, in := range tx.Inputs {
			inputs = append(inputs, model.TransactionInput{
				Network:     s.network,
				TxID:        tx.TxID,
				Index:       uint32(j),
				PrevTxID:    in.PrevTxID,
				PrevVout:    in.PrevVout,
				Address:     in.Address,
				Value:       in.Value,
				IsCoinbase:  in.Coinbase,
				BlockHeight: block.Height,
				Timestamp:   block.Timestamp,
			})
		}
	}

	return row, txs, outputs, inputs, nil
}

func marshalPayload[T any](p *T) (string, error) {
	if p == nil {
		return "", nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (s *BlockIngester) notifyIndexed(run []*chain.Block) {
	if s.notifier == nil {
		return
	}
	for _, block := range run {
		s.notifier.BlockIndexed(block.Height, block.Hash)
	}
}
