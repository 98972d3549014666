package futures

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/puzpuzpuz/xsync/v4"
	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
	"github.com/assetsightworks/assetsight-backend/internal/syncer"
)

// Config tunes the future tracker step.
type Config struct {
	// StepBlocks caps how many stored heights one step replays.
	StepBlocks uint64
}

// DefaultConfig returns tracker settings suited for trailing the ingester.
func DefaultConfig() Config {
	return Config{StepBlocks: 256}
}

func (c Config) withDefaults() Config {
	if c.StepBlocks == 0 {
		c.StepBlocks = DefaultConfig().StepBlocks
	}
	return c
}

// Tracker is the futures service processor. Each step replays a range of
// stored blocks in chain order: future transactions create locked outputs,
// reaching an unlock height releases them and any input consuming a tracked
// outpoint marks it spent, whatever state it was in. It also serves as the
// revert hook the blocks service calls after a rollback.
type Tracker struct {
	logger  *zap.Logger
	network model.Network
	store   Store
	metrics Metrics
	clk     clock.Clock
	cfg     Config

	// outstanding caches the outpoints of every not yet spent future output
	// so spend detection only hits the store for inputs that can match.
	outstanding *xsync.Map[string, struct{}]
	warmed      atomic.Bool
}

// NewTracker builds the futures service processor. A nil clk falls back to
// the wall clock.
func NewTracker(store Store, metrics Metrics, clk clock.Clock, network model.Network, cfg Config, logger *zap.Logger) (*Tracker, error) {
	logger = logger.With(zap.String("network", string(network)))
	if store == nil {
		return nil, errors.New("future tracker store is required")
	}
	if metrics == nil {
		return nil, errors.New("future tracker metrics is required")
	}
	if clk == nil {
		clk = clock.NewDefaultClock()
	}

	return &Tracker{
		logger:      logger,
		network:     network,
		store:       store,
		metrics:     metrics,
		clk:         clk,
		cfg:         cfg.withDefaults(),
		outstanding: xsync.NewMap[string, struct{}](),
	}, nil
}

// Step replays the next range of stored blocks against the future outputs.
func (t *Tracker) Step(ctx context.Context, state model.SyncState) (syncer.StepResult, error) {
	started := time.Now()
	res, err := t.step(ctx, state)
	t.metrics.ObserveStep(err, started)
	return res, err
}

func (t *Tracker) step(ctx context.Context, state model.SyncState) (syncer.StepResult, error) {
	blocksState, err := t.store.SyncState(ctx, model.ServiceBlocks)
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
	if limit := from + t.cfg.StepBlocks - 1; end > limit {
		end = limit
	}

	if err := t.ensureWarm(ctx); err != nil {
		return syncer.StepResult{}, err
	}

	blocks, err := t.store.BlocksByHeightRange(ctx, from, end)
	if err != nil {
		return syncer.StepResult{}, fmt.Errorf("load blocks %d-%d: %w", from, end, err)
	}
	txs, err := t.store.TransactionsByHeightRange(ctx, from, end)
	if err != nil {
		return syncer.StepResult{}, fmt.Errorf("load transactions %d-%d: %w", from, end, err)
	}
	inputs, err := t.store.TransactionInputsByHeightRange(ctx, from, end)
	if err != nil {
		return syncer.StepResult{}, fmt.Errorf("load inputs %d-%d: %w", from, end, err)
	}
	outputs, err := t.store.TransactionOutputsByHeightRange(ctx, from, end)
	if err != nil {
		return syncer.StepResult{}, fmt.Errorf("load outputs %d-%d: %w", from, end, err)
	}

	payloads := t.decodePayloads(txs)
	local, err := t.prefetch(ctx, end, payloads, inputs)
	if err != nil {
		return syncer.StepResult{}, err
	}

	counts := t.fold(blocks, txs, inputs, outputs, payloads, local)

	if err := t.commit(ctx, local, counts); err != nil {
		return syncer.StepResult{}, err
	}

	return syncer.StepResult{
		Current: end,
		Target:  target,
		Blocks:  int(end - from + 1),
		Items:   uint64(counts.created + counts.unlocked + counts.spent),
	}, nil
}

// decodePayloads parses the future declarations in the range once. Malformed
// declarations are dropped: the transaction stays on record but no locked
// output is tracked for it.
func (t *Tracker) decodePayloads(txs []model.Transaction) map[string]*chain.FuturePayload {
	payloads := make(map[string]*chain.FuturePayload)
	for _, tx := range txs {
		if tx.Type != chain.TxTypeFuture {
			continue
		}
		payload, err := chain.DecodeFuturePayload([]byte(tx.FuturePayload))
		if err == nil && payload == nil {
			err = errors.New("future transaction without payload")
		}
		if err != nil {
			t.logger.Warn("malformed future payload",
				zap.String("txid", tx.TxID),
				zap.Uint64("height", tx.BlockHeight),
				zap.Error(err))
			continue
		}
		payloads[tx.TxID] = payload
	}
	return payloads
}

// prefetch loads every stored row the fold may touch in two round trips: the
// locked rows whose height condition falls due in this range, and the rows
// behind candidate outpoints, which are the range's own creations plus any
// consumed outpoint the outstanding cache knows.
func (t *Tracker) prefetch(
	ctx context.Context,
	end uint64,
	payloads map[string]*chain.FuturePayload,
	inputs map[string][]model.TransactionInput,
) (map[string]*model.FutureOutput, error) {
	local := make(map[string]*model.FutureOutput)

	due, err := t.store.LockedFuturesDueByHeight(ctx, end)
	if err != nil {
		return nil, fmt.Errorf("locked futures due by height: %w", err)
	}
	for _, row := range due {
		row := row
		local[chain.Outpoint{TxID: row.TxID, Vout: row.Vout}.String()] = &row
	}

	seen := make(map[string]struct{})
	var candidates []chain.Outpoint
	add := func(op chain.Outpoint) {
		key := op.String()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		candidates = append(candidates, op)
	}
	for txid, payload := range payloads {
		add(chain.Outpoint{TxID: txid, Vout: payload.OutputIndex})
	}
	for _, rows := range inputs {
		for _, in := range rows {
			if in.IsCoinbase {
				continue
			}
			op := chain.Outpoint{TxID: in.PrevTxID, Vout: in.PrevVout}
			if _, ok := t.outstanding.Load(op.String()); ok {
				add(op)
			}
		}
	}
	if len(candidates) == 0 {
		return local, nil
	}

	rows, err := t.store.FuturesByOutpoints(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("load futures by outpoints: %w", err)
	}
	for key, row := range rows {
		if _, ok := local[key]; ok {
			continue
		}
		row := row
		local[key] = &row
	}
	return local, nil
}

// stepCounts tallies the lifecycle transitions one step applied.
type stepCounts struct {
	created  int
	unlocked int
	spent    int

	dirty       map[string]struct{}
	createdKeys []string
	spentKeys   []string
}

// fold walks the range block by block. Within one block, creations come
// first, then height releases, then spends, so an output that matures in its
// own creation block unlocks there and an early spend of a still locked
// output passes straight through to spent.
func (t *Tracker) fold(
	blocks []model.Block,
	txs []model.Transaction,
	inputs map[string][]model.TransactionInput,
	outputs map[string][]model.TransactionOutput,
	payloads map[string]*chain.FuturePayload,
	local map[string]*model.FutureOutput,
) *stepCounts {
	counts := &stepCounts{dirty: make(map[string]struct{})}

	txsByHeight := make(map[uint64][]model.Transaction)
	for _, tx := range txs {
		txsByHeight[tx.BlockHeight] = append(txsByHeight[tx.BlockHeight], tx)
	}

	for _, block := range blocks {
		for _, tx := range txsByHeight[block.Height] {
			payload, ok := payloads[tx.TxID]
			if !ok {
				continue
			}
			t.create(counts, local, tx, payload, outputs[tx.TxID])
		}

		for key, row := range local {
			if row.Status != model.FutureLocked || row.UnlockHeight < 0 || uint64(row.UnlockHeight) > block.Height {
				continue
			}
			row.Status = model.FutureUnlocked
			row.UnlockedBy = model.UnlockedByConfirmations
			row.UnlockedHeight = uint64(row.UnlockHeight)
			row.UnlockedAt = block.Timestamp
			counts.unlocked++
			counts.dirty[key] = struct{}{}
		}

		for _, tx := range txsByHeight[block.Height] {
			for _, in := range inputs[tx.TxID] {
				key := chain.Outpoint{TxID: in.PrevTxID, Vout: in.PrevVout}.String()
				row, ok := local[key]
				if !ok || !row.Spendable() {
					continue
				}
				row.Status = model.FutureSpent
				row.SpentTxID = tx.TxID
				row.SpentHeight = block.Height
				row.SpentAt = block.Timestamp
				counts.spent++
				counts.dirty[key] = struct{}{}
				counts.spentKeys = append(counts.spentKeys, key)
			}
		}
	}

	return counts
}

// create records a new locked output. Replays of a creation already on record
// leave the recorded lifecycle alone. When both conditions are disabled the
// output is born unlocked.
func (t *Tracker) create(
	counts *stepCounts,
	local map[string]*model.FutureOutput,
	tx model.Transaction,
	payload *chain.FuturePayload,
	outputs []model.TransactionOutput,
) {
	key := chain.Outpoint{TxID: tx.TxID, Vout: payload.OutputIndex}.String()
	if _, ok := local[key]; ok {
		return
	}

	var recipient string
	for _, out := range outputs {
		if out.Index == payload.OutputIndex {
			recipient = out.Address
			break
		}
	}

	row := &model.FutureOutput{
		Network:       t.network,
		TxID:          tx.TxID,
		Vout:          payload.OutputIndex,
		Amount:        payload.Amount,
		AssetID:       payload.AssetID,
		Recipient:     recipient,
		Maturity:      payload.Maturity,
		LockTime:      payload.LockTime,
		CreatedHeight: tx.BlockHeight,
		CreatedAt:     tx.Timestamp,
		UnlockHeight:  -1,
		Status:        model.FutureLocked,
	}
	if payload.Maturity >= 0 {
		row.UnlockHeight = int64(tx.BlockHeight) + int64(payload.Maturity)
	}
	if payload.LockTime >= 0 {
		row.UnlockTime = tx.Timestamp.Add(time.Duration(payload.LockTime) * time.Second)
	}
	if payload.Maturity < 0 && payload.LockTime < 0 {
		row.Status = model.FutureUnlocked
		row.UnlockedBy = model.UnlockedByConfirmations
		row.UnlockedHeight = tx.BlockHeight
		row.UnlockedAt = tx.Timestamp
		counts.unlocked++
	}

	local[key] = row
	counts.created++
	counts.dirty[key] = struct{}{}
	counts.createdKeys = append(counts.createdKeys, key)
}

// commit flushes the touched rows and folds the step's creations and spends
// into the outstanding cache.
func (t *Tracker) commit(ctx context.Context, local map[string]*model.FutureOutput, counts *stepCounts) error {
	if len(counts.dirty) > 0 {
		keys := make([]string, 0, len(counts.dirty))
		for key := range counts.dirty {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		changed := make([]model.FutureOutput, 0, len(keys))
		for _, key := range keys {
			changed = append(changed, *local[key])
		}
		if err := t.store.UpsertFutureOutputs(ctx, changed); err != nil {
			return fmt.Errorf("upsert future outputs: %w", err)
		}
	}

	for _, key := range counts.createdKeys {
		t.outstanding.Store(key, struct{}{})
	}
	for _, key := range counts.spentKeys {
		t.outstanding.Delete(key)
	}

	t.metrics.ObserveTransitions("created", counts.created)
	t.metrics.ObserveTransitions("unlocked_confirmations", counts.unlocked)
	t.metrics.ObserveTransitions("spent", counts.spent)
	return nil
}

// ensureWarm loads the outstanding outpoints on the first step after start.
func (t *Tracker) ensureWarm(ctx context.Context) error {
	if t.warmed.Load() {
		return nil
	}
	return t.warmOutstanding(ctx)
}

func (t *Tracker) warmOutstanding(ctx context.Context) error {
	outpoints, err := t.store.OutstandingFutureOutpoints(ctx)
	if err != nil {
		return fmt.Errorf("load outstanding outpoints: %w", err)
	}
	t.outstanding.Clear()
	for _, op := range outpoints {
		t.outstanding.Store(op.String(), struct{}{})
	}
	t.warmed.Store(true)
	return nil
}
