package assets

import (
	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// classifiedOp pairs an asset-typed transaction with its decoded payload. A
// nil payload marks a malformed declaration, which is counted once at
// classification and then ignored by the fold.
type classifiedOp struct {
	tx      model.Transaction
	payload *chain.AssetPayload
}

// batch accumulates everything one replay range changes. Working asset copies
// hold the folded state ops later in the range observe; address membership
// marks which records get rematerialized after the flush.
type batch struct {
	transfers []model.AssetTransfer
	assets    map[string]*model.Asset
	addresses map[string]struct{}
	mints     int
	moves     int
	events    int
}

func newBatch() *batch {
	return &batch{
		assets:    make(map[string]*model.Asset),
		addresses: make(map[string]struct{}),
	}
}

func (b *batch) addAddress(address string) {
	if address == "" {
		return
	}
	b.addresses[address] = struct{}{}
}

// working returns the mutable copy of an asset, seeding it from the stored
// row on first touch. Nil means the asset does not exist yet.
func (b *batch) working(existing map[string]model.Asset, assetID string) *model.Asset {
	if asset, ok := b.assets[assetID]; ok {
		return asset
	}
	if stored, ok := existing[assetID]; ok {
		asset := stored
		b.assets[assetID] = &asset
		return &asset
	}
	return nil
}

// foldOps applies classified operations in chain order against the working
// state. Operations that violate a consistency guard are logged, counted and
// skipped; the surrounding block still commits.
func (p *Processor) foldOps(
	ops []classifiedOp,
	existing map[string]model.Asset,
	inputs map[string][]model.TransactionInput,
	outputs map[string][]model.TransactionOutput,
	prevouts map[string]model.TransactionOutput,
) *batch {
	b := newBatch()
	for _, op := range ops {
		if op.payload == nil {
			continue
		}
		switch op.tx.Type {
		case chain.TxTypeAssetCreate:
			p.foldCreate(b, op, existing, inputs, prevouts)
		case chain.TxTypeAssetMint:
			p.foldMint(b, op, existing, outputs)
		case chain.TxTypeAssetTransfer:
			p.foldTransfer(b, op, existing, inputs, outputs, prevouts)
		case chain.TxTypeAssetUpdate:
			p.foldUpdate(b, op, existing)
		}
	}
	return b
}

func (p *Processor) foldCreate(
	b *batch,
	op classifiedOp,
	existing map[string]model.Asset,
	inputs map[string][]model.TransactionInput,
	prevouts map[string]model.TransactionOutput,
) {
	payload := op.payload
	name := chain.NormalizeAssetName(payload.Name)
	kind := chain.ParseAssetKind(string(payload.Kind))

	if current := b.working(existing, payload.AssetID); current != nil {
		if current.Name == name.Name && current.Kind == kind && current.CreatedHeight == op.tx.BlockHeight {
			// Replay of the declaration already on record.
			return
		}
		p.conflict(op.tx, "duplicate_asset", &DuplicateAssetError{AssetID: payload.AssetID})
		return
	}

	creator := firstInputAddress(inputs[op.tx.TxID], prevouts)
	owner := payload.Owner
	if owner == "" {
		owner = creator
	}

	b.assets[payload.AssetID] = &model.Asset{
		Network:         p.network,
		AssetID:         payload.AssetID,
		Name:            name.Name,
		Kind:            kind,
		Creator:         creator,
		CurrentOwner:    owner,
		TotalSupply:     payload.MaxSupply,
		IsSubAsset:      name.IsSubAsset,
		ParentAssetName: name.Parent,
		Updatable:       payload.Updatable,
		ReferenceHash:   payload.ReferenceHash,
		CreatedHeight:   op.tx.BlockHeight,
		CreatedAt:       op.tx.Timestamp,
	}
	b.events++
	b.addAddress(creator)
	b.addAddress(owner)
}

func (p *Processor) foldMint(
	b *batch,
	op classifiedOp,
	existing map[string]model.Asset,
	outputs map[string][]model.TransactionOutput,
) {
	payload := op.payload
	asset := b.working(existing, payload.AssetID)
	if asset == nil {
		p.conflict(op.tx, "unknown_asset", nil)
		return
	}
	if asset.TotalSupply > 0 && asset.CirculatingSupply+payload.Amount > asset.TotalSupply {
		p.conflict(op.tx, "supply_exceeded", nil)
		return
	}

	to, vout := firstOutputAddress(outputs[op.tx.TxID])
	if to == "" {
		to = asset.CurrentOwner
		vout = 0
	}
	if to == "" {
		p.conflict(op.tx, "missing_recipient", nil)
		return
	}

	asset.CirculatingSupply += payload.Amount
	b.transfers = append(b.transfers, model.AssetTransfer{
		Network:     p.network,
		AssetID:     payload.AssetID,
		TxID:        op.tx.TxID,
		Vout:        vout,
		To:          to,
		Amount:      payload.Amount,
		Kind:        model.TransferMint,
		BlockHeight: op.tx.BlockHeight,
		TxIndex:     op.tx.TxIndex,
		Timestamp:   op.tx.Timestamp,
	})
	b.mints++
	b.events++
	b.addAddress(to)
}

func (p *Processor) foldTransfer(
	b *batch,
	op classifiedOp,
	existing map[string]model.Asset,
	inputs map[string][]model.TransactionInput,
	outputs map[string][]model.TransactionOutput,
	prevouts map[string]model.TransactionOutput,
) {
	payload := op.payload
	asset := b.working(existing, payload.AssetID)
	if asset == nil {
		p.conflict(op.tx, "unknown_asset", nil)
		return
	}

	from := firstInputAddress(inputs[op.tx.TxID], prevouts)
	if from == "" {
		p.conflict(op.tx, "missing_sender", nil)
		return
	}
	to, vout := firstOutputAddress(outputs[op.tx.TxID])
	if to == "" {
		p.conflict(op.tx, "missing_recipient", nil)
		return
	}

	b.transfers = append(b.transfers, model.AssetTransfer{
		Network:     p.network,
		AssetID:     payload.AssetID,
		TxID:        op.tx.TxID,
		Vout:        vout,
		From:        from,
		To:          to,
		Amount:      payload.Amount,
		Kind:        model.TransferMove,
		BlockHeight: op.tx.BlockHeight,
		TxIndex:     op.tx.TxIndex,
		Timestamp:   op.tx.Timestamp,
	})
	if asset.Kind == chain.AssetKindNonFungible {
		asset.CurrentOwner = to
	}
	b.moves++
	b.events++
	b.addAddress(from)
	b.addAddress(to)
}

func (p *Processor) foldUpdate(b *batch, op classifiedOp, existing map[string]model.Asset) {
	payload := op.payload
	asset := b.working(existing, payload.AssetID)
	if asset == nil {
		p.conflict(op.tx, "unknown_asset", nil)
		return
	}
	if !asset.Updatable {
		p.conflict(op.tx, "immutable_asset", &ImmutableAssetError{AssetID: payload.AssetID})
		return
	}

	previousOwner := asset.CurrentOwner
	applyAssetUpdate(asset, payload)
	b.events++
	b.addAddress(previousOwner)
	b.addAddress(asset.CurrentOwner)
}

// applyAssetUpdate folds one update declaration into the mutable fields.
// Empty strings leave the respective field untouched and a zero MaxSupply
// keeps the cap. Updatable always takes the declared value, which is how an
// issuer locks an asset against further changes.
func applyAssetUpdate(asset *model.Asset, payload *chain.AssetPayload) {
	if payload.Owner != "" {
		asset.CurrentOwner = payload.Owner
	}
	if payload.ReferenceHash != "" {
		asset.ReferenceHash = payload.ReferenceHash
	}
	if payload.MaxSupply > 0 {
		asset.TotalSupply = payload.MaxSupply
	}
	asset.Updatable = payload.Updatable
}

func (p *Processor) conflict(tx model.Transaction, reason string, err error) {
	fields := []zap.Field{
		zap.String("txid", tx.TxID),
		zap.Uint64("height", tx.BlockHeight),
		zap.String("reason", reason),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	p.logger.Warn("asset operation rejected", fields...)
	p.metrics.ObserveConflict(reason)
}

// firstInputAddress resolves the spending address of a transaction: the first
// input with a known address, falling back to the stored previous output when
// the ingested row carries none.
func firstInputAddress(inputs []model.TransactionInput, prevouts map[string]model.TransactionOutput) string {
	for _, in := range inputs {
		if in.IsCoinbase {
			continue
		}
		if in.Address != "" {
			return in.Address
		}
		key := chain.Outpoint{TxID: in.PrevTxID, Vout: in.PrevVout}.String()
		if out, ok := prevouts[key]; ok && out.Address != "" {
			return out.Address
		}
	}
	return ""
}

// firstOutputAddress returns the first addressed output and its index.
func firstOutputAddress(outputs []model.TransactionOutput) (string, uint32) {
	for _, out := range outputs {
		if out.Address != "" {
			return out.Address, out.Index
		}
	}
	return "", 0
}
