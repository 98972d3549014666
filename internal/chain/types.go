// Package chain defines the typed view of blocks and transactions produced by
// the asset-enabled node and consumed by every sync service. Declared
// transaction types form a tagged union; anything the node reports that we do
// not recognize maps to TxTypeUnknown and is persisted as a standard transfer.
package chain

import (
	"fmt"
	"time"
)

type TxType string

const (
	TxTypeStandard      TxType = "standard"
	TxTypeAssetCreate   TxType = "asset_create"
	TxTypeAssetMint     TxType = "asset_mint"
	TxTypeAssetTransfer TxType = "asset_transfer"
	TxTypeAssetUpdate   TxType = "asset_update"
	TxTypeFuture        TxType = "future"
	TxTypeUnknown       TxType = "unknown"
)

// declaredTypes maps the node's on-wire type strings to the tagged union.
var declaredTypes = map[string]TxType{
	"":               TxTypeStandard,
	"transfer":       TxTypeStandard,
	"new_asset":      TxTypeAssetCreate,
	"mint_asset":     TxTypeAssetMint,
	"transfer_asset": TxTypeAssetTransfer,
	"update_asset":   TxTypeAssetUpdate,
	"future":         TxTypeFuture,
}

// ParseTxType maps a declared on-wire type to the tagged union, falling back
// to TxTypeUnknown so unrecognized declarations are never silently treated as
// asset operations.
func ParseTxType(declared string) TxType {
	if t, ok := declaredTypes[declared]; ok {
		return t
	}
	return TxTypeUnknown
}

// IsAssetOp reports whether the type carries asset semantics.
func (t TxType) IsAssetOp() bool {
	switch t {
	case TxTypeAssetCreate, TxTypeAssetMint, TxTypeAssetTransfer, TxTypeAssetUpdate:
		return true
	}
	return false
}

type AssetKind string

const (
	AssetKindFungible    AssetKind = "fungible"
	AssetKindNonFungible AssetKind = "non_fungible"
)

// ParseAssetKind defaults to fungible for unknown declarations; issuance on
// the wire only distinguishes unique (NFT-like) assets explicitly.
func ParseAssetKind(declared string) AssetKind {
	switch declared {
	case "non_fungible", "unique", "nft":
		return AssetKindNonFungible
	}
	return AssetKindFungible
}

// AssetPayload is the decoded assetData attachment of an asset-typed
// transaction. Amount is in base asset units.
type AssetPayload struct {
	AssetID       string    `json:"assetId"`
	Name          string    `json:"name"`
	Kind          AssetKind `json:"kind"`
	Amount        uint64    `json:"amount"`
	MaxSupply     uint64    `json:"maxSupply"`
	Updatable     bool      `json:"updatable"`
	Owner         string    `json:"owner"`
	ReferenceHash string    `json:"referenceHash"`
}

// FuturePayload is the decoded futureData attachment of a future-typed
// transaction. Maturity < 0 disables the height condition, LockTime < 0
// disables the time condition.
type FuturePayload struct {
	Maturity    int32  `json:"maturity"`
	LockTime    int64  `json:"lockTime"`
	Amount      uint64 `json:"amount"`
	AssetID     string `json:"assetId"`
	OutputIndex uint32 `json:"outputIndex"`
}

type TxInput struct {
	PrevTxID string
	PrevVout uint32
	Address  string
	Value    uint64
	Coinbase bool
}

type TxOutput struct {
	Index   uint32
	Address string
	Value   uint64
}

type Tx struct {
	TxID     string
	Type     TxType
	Declared string
	Inputs   []TxInput
	Outputs  []TxOutput
	Asset    *AssetPayload
	Future   *FuturePayload
}

type Block struct {
	Height     uint64
	Hash       string
	PrevHash   string
	Timestamp  time.Time
	Difficulty float64
	Size       uint32
	Miner      string
	Txs        []Tx
}

// Outpoint identifies a transaction output. Its string form keys the
// outstanding future-output cache.
type Outpoint struct {
	TxID string
	Vout uint32
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxID, o.Vout)
}

// OutputAddress returns the address of the given output index, or empty when
// the index is out of range or the output is unaddressable.
func (t *Tx) OutputAddress(index uint32) string {
	for _, out := range t.Outputs {
		if out.Index == index {
			return out.Address
		}
	}
	return ""
}

// FutureRecipient resolves the locked output's recipient address. The payload
// names the output index carrying the locked value.
func (t *Tx) FutureRecipient() string {
	if t.Future == nil {
		return ""
	}
	return t.OutputAddress(t.Future.OutputIndex)
}
