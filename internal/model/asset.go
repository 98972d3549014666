package model

import (
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
)

// Asset is the materialized record of an issued asset. Created once by an
// asset_create transaction and mutated by every later mint, transfer and
// update touching it.
type Asset struct {
	Network           Network
	AssetID           string
	Name              string
	Kind              chain.AssetKind
	Creator           string
	CurrentOwner      string
	TotalSupply       uint64
	CirculatingSupply uint64
	TransferCount     uint64
	IsSubAsset        bool
	ParentAssetName   string
	Updatable         bool
	ReferenceHash     string
	Hidden            bool
	CreatedHeight     uint64
	CreatedAt         time.Time
}

// TransferKind distinguishes issuance from movement of existing units.
type TransferKind string

var (
	TransferMint TransferKind = "mint"
	TransferMove TransferKind = "transfer"
)

// AssetTransfer is one asset movement event, keyed by (txid, vout). The key
// doubles as the idempotency guard: reprocessing a transaction never yields a
// second row.
type AssetTransfer struct {
	Network     Network
	AssetID     string
	TxID        string
	Vout        uint32
	From        string
	To          string
	Amount      uint64
	Kind        TransferKind
	BlockHeight uint64
	TxIndex     uint32
	Timestamp   time.Time
}
