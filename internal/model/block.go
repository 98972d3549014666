package model

import (
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
)

// Block represents a chain block persisted to ClickHouse. Confirmations are
// derived at read time from the latest stored height, never stored.
type Block struct {
	Network    Network
	Height     uint64
	Hash       string
	PrevHash   string
	Timestamp  time.Time
	Difficulty float64
	Size       uint32
	Miner      string
	TXCount    uint32
	TxIDs      []string
}

// Transaction represents a transaction with its declared type and raw payload
// attachments. Payloads are stored as JSON so the asset and future services
// can replay them from the store without a node round trip.
type Transaction struct {
	Network       Network
	TxID          string
	BlockHeight   uint64
	BlockHash     string
	TxIndex       uint32
	Timestamp     time.Time
	Type          chain.TxType
	InputCount    uint32
	OutputCount   uint32
	AssetPayload  string
	FuturePayload string
}

// TransactionInput describes a spend of a previous output.
type TransactionInput struct {
	Network     Network
	TxID        string
	Index       uint32
	PrevTxID    string
	PrevVout    uint32
	Address     string
	Value       uint64
	IsCoinbase  bool
	BlockHeight uint64
	Timestamp   time.Time
}

// TransactionOutput represents an output produced by a transaction.
type TransactionOutput struct {
	Network     Network
	TxID        string
	Index       uint32
	Address     string
	Value       uint64
	BlockHeight uint64
	Timestamp   time.Time
}
