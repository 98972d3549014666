package model

import "time"

// FutureStatus is the lifecycle state of a locked output.
type FutureStatus string

var (
	FutureLocked   FutureStatus = "locked"
	FutureUnlocked FutureStatus = "unlocked"
	FutureSpent    FutureStatus = "spent"
)

// UnlockTrigger records which condition released a future output.
type UnlockTrigger string

var (
	UnlockedByNone          UnlockTrigger = ""
	UnlockedByConfirmations UnlockTrigger = "confirmations"
	UnlockedByTime          UnlockTrigger = "time"
)

// FutureOutput is a time or height locked output, keyed by (txid, vout).
// Maturity < 0 disables the height condition and LockTime < 0 disables the
// time condition; UnlockHeight carries -1 and UnlockTime the zero value when
// the respective condition is absent. UnlockedHeight and SpentHeight exist so
// a rollback can revert transitions recorded above the reorg ancestor.
type FutureOutput struct {
	Network        Network
	TxID           string
	Vout           uint32
	Amount         uint64
	AssetID        string
	Recipient      string
	Maturity       int32
	LockTime       int64
	CreatedHeight  uint64
	CreatedAt      time.Time
	UnlockHeight   int64
	UnlockTime     time.Time
	Status         FutureStatus
	UnlockedBy     UnlockTrigger
	UnlockedHeight uint64
	UnlockedAt     time.Time
	SpentTxID      string
	SpentHeight    uint64
	SpentAt        time.Time
}

// Spendable reports whether the output can still be consumed by a spend,
// which is any state except already spent. Early spends of still locked
// outputs pass through to spent directly.
func (f FutureOutput) Spendable() bool {
	return f.Status != FutureSpent
}

// FutureFilter narrows a future output listing. Zero values leave the
// respective dimension unfiltered.
type FutureFilter struct {
	Status  FutureStatus
	Address string
	AssetID string
	Limit   uint64
	Offset  uint64
}
