package model

import "time"

// Address aggregates everything observed about one address. Balance fields
// are replay-derived; AssetBalances maps asset id to held units. IsContract
// marks addresses currently administering at least one asset.
type Address struct {
	Network        Network
	Address        string
	Balance        uint64
	TotalReceived  uint64
	TotalSent      uint64
	TxCount        uint64
	AssetBalances  map[string]uint64
	AssetsCreated  uint32
	AssetsOwned    uint32
	IsCreator      bool
	IsContract     bool
	FirstSeenBlock uint64
	FirstSeenAt    time.Time
	LastSeenAt     time.Time
}
