package model

import "time"

// AssetTransferAggregate is the transfer-derived slice of an asset's state,
// recomputed from deduplicated transfer rows so replaying a block cannot
// double count.
type AssetTransferAggregate struct {
	Minted        uint64
	TransferCount uint64
	LastRecipient string
}

// AddressChainAggregate is the coin-movement slice of an address's state.
type AddressChainAggregate struct {
	Received       uint64
	Sent           uint64
	TxCount        uint64
	FirstSeenBlock uint64
	FirstSeenAt    time.Time
	LastSeenAt     time.Time
}

// AddressAssetRoles counts the assets an address created or currently owns.
type AddressAssetRoles struct {
	Created uint64
	Owned   uint64
}
