package model

import "time"

// SyncService names one of the long-lived sync loops.
type SyncService string

var (
	ServiceBlocks  SyncService = "blocks"
	ServiceAssets  SyncService = "assets"
	ServiceFutures SyncService = "futures"
)

// SyncServices lists every service in processing-dependency order: assets and
// futures replay what the blocks service has persisted.
var SyncServices = []SyncService{ServiceBlocks, ServiceAssets, ServiceFutures}

// SyncStatus is the coordinator state machine value persisted per service.
type SyncStatus string

var (
	SyncNotStarted SyncStatus = "not_started"
	SyncSyncing    SyncStatus = "syncing"
	SyncSynced     SyncStatus = "synced"
	SyncError      SyncStatus = "error"
	SyncPaused     SyncStatus = "paused"
)

// SyncState is one service's persisted progress. CurrentBlock advances only
// after every effect of a block is durably committed, so a crash replays at
// most the in-flight batch.
type SyncState struct {
	Network             Network
	Service             SyncService
	CurrentBlock        uint64
	TargetBlock         uint64
	BlocksProcessed     uint64
	ItemsProcessed      uint64
	AvgBlockTime        time.Duration
	EstimatedCompletion time.Time
	Status              SyncStatus
	LastError           string
	LastSyncedAt        time.Time
}

// BehindBlocks is the distance to the service target.
func (s SyncState) BehindBlocks() uint64 {
	if s.TargetBlock <= s.CurrentBlock {
		return 0
	}
	return s.TargetBlock - s.CurrentBlock
}

// Progress is the completion percentage against the current target.
func (s SyncState) Progress() float64 {
	if s.TargetBlock == 0 {
		return 0
	}
	p := float64(s.CurrentBlock) / float64(s.TargetBlock) * 100
	if p > 100 {
		return 100
	}
	return p
}
