package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

func (s *RepositorySuite) TestSyncStateRoundTrip() {
	lastSynced := time.Now().UTC().Truncate(time.Second)
	state := model.SyncState{
		Network:             model.Mainnet,
		Service:             model.ServiceBlocks,
		CurrentBlock:        120,
		TargetBlock:         150,
		BlocksProcessed:     120,
		ItemsProcessed:      480,
		AvgBlockTime:        150 * time.Millisecond,
		EstimatedCompletion: lastSynced.Add(5 * time.Second),
		Status:              model.SyncSyncing,
		LastSyncedAt:        lastSynced,
	}

	s.metrics.EXPECT().Observe("upsert_sync_state", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("sync_state", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.UpsertSyncState(s.testCtx, state))

	stored, err := s.repo.SyncState(s.testCtx, model.ServiceBlocks)
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Equal(state, *stored)
}

func (s *RepositorySuite) TestSyncStateUnsetTimestampsStayUnset() {
	state := model.SyncState{
		Network: model.Mainnet,
		Service: model.ServiceAssets,
		Status:  model.SyncNotStarted,
	}

	s.metrics.EXPECT().Observe("upsert_sync_state", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("sync_state", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.UpsertSyncState(s.testCtx, state))

	stored, err := s.repo.SyncState(s.testCtx, model.ServiceAssets)
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.True(stored.EstimatedCompletion.IsZero())
	s.True(stored.LastSyncedAt.IsZero())
}

func (s *RepositorySuite) TestSyncStateAbsent() {
	s.metrics.EXPECT().Observe("sync_state", gomock.Nil(), gomock.Any()).Times(1)

	stored, err := s.repo.SyncState(s.testCtx, model.ServiceFutures)
	s.Require().NoError(err)
	s.Nil(stored)
}

func (s *RepositorySuite) TestSyncStatesReturnsEveryService() {
	lastSynced := time.Now().UTC().Truncate(time.Second)

	s.metrics.EXPECT().Observe("upsert_sync_state", gomock.Nil(), gomock.Any()).Times(3)
	s.metrics.EXPECT().Observe("sync_states", gomock.Nil(), gomock.Any()).Times(1)

	for i, service := range []model.SyncService{model.ServiceBlocks, model.ServiceAssets, model.ServiceFutures} {
		s.Require().NoError(s.repo.UpsertSyncState(s.testCtx, model.SyncState{
			Network:      model.Mainnet,
			Service:      service,
			CurrentBlock: uint64(100 + i),
			Status:       model.SyncSyncing,
			LastSyncedAt: lastSynced,
		}))
	}

	states, err := s.repo.SyncStates(s.testCtx)
	s.Require().NoError(err)
	s.Require().Len(states, 3)
	s.Equal(uint64(100), states[model.ServiceBlocks].CurrentBlock)
	s.Equal(uint64(101), states[model.ServiceAssets].CurrentBlock)
	s.Equal(uint64(102), states[model.ServiceFutures].CurrentBlock)
}
