package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

func (s *RepositorySuite) TestUpsertAddressesRoundTrip() {
	now := time.Now().UTC().Truncate(time.Second)

	address := model.Address{
		Network:        model.Mainnet,
		Address:        "alice",
		Balance:        150,
		TotalReceived:  200,
		TotalSent:      50,
		TxCount:        3,
		AssetBalances:  map[string]uint64{"GOLD": 30, "GOLD|vault": 1},
		AssetsCreated:  1,
		AssetsOwned:    2,
		IsCreator:      true,
		FirstSeenBlock: 10,
		FirstSeenAt:    now,
		LastSeenAt:     now.Add(time.Minute),
	}

	s.metrics.EXPECT().Observe("upsert_addresses", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("address_by_id", gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.UpsertAddresses(s.testCtx, []model.Address{address}))

	got, err := s.repo.AddressByID(s.testCtx, "alice")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(address, *got)

	missing, err := s.repo.AddressByID(s.testCtx, "nobody")
	s.Require().NoError(err)
	s.Nil(missing)
}

func (s *RepositorySuite) TestAddressChainAggregates() {
	now := time.Now().UTC().Truncate(time.Second)

	outputs := []model.TransactionOutput{
		{Network: model.Mainnet, TxID: "tx-fund", Index: 0, Address: "alice", Value: 100, BlockHeight: 10, Timestamp: now},
		{Network: model.Mainnet, TxID: "tx-fund", Index: 1, Address: "bob", Value: 70, BlockHeight: 10, Timestamp: now},
	}
	inputs := []model.TransactionInput{
		{Network: model.Mainnet, TxID: "tx-spend", Index: 0, PrevTxID: "tx-fund", PrevVout: 0, Address: "alice", Value: 40, BlockHeight: 12, Timestamp: now.Add(2 * time.Second)},
	}

	s.metrics.EXPECT().Observe("insert_transaction_outputs", gomock.Nil(), gomock.Any()).Times(2)
	s.metrics.EXPECT().Observe("insert_transaction_inputs", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("address_chain_aggregates", gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertTransactionOutputs(s.testCtx, outputs))
	s.Require().NoError(s.repo.InsertTransactionInputs(s.testCtx, inputs))

	// A replayed batch must not change the totals.
	s.Require().NoError(s.repo.InsertTransactionOutputs(s.testCtx, outputs))

	aggregates, err := s.repo.AddressChainAggregates(s.testCtx, []string{"alice", "bob"}, 12)
	s.Require().NoError(err)
	s.Require().Contains(aggregates, "alice")
	s.Require().Contains(aggregates, "bob")

	alice := aggregates["alice"]
	s.Equal(uint64(100), alice.Received)
	s.Equal(uint64(40), alice.Sent)
	s.Equal(uint64(2), alice.TxCount)
	s.Equal(uint64(10), alice.FirstSeenBlock)
	s.Equal(now, alice.FirstSeenAt)
	s.Equal(now.Add(2*time.Second), alice.LastSeenAt)

	bob := aggregates["bob"]
	s.Equal(uint64(70), bob.Received)
	s.Equal(uint64(0), bob.Sent)

	capped, err := s.repo.AddressChainAggregates(s.testCtx, []string{"alice"}, 11)
	s.Require().NoError(err)
	s.Equal(uint64(0), capped["alice"].Sent)
	s.Equal(uint64(1), capped["alice"].TxCount)
}

func (s *RepositorySuite) TestAddressAssetBalances() {
	now := time.Now().UTC().Truncate(time.Second)

	transfers := []model.AssetTransfer{
		{Network: model.Mainnet, AssetID: "GOLD", TxID: "tx-mint", Vout: 0, To: "alice", Amount: 50, Kind: model.TransferMint, BlockHeight: 10, Timestamp: now},
		{Network: model.Mainnet, AssetID: "GOLD", TxID: "tx-move", Vout: 0, From: "alice", To: "bob", Amount: 20, Kind: model.TransferMove, BlockHeight: 11, Timestamp: now},
	}

	s.metrics.EXPECT().Observe("insert_asset_transfers", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("address_asset_balances", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertAssetTransfers(s.testCtx, transfers))

	balances, err := s.repo.AddressAssetBalances(s.testCtx, []string{"alice", "bob", "nobody"}, 20)
	s.Require().NoError(err)
	s.Equal(uint64(30), balances["alice"]["GOLD"])
	s.Equal(uint64(20), balances["bob"]["GOLD"])
	s.NotContains(balances, "nobody")
}

func (s *RepositorySuite) TestAddressAssetRoles() {
	now := time.Now().UTC().Truncate(time.Second)

	creatorOwned := newAsset("GOLD", 10, now)
	creatorOwned.Creator = "alice"
	creatorOwned.CurrentOwner = "alice"

	transferred := newAsset("SILVER", 11, now)
	transferred.Creator = "alice"
	transferred.CurrentOwner = "bob"

	s.metrics.EXPECT().Observe("upsert_assets", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("address_asset_roles", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.UpsertAssets(s.testCtx, []model.Asset{creatorOwned, transferred}))

	roles, err := s.repo.AddressAssetRoles(s.testCtx, []string{"alice", "bob"})
	s.Require().NoError(err)
	s.Equal(uint64(2), roles["alice"].Created)
	s.Equal(uint64(1), roles["alice"].Owned)
	s.Equal(uint64(0), roles["bob"].Created)
	s.Equal(uint64(1), roles["bob"].Owned)
}
