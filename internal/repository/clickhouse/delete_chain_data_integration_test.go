package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

func (s *RepositorySuite) seedChainAt(heights []uint64, now time.Time) {
	blocks := make([]model.Block, 0, len(heights))
	txs := make([]model.Transaction, 0, len(heights))
	inputs := make([]model.TransactionInput, 0, len(heights))
	outputs := make([]model.TransactionOutput, 0, len(heights))
	transfers := make([]model.AssetTransfer, 0, len(heights))

	for i, height := range heights {
		suffix := string(rune('a' + i))
		block := newBlock(height, suffix, now.Add(time.Duration(i)*time.Second))
		blocks = append(blocks, block)

		txid := block.TxIDs[0]
		txs = append(txs, model.Transaction{
			Network:     model.Mainnet,
			TxID:        txid,
			BlockHeight: height,
			BlockHash:   block.Hash,
			Timestamp:   block.Timestamp,
			Type:        chain.TxTypeStandard,
			InputCount:  1,
			OutputCount: 1,
		})
		inputs = append(inputs, model.TransactionInput{
			Network:     model.Mainnet,
			TxID:        txid,
			Index:       0,
			PrevTxID:    "tx-prev-" + suffix,
			Address:     "addr-" + suffix,
			Value:       100,
			BlockHeight: height,
			Timestamp:   block.Timestamp,
		})
		outputs = append(outputs, model.TransactionOutput{
			Network:     model.Mainnet,
			TxID:        txid,
			Index:       0,
			Address:     "addr-" + suffix,
			Value:       90,
			BlockHeight: height,
			Timestamp:   block.Timestamp,
		})
		transfers = append(transfers, model.AssetTransfer{
			Network:     model.Mainnet,
			AssetID:     "GOLD",
			TxID:        txid,
			Vout:        0,
			To:          "addr-" + suffix,
			Amount:      10,
			Kind:        model.TransferMint,
			BlockHeight: height,
			Timestamp:   block.Timestamp,
		})
	}

	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, blocks))
	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, txs))
	s.Require().NoError(s.repo.InsertTransactionInputs(s.testCtx, inputs))
	s.Require().NoError(s.repo.InsertTransactionOutputs(s.testCtx, outputs))
	s.Require().NoError(s.repo.InsertAssetTransfers(s.testCtx, transfers))
}

func (s *RepositorySuite) TestDeleteChainDataAboveHeight() {
	now := time.Now().UTC().Truncate(time.Second)

	s.metrics.EXPECT().Observe("insert_blocks", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_transactions", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_transaction_inputs", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_transaction_outputs", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_asset_transfers", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("upsert_assets", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("upsert_addresses", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("upsert_future_outputs", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("delete_chain_data_above_height", gomock.Nil(), gomock.Any()).Times(1)

	s.seedChainAt([]uint64{10, 11, 12}, now)

	s.Require().NoError(s.repo.UpsertAssets(s.testCtx, []model.Asset{
		newAsset("GOLD", 10, now),
		newAsset("SILVER", 12, now),
	}))
	s.Require().NoError(s.repo.UpsertAddresses(s.testCtx, []model.Address{
		{Network: model.Mainnet, Address: "addr-a", FirstSeenBlock: 10, FirstSeenAt: now, LastSeenAt: now},
		{Network: model.Mainnet, Address: "addr-c", FirstSeenBlock: 12, FirstSeenAt: now, LastSeenAt: now},
	}))

	survivor := newLockedFuture("tx-old-future", 0, now)
	survivor.CreatedHeight = 10
	reorged := newLockedFuture("tx-new-future", 0, now)
	reorged.CreatedHeight = 12
	s.Require().NoError(s.repo.UpsertFutureOutputs(s.testCtx, []model.FutureOutput{survivor, reorged}))

	s.Require().NoError(s.repo.DeleteChainDataAboveHeight(s.testCtx, 11))

	s.Equal(uint64(2), s.countRows("blocks"))
	s.Equal(uint64(2), s.countRows("transactions"))
	s.Equal(uint64(2), s.countRows("transaction_inputs"))
	s.Equal(uint64(2), s.countRows("transaction_outputs"))
	s.Equal(uint64(2), s.countRows("asset_transfers"))
	s.Equal(uint64(1), s.countRows("assets"))
	s.Equal(uint64(1), s.countRows("addresses"))
	s.Equal(uint64(1), s.countRows("future_outputs"))
}

func (s *RepositorySuite) TestAssetIDsTouchedAbove() {
	now := time.Now().UTC().Truncate(time.Second)

	transfers := []model.AssetTransfer{
		{
			Network:     model.Mainnet,
			AssetID:     "GOLD",
			TxID:        "tx-low",
			Vout:        0,
			To:          "alice",
			Amount:      10,
			Kind:        model.TransferMint,
			BlockHeight: 10,
			Timestamp:   now,
		},
		{
			Network:     model.Mainnet,
			AssetID:     "SILVER",
			TxID:        "tx-high",
			Vout:        0,
			To:          "bob",
			Amount:      10,
			Kind:        model.TransferMint,
			BlockHeight: 15,
			Timestamp:   now,
		},
	}
	createTx := model.Transaction{
		Network:      model.Mainnet,
		TxID:         "tx-create",
		BlockHeight:  16,
		BlockHash:    "hash-16",
		Timestamp:    now,
		Type:         chain.TxTypeAssetCreate,
		AssetPayload: `{"assetId":"BRONZE","name":"BRONZE"}`,
	}

	s.metrics.EXPECT().Observe("insert_asset_transfers", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_transactions", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("asset_ids_touched_above", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertAssetTransfers(s.testCtx, transfers))
	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, []model.Transaction{createTx}))

	touched, err := s.repo.AssetIDsTouchedAbove(s.testCtx, 11)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"SILVER", "BRONZE"}, touched)
}

func (s *RepositorySuite) TestAddressesTouchedAbove() {
	now := time.Now().UTC().Truncate(time.Second)

	s.metrics.EXPECT().Observe("insert_blocks", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_transactions", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_transaction_inputs", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_transaction_outputs", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_asset_transfers", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("addresses_touched_above", gomock.Nil(), gomock.Any()).Times(1)

	s.seedChainAt([]uint64{10, 11, 12}, now)

	touched, err := s.repo.AddressesTouchedAbove(s.testCtx, 10)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"addr-b", "addr-c"}, touched)
}
