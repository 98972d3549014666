package node

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/pkg/safe"
)

// coinsToBaseUnits converts a coin-denominated amount to base units with
// overflow checks.
func coinsToBaseUnits(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return safe.Uint64(int64(amt))
}

func (s rawScriptPubKey) address() string {
	if s.Address != "" {
		return s.Address
	}
	if len(s.Addresses) > 0 {
		return s.Addresses[0]
	}
	return ""
}

func convertTx(raw rawTx, logger *zap.Logger) (chain.Tx, error) {
	tx := chain.Tx{
		TxID:     raw.TxID,
		Type:     chain.ParseTxType(raw.Type),
		Declared: raw.Type,
		Inputs:   make([]chain.TxInput, 0, len(raw.Vin)),
		Outputs:  make([]chain.TxOutput, 0, len(raw.Vout)),
	}

	for i, vin := range raw.Vin {
		in := chain.TxInput{
			PrevTxID: vin.TxID,
			PrevVout: vin.Vout,
			Coinbase: vin.Coinbase != "",
		}
		if vin.PrevOut != nil {
			value, err := coinsToBaseUnits(vin.PrevOut.Value)
			if err != nil {
				return chain.Tx{}, fmt.Errorf("tx %s input %d value: %w", raw.TxID, i, err)
			}
			in.Value = value
			in.Address = vin.PrevOut.ScriptPubKey.address()
		}
		tx.Inputs = append(tx.Inputs, in)
	}

	for _, vout := range raw.Vout {
		value, err := coinsToBaseUnits(vout.Value)
		if err != nil {
			return chain.Tx{}, fmt.Errorf("tx %s output %d value: %w", raw.TxID, vout.N, err)
		}
		tx.Outputs = append(tx.Outputs, chain.TxOutput{
			Index:   vout.N,
			Address: vout.ScriptPubKey.address(),
			Value:   value,
		})
	}

	// A payload that fails to decode leaves the attachment nil; the asset
	// processor downgrades such transactions to standard transfers.
	asset, err := chain.DecodeAssetPayload(raw.AssetData)
	if err != nil {
		logger.Warn("asset payload not decodable", zap.String("txid", raw.TxID), zap.Error(err))
	} else {
		tx.Asset = asset
	}

	future, err := chain.DecodeFuturePayload(raw.FutureData)
	if err != nil {
		logger.Warn("future payload not decodable", zap.String("txid", raw.TxID), zap.Error(err))
	} else {
		tx.Future = future
	}

	return tx, nil
}

func convertBlock(raw rawBlock, logger *zap.Logger) (*chain.Block, error) {
	height, err := safe.Uint64(raw.Height)
	if err != nil {
		return nil, fmt.Errorf("block height %d: %w", raw.Height, err)
	}
	size, err := safe.Uint32(raw.Size)
	if err != nil {
		return nil, fmt.Errorf("block %d size: %w", raw.Height, err)
	}

	block := &chain.Block{
		Height:     height,
		Hash:       raw.Hash,
		PrevHash:   raw.PreviousBlockHash,
		Timestamp:  time.Unix(raw.Time, 0).UTC(),
		Difficulty: raw.Difficulty,
		Size:       size,
		Txs:        make([]chain.Tx, 0, len(raw.Tx)),
	}

	for _, rtx := range raw.Tx {
		tx, err := convertTx(rtx, logger)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", raw.Height, err)
		}
		block.Txs = append(block.Txs, tx)
	}

	block.Miner = minerAddress(block.Txs)
	return block, nil
}

// minerAddress is the first output address of the coinbase transaction.
func minerAddress(txs []chain.Tx) string {
	for _, tx := range txs {
		for _, in := range tx.Inputs {
			if !in.Coinbase {
				continue
			}
			for _, out := range tx.Outputs {
				if out.Address != "" {
					return out.Address
				}
			}
			return ""
		}
	}
	return ""
}
