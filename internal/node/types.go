// Package node talks JSON-RPC to the asset-enabled chain node and converts
// its verbose results into the typed chain model.
package node

import (
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Caller is the subset of the btcd rpcclient surface the node client
	// uses. RawRequest carries the asset-extended verbose calls the typed
	// client does not know about.
	Caller interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}

	// Metrics records metrics for node RPC calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Wire shapes of the node's verbose results. Payload attachments stay raw so
// one malformed declaration cannot fail a whole block decode.
type (
	rawScriptPubKey struct {
		Address   string   `json:"address"`
		Addresses []string `json:"addresses"`
	}

	rawPrevOut struct {
		Value        float64         `json:"value"`
		ScriptPubKey rawScriptPubKey `json:"scriptPubKey"`
	}

	rawVin struct {
		Coinbase string      `json:"coinbase"`
		TxID     string      `json:"txid"`
		Vout     uint32      `json:"vout"`
		PrevOut  *rawPrevOut `json:"prevout"`
	}

	rawVout struct {
		Value        float64         `json:"value"`
		N            uint32          `json:"n"`
		ScriptPubKey rawScriptPubKey `json:"scriptPubKey"`
	}

	rawTx struct {
		TxID       string          `json:"txid"`
		Type       string          `json:"type"`
		Vin        []rawVin        `json:"vin"`
		Vout       []rawVout       `json:"vout"`
		AssetData  json.RawMessage `json:"assetData"`
		FutureData json.RawMessage `json:"futureData"`
	}

	rawBlock struct {
		Hash              string  `json:"hash"`
		Height            int64   `json:"height"`
		PreviousBlockHash string  `json:"previousblockhash"`
		Time              int64   `json:"time"`
		Difficulty        float64 `json:"difficulty"`
		Size              int32   `json:"size"`
		Tx                []rawTx `json:"tx"`
	}

	rawTxVerbose struct {
		rawTx
		BlockHash string `json:"blockhash"`
		Height    int64  `json:"height"`
		Time      int64  `json:"time"`
	}
)
