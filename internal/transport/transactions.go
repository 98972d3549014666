package transport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

type transactionResponse struct {
	TxID          string           `json:"txid"`
	BlockHeight   uint64           `json:"blockHeight"`
	BlockHash     string           `json:"blockHash,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
	Type          string           `json:"type"`
	Inputs        []inputResponse  `json:"inputs"`
	Outputs       []outputResponse `json:"outputs"`
	AssetPayload  json.RawMessage  `json:"assetPayload,omitempty"`
	FuturePayload json.RawMessage  `json:"futurePayload,omitempty"`
}

type inputResponse struct {
	PrevTxID   string `json:"prevTxid,omitempty"`
	PrevVout   uint32 `json:"prevVout"`
	Address    string `json:"address,omitempty"`
	Value      uint64 `json:"value"`
	IsCoinbase bool   `json:"isCoinbase,omitempty"`
}

type outputResponse struct {
	Index   uint32 `json:"index"`
	Address string `json:"address,omitempty"`
	Value   uint64 `json:"value"`
}

func toTransactionResponse(tx model.Transaction, ins []model.TransactionInput, outs []model.TransactionOutput) transactionResponse {
	out := transactionResponse{
		TxID:        tx.TxID,
		BlockHeight: tx.BlockHeight,
		BlockHash:   tx.BlockHash,
		Timestamp:   tx.Timestamp,
		Type:        string(tx.Type),
		Inputs:      make([]inputResponse, 0, len(ins)),
		Outputs:     make([]outputResponse, 0, len(outs)),
	}
	for _, in := range ins {
		out.Inputs = append(out.Inputs, inputResponse{
			PrevTxID:   in.PrevTxID,
			PrevVout:   in.PrevVout,
			Address:    in.Address,
			Value:      in.Value,
			IsCoinbase: in.IsCoinbase,
		})
	}
	for _, o := range outs {
		out.Outputs = append(out.Outputs, outputResponse{
			Index:   o.Index,
			Address: o.Address,
			Value:   o.Value,
		})
	}
	out.AssetPayload = rawPayload(tx.AssetPayload)
	out.FuturePayload = rawPayload(tx.FuturePayload)
	return out
}

// rawPayload passes a stored payload through untouched when it is valid
// JSON. Malformed declarations stay on record as transactions, but their
// broken payloads are not worth serving.
func rawPayload(payload string) json.RawMessage {
	if payload == "" || !json.Valid([]byte(payload)) {
		return nil
	}
	return json.RawMessage(payload)
}

func (h *Handler) transaction(w http.ResponseWriter, r *http.Request) {
	txid := mux.Vars(r)["txid"]

	tx, err := h.store.TransactionByTxID(r.Context(), txid)
	if err != nil {
		h.serveFailure(w, "transaction by txid", err)
		return
	}
	if tx == nil {
		h.writeError(w, http.StatusNotFound, "transaction not found")
		return
	}
	ins, err := h.store.TransactionInputsByTxID(r.Context(), txid)
	if err != nil {
		h.serveFailure(w, "transaction inputs", err)
		return
	}
	outs, err := h.store.TransactionOutputsByTxID(r.Context(), txid)
	if err != nil {
		h.serveFailure(w, "transaction outputs", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toTransactionResponse(*tx, ins, outs))
}
