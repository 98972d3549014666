package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

const (
	defaultBlockLimit = 20
	maxBlockLimit     = 100
)

type blockResponse struct {
	Height        uint64    `json:"height"`
	Hash          string    `json:"hash"`
	PrevHash      string    `json:"prevHash,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Difficulty    float64   `json:"difficulty"`
	Size          uint32    `json:"size"`
	Miner         string    `json:"miner,omitempty"`
	TxCount       uint32    `json:"txCount"`
	Confirmations uint64    `json:"confirmations"`
	TxIDs         []string  `json:"txids,omitempty"`
}

func toBlockResponse(block model.Block, tip uint64, withTxIDs bool) blockResponse {
	var confirmations uint64
	if tip >= block.Height {
		confirmations = tip - block.Height + 1
	}
	out := blockResponse{
		Height:        block.Height,
		Hash:          block.Hash,
		PrevHash:      block.PrevHash,
		Timestamp:     block.Timestamp,
		Difficulty:    block.Difficulty,
		Size:          block.Size,
		Miner:         block.Miner,
		TxCount:       block.TXCount,
		Confirmations: confirmations,
	}
	if withTxIDs {
		out.TxIDs = block.TxIDs
	}
	return out
}

func (h *Handler) blocks(w http.ResponseWriter, r *http.Request) {
	limit, err := queryUint(r, "limit", defaultBlockLimit)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	before, err := queryUint(r, "before", 0)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit = clampLimit(limit, defaultBlockLimit, maxBlockLimit)

	tip, _, err := h.store.MaxBlockHeight(r.Context())
	if err != nil {
		h.serveFailure(w, "max block height", err)
		return
	}
	blocks, err := h.store.LatestBlocks(r.Context(), limit, before)
	if err != nil {
		h.serveFailure(w, "latest blocks", err)
		return
	}

	out := make([]blockResponse, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, toBlockResponse(block, tip, false))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) block(w http.ResponseWriter, r *http.Request) {
	height, err := strconv.ParseUint(mux.Vars(r)["height"], 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid height")
		return
	}

	block, err := h.store.BlockByHeight(r.Context(), height)
	if err != nil {
		h.serveFailure(w, "block by height", err)
		return
	}
	if block == nil {
		h.writeError(w, http.StatusNotFound, "block not found")
		return
	}
	tip, _, err := h.store.MaxBlockHeight(r.Context())
	if err != nil {
		h.serveFailure(w, "max block height", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toBlockResponse(*block, tip, true))
}
