package transport

import (
	"net/http"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

const (
	defaultFutureLimit = 50
	maxFutureLimit     = 500
)

type futureResponse struct {
	TxID           string     `json:"txid"`
	Vout           uint32     `json:"vout"`
	Amount         uint64     `json:"amount"`
	AssetID        string     `json:"assetId,omitempty"`
	Recipient      string     `json:"recipient,omitempty"`
	Maturity       int32      `json:"maturity"`
	LockTime       int64      `json:"lockTime"`
	CreatedHeight  uint64     `json:"createdHeight"`
	CreatedAt      time.Time  `json:"createdAt"`
	UnlockHeight   *int64     `json:"unlockHeight,omitempty"`
	UnlockTime     *time.Time `json:"unlockTime,omitempty"`
	Status         string     `json:"status"`
	UnlockedBy     string     `json:"unlockedBy,omitempty"`
	UnlockedHeight uint64     `json:"unlockedHeight,omitempty"`
	UnlockedAt     *time.Time `json:"unlockedAt,omitempty"`
	SpentTxID      string     `json:"spentTxid,omitempty"`
	SpentHeight    uint64     `json:"spentHeight,omitempty"`
	SpentAt        *time.Time `json:"spentAt,omitempty"`
}

func toFutureResponse(row model.FutureOutput) futureResponse {
	out := futureResponse{
		TxID:           row.TxID,
		Vout:           row.Vout,
		Amount:         row.Amount,
		AssetID:        row.AssetID,
		Recipient:      row.Recipient,
		Maturity:       row.Maturity,
		LockTime:       row.LockTime,
		CreatedHeight:  row.CreatedHeight,
		CreatedAt:      row.CreatedAt,
		UnlockTime:     timePtr(row.UnlockTime),
		Status:         string(row.Status),
		UnlockedBy:     string(row.UnlockedBy),
		UnlockedHeight: row.UnlockedHeight,
		UnlockedAt:     timePtr(row.UnlockedAt),
		SpentTxID:      row.SpentTxID,
		SpentHeight:    row.SpentHeight,
		SpentAt:        timePtr(row.SpentAt),
	}
	if row.UnlockHeight >= 0 {
		unlockHeight := row.UnlockHeight
		out.UnlockHeight = &unlockHeight
	}
	return out
}

func (h *Handler) futures(w http.ResponseWriter, r *http.Request) {
	limit, err := queryUint(r, "limit", defaultFutureLimit)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := queryUint(r, "offset", 0)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := model.FutureFilter{
		Address: r.URL.Query().Get("address"),
		AssetID: r.URL.Query().Get("asset"),
		Limit:   clampLimit(limit, defaultFutureLimit, maxFutureLimit),
		Offset:  offset,
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := parseFutureStatus(raw)
		if !ok {
			h.writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
		filter.Status = status
	}

	rows, err := h.store.ListFutureOutputs(r.Context(), filter)
	if err != nil {
		h.serveFailure(w, "list future outputs", err)
		return
	}

	out := make([]futureResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toFutureResponse(row))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func parseFutureStatus(raw string) (model.FutureStatus, bool) {
	switch model.FutureStatus(raw) {
	case model.FutureLocked, model.FutureUnlocked, model.FutureSpent:
		return model.FutureStatus(raw), true
	}
	return "", false
}
