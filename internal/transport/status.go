package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// statusResponse is one service's sync progress. averageBlockTime is in
// milliseconds per block.
type statusResponse struct {
	Service             string     `json:"service"`
	Status              string     `json:"status"`
	CurrentBlock        uint64     `json:"currentBlock"`
	TargetBlock         uint64     `json:"targetBlock"`
	BehindBlocks        uint64     `json:"behindBlocks"`
	Progress            float64    `json:"progress"`
	IsSynced            bool       `json:"isSynced"`
	AverageBlockTime    float64    `json:"averageBlockTime"`
	EstimatedCompletion *time.Time `json:"estimatedCompletion,omitempty"`
	BlocksProcessed     uint64     `json:"blocksProcessed"`
	ItemsProcessed      uint64     `json:"itemsProcessed"`
	LastError           string     `json:"lastError,omitempty"`
	LastSyncedAt        *time.Time `json:"lastSyncedAt,omitempty"`
}

func toStatusResponse(state model.SyncState) statusResponse {
	return statusResponse{
		Service:             string(state.Service),
		Status:              string(state.Status),
		CurrentBlock:        state.CurrentBlock,
		TargetBlock:         state.TargetBlock,
		BehindBlocks:        state.BehindBlocks(),
		Progress:            state.Progress(),
		IsSynced:            state.Status == model.SyncSynced,
		AverageBlockTime:    state.AvgBlockTime.Seconds() * 1000,
		EstimatedCompletion: timePtr(state.EstimatedCompletion),
		BlocksProcessed:     state.BlocksProcessed,
		ItemsProcessed:      state.ItemsProcessed,
		LastError:           state.LastError,
		LastSyncedAt:        timePtr(state.LastSyncedAt),
	}
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	states, err := h.store.SyncStates(r.Context())
	if err != nil {
		h.serveFailure(w, "sync states", err)
		return
	}

	out := make([]statusResponse, 0, len(model.SyncServices))
	for _, service := range model.SyncServices {
		state, ok := states[service]
		if !ok {
			state = model.SyncState{
				Network: h.network,
				Service: service,
				Status:  model.SyncNotStarted,
			}
		}
		out = append(out, toStatusResponse(state))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) serviceStatus(w http.ResponseWriter, r *http.Request) {
	service, ok := parseService(mux.Vars(r)["service"])
	if !ok {
		h.writeError(w, http.StatusNotFound, "unknown service")
		return
	}

	state, err := h.store.SyncState(r.Context(), service)
	if err != nil {
		h.serveFailure(w, "sync state", err)
		return
	}
	if state == nil {
		state = &model.SyncState{
			Network: h.network,
			Service: service,
			Status:  model.SyncNotStarted,
		}
	}
	h.writeJSON(w, http.StatusOK, toStatusResponse(*state))
}

func parseService(raw string) (model.SyncService, bool) {
	for _, service := range model.SyncServices {
		if string(service) == raw {
			return service, true
		}
	}
	return "", false
}
