package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// reprocess replays one stored transaction through the asset processor. The
// processor's guards are idempotent, so replaying an already processed
// transaction is harmless. Failures carry the cause: this is an operator
// surface.
func (h *Handler) reprocess(w http.ResponseWriter, r *http.Request) {
	if h.reprocessor == nil {
		h.writeError(w, http.StatusNotImplemented, "reprocessing is not wired")
		return
	}
	txid := mux.Vars(r)["txid"]

	if err := h.reprocessor.Reprocess(r.Context(), txid); err != nil {
		h.logger.Warn("reprocess failed", zap.String("txid", txid), zap.Error(err))
		h.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h.logger.Info("transaction reprocessed", zap.String("txid", txid))
	h.writeJSON(w, http.StatusOK, map[string]string{"txid": txid, "status": "reprocessed"})
}

func (h *Handler) pauseService(w http.ResponseWriter, r *http.Request) {
	h.setServicePaused(w, r, true)
}

// resumeService hands a paused service back to its coordinator. The
// coordinator reloads the row each tick, so the change takes effect on the
// next one.
func (h *Handler) resumeService(w http.ResponseWriter, r *http.Request) {
	h.setServicePaused(w, r, false)
}

func (h *Handler) setServicePaused(w http.ResponseWriter, r *http.Request, pause bool) {
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
		// Pausing a service that never ran parks it before its first step.
		state = &model.SyncState{
			Network: h.network,
			Service: service,
			Status:  model.SyncNotStarted,
		}
	}

	target := model.SyncPaused
	if !pause {
		if state.BlocksProcessed == 0 && state.CurrentBlock == 0 {
			// Never advanced; the processor still owns the first step.
			target = model.SyncNotStarted
		} else {
			target = model.SyncSyncing
		}
	}
	if state.Status == target {
		h.writeJSON(w, http.StatusOK, toStatusResponse(*state))
		return
	}

	state.Status = target
	state.LastSyncedAt = time.Now().UTC()
	if err := h.store.UpsertSyncState(r.Context(), *state); err != nil {
		h.serveFailure(w, "persist sync state", err)
		return
	}
	h.logger.Info("service status changed by operator",
		zap.String("service", string(service)),
		zap.String("status", string(target)))
	h.writeJSON(w, http.StatusOK, toStatusResponse(*state))
}
