package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// Handler serves the JSON read API. Every route is read-only except the
// operator hooks under /api/v1/admin.
type Handler struct {
	logger      *zap.Logger
	store       Store
	reprocessor Reprocessor
	network     model.Network
}

// NewHandler builds the API handler. The reprocessor may be nil, which
// disables the reprocess hook.
func NewHandler(store Store, reprocessor Reprocessor, network model.Network, logger *zap.Logger) (*Handler, error) {
	logger = logger.With(zap.String("network", string(network)))
	if store == nil {
		return nil, errors.New("transport store is required")
	}

	return &Handler{
		logger:      logger,
		store:       store,
		reprocessor: reprocessor,
		network:     network,
	}, nil
}

// Router wires every route.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	r.HandleFunc("/readyz", h.ready).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/status", h.status).Methods(http.MethodGet)
	api.HandleFunc("/status/{service}", h.serviceStatus).Methods(http.MethodGet)
	api.HandleFunc("/blocks", h.blocks).Methods(http.MethodGet)
	api.HandleFunc("/blocks/{height}", h.block).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{txid}", h.transaction).Methods(http.MethodGet)
	api.HandleFunc("/assets", h.assets).Methods(http.MethodGet)
	api.HandleFunc("/assets/{id}", h.asset).Methods(http.MethodGet)
	api.HandleFunc("/assets/{id}/transfers", h.assetTransfers).Methods(http.MethodGet)
	api.HandleFunc("/addresses/{address}", h.address).Methods(http.MethodGet)
	api.HandleFunc("/addresses/{address}/assets", h.addressAssets).Methods(http.MethodGet)
	api.HandleFunc("/futures", h.futures).Methods(http.MethodGet)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/reprocess/{txid}", h.reprocess).Methods(http.MethodPost)
	admin.HandleFunc("/sync/{service}/pause", h.pauseService).Methods(http.MethodPost)
	admin.HandleFunc("/sync/{service}/resume", h.resumeService).Methods(http.MethodPost)

	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Warn("readiness ping failed", zap.Error(err))
		h.writeError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response failed", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

// serveFailure hides store errors behind a uniform 500.
func (h *Handler) serveFailure(w http.ResponseWriter, op string, err error) {
	h.logger.Error("request failed", zap.String("op", op), zap.Error(err))
	h.writeError(w, http.StatusInternalServerError, "internal error")
}

// queryUint parses an optional numeric query parameter.
func queryUint(r *http.Request, name string, def uint64) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return v, nil
}

func clampLimit(limit, def, max uint64) uint64 {
	if limit == 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
