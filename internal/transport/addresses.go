package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

type addressResponse struct {
	Address        string            `json:"address"`
	Balance        uint64            `json:"balance"`
	TotalReceived  uint64            `json:"totalReceived"`
	TotalSent      uint64            `json:"totalSent"`
	TxCount        uint64            `json:"txCount"`
	AssetBalances  map[string]uint64 `json:"assetBalances,omitempty"`
	AssetsCreated  uint32            `json:"assetsCreated"`
	AssetsOwned    uint32            `json:"assetsOwned"`
	IsCreator      bool              `json:"isCreator"`
	IsContract     bool              `json:"isContract"`
	FirstSeenBlock uint64            `json:"firstSeenBlock"`
	FirstSeenAt    *time.Time        `json:"firstSeenAt,omitempty"`
	LastSeenAt     *time.Time        `json:"lastSeenAt,omitempty"`
}

func toAddressResponse(addr model.Address) addressResponse {
	return addressResponse{
		Address:        addr.Address,
		Balance:        addr.Balance,
		TotalReceived:  addr.TotalReceived,
		TotalSent:      addr.TotalSent,
		TxCount:        addr.TxCount,
		AssetBalances:  addr.AssetBalances,
		AssetsCreated:  addr.AssetsCreated,
		AssetsOwned:    addr.AssetsOwned,
		IsCreator:      addr.IsCreator,
		IsContract:     addr.IsContract,
		FirstSeenBlock: addr.FirstSeenBlock,
		FirstSeenAt:    timePtr(addr.FirstSeenAt),
		LastSeenAt:     timePtr(addr.LastSeenAt),
	}
}

func (h *Handler) address(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]

	addr, err := h.store.AddressByID(r.Context(), address)
	if err != nil {
		h.serveFailure(w, "address by id", err)
		return
	}
	if addr == nil {
		h.writeError(w, http.StatusNotFound, "address not found")
		return
	}
	h.writeJSON(w, http.StatusOK, toAddressResponse(*addr))
}

// addressAssets lists every asset the address created or currently owns.
func (h *Handler) addressAssets(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]

	assets, err := h.store.AssetsByAddress(r.Context(), address)
	if err != nil {
		h.serveFailure(w, "assets by address", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAssetResponses(assets))
}
