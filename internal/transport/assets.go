package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

const (
	defaultAssetLimit = 50
	maxAssetLimit     = 500
)

type assetResponse struct {
	AssetID           string    `json:"assetId"`
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	Creator           string    `json:"creator,omitempty"`
	CurrentOwner      string    `json:"currentOwner,omitempty"`
	TotalSupply       uint64    `json:"totalSupply"`
	CirculatingSupply uint64    `json:"circulatingSupply"`
	TransferCount     uint64    `json:"transferCount"`
	IsSubAsset        bool      `json:"isSubAsset,omitempty"`
	ParentAssetName   string    `json:"parentAssetName,omitempty"`
	Updatable         bool      `json:"updatable"`
	ReferenceHash     string    `json:"referenceHash,omitempty"`
	CreatedHeight     uint64    `json:"createdHeight"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toAssetResponse(asset model.Asset) assetResponse {
	return assetResponse{
		AssetID:           asset.AssetID,
		Name:              asset.Name,
		Type:              string(asset.Kind),
		Creator:           asset.Creator,
		CurrentOwner:      asset.CurrentOwner,
		TotalSupply:       asset.TotalSupply,
		CirculatingSupply: asset.CirculatingSupply,
		TransferCount:     asset.TransferCount,
		IsSubAsset:        asset.IsSubAsset,
		ParentAssetName:   asset.ParentAssetName,
		Updatable:         asset.Updatable,
		ReferenceHash:     asset.ReferenceHash,
		CreatedHeight:     asset.CreatedHeight,
		CreatedAt:         asset.CreatedAt,
	}
}

func toAssetResponses(assets []model.Asset) []assetResponse {
	out := make([]assetResponse, 0, len(assets))
	for _, asset := range assets {
		out = append(out, toAssetResponse(asset))
	}
	return out
}

type transferResponse struct {
	AssetID     string    `json:"assetId"`
	TxID        string    `json:"txid"`
	Vout        uint32    `json:"vout"`
	From        string    `json:"from,omitempty"`
	To          string    `json:"to"`
	Amount      uint64    `json:"amount"`
	Type        string    `json:"type"`
	BlockHeight uint64    `json:"blockHeight"`
	Timestamp   time.Time `json:"timestamp"`
}

func (h *Handler) assets(w http.ResponseWriter, r *http.Request) {
	limit, err := queryUint(r, "limit", defaultAssetLimit)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := queryUint(r, "offset", 0)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit = clampLimit(limit, defaultAssetLimit, maxAssetLimit)

	assets, err := h.store.ListAssets(r.Context(), limit, offset, false)
	if err != nil {
		h.serveFailure(w, "list assets", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAssetResponses(assets))
}

// asset serves one asset by id, falling back to a case-insensitive name
// lookup so both forms work as the path segment.
func (h *Handler) asset(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	asset, err := h.store.AssetByID(r.Context(), id)
	if err != nil {
		h.serveFailure(w, "asset by id", err)
		return
	}
	if asset == nil {
		asset, err = h.store.AssetByName(r.Context(), id)
		if err != nil {
			h.serveFailure(w, "asset by name", err)
			return
		}
	}
	if asset == nil {
		h.writeError(w, http.StatusNotFound, "asset not found")
		return
	}
	h.writeJSON(w, http.StatusOK, toAssetResponse(*asset))
}

func (h *Handler) assetTransfers(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	limit, err := queryUint(r, "limit", defaultAssetLimit)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := queryUint(r, "offset", 0)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit = clampLimit(limit, defaultAssetLimit, maxAssetLimit)

	transfers, err := h.store.AssetTransfersByAsset(r.Context(), id, limit, offset)
	if err != nil {
		h.serveFailure(w, "asset transfers", err)
		return
	}

	out := make([]transferResponse, 0, len(transfers))
	for _, transfer := range transfers {
		out = append(out, transferResponse{
			AssetID:     transfer.AssetID,
			TxID:        transfer.TxID,
			Vout:        transfer.Vout,
			From:        transfer.From,
			To:          transfer.To,
			Amount:      transfer.Amount,
			Type:        string(transfer.Kind),
			BlockHeight: transfer.BlockHeight,
			Timestamp:   transfer.Timestamp,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}
