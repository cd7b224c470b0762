package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/MarketBot_Go/internal/domain"
)

// ItemLister returns an immutable copy of the tracked listings
type ItemLister interface {
	Snapshot() []domain.ListedItem
	Get(id string) (domain.ListedItem, bool)
}

// BoundsSaver persists user bounds
type BoundsSaver interface {
	Save(ctx context.Context, b domain.PriceBounds) (domain.PriceBounds, error)
}

// UpdateBoundsRequest sets the floor and ceiling of one item in fixed point
// (1500 = 1.500). Zero clears a bound.
type UpdateBoundsRequest struct {
	FloorPrice   *int64 `json:"floor_price" validate:"required,min=0"`
	CeilingPrice *int64 `json:"ceiling_price" validate:"required,min=0"`
}

// HandleListItems returns the tracked listings
func HandleListItems(items ItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: items.Snapshot()})
	}
}

// HandleUpdateBounds stores new bounds for an item. Items not currently
// tracked are accepted too so bounds can be entered before a listing appears.
// The live collection is not touched; the next iteration overlays the change.
func HandleUpdateBounds(items ItemLister, saver BoundsSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, ParamItemID)

		var req UpdateBoundsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update bounds"); err != nil {
			return
		}

		b := domain.PriceBounds{
			ItemID:       id,
			FloorPrice:   *req.FloorPrice,
			CeilingPrice: *req.CeilingPrice,
		}
		if item, ok := items.Get(id); ok {
			b.HashName = item.HashName
		}

		saved, err := saver.Save(r.Context(), b)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgBoundsUpdated, Data: saved})
	}
}
