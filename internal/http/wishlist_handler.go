package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/balapuneethsujay07/zenkira-store/internal/store"
)

type WishlistHandler struct {
	store store.Store
	log   *zap.Logger
}

func NewWishlistHandler(s store.Store, log *zap.Logger) *WishlistHandler {
	return &WishlistHandler{store: s, log: log}
}

type ToggleWishlistResponse struct {
	ProductID  string `json:"productId"`
	Wishlisted bool   `json:"wishlisted"`
}

// Get handles GET /v1/wishlist.
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	ids := h.store.Wishlist()
	if ids == nil {
		ids = []string{}
	}
	respondJSON(h.log, w, http.StatusOK, map[string][]string{"wishlist": ids})
}

// Toggle handles POST /v1/wishlist/{id}. The response tells the caller which
// notification to show.
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.store.Product(id); err != nil {
		respondStoreError(h.log, w, err)
		return
	}

	wishlisted := h.store.ToggleWishlist(id)
	respondJSON(h.log, w, http.StatusOK, ToggleWishlistResponse{ProductID: id, Wishlisted: wishlisted})
}
