package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/balapuneethsujay07/zenkira-store/internal/domain"
	"github.com/balapuneethsujay07/zenkira-store/internal/store"
)

type CartHandler struct {
	store store.Store
	log   *zap.Logger
}

func NewCartHandler(s store.Store, log *zap.Logger) *CartHandler {
	return &CartHandler{store: s, log: log}
}

type AddItemRequestDTO struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Delta int `json:"delta"`
}

type CartResponse struct {
	Items    []domain.CartItem `json:"items"`
	Subtotal int64             `json:"subtotal"`
}

func (h *CartHandler) cartResponse() CartResponse {
	items := h.store.Cart()
	return CartResponse{Items: items, Subtotal: domain.CartTotal(items)}
}

// Get handles GET /v1/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(h.log, w, http.StatusOK, h.cartResponse())
}

// AddItem handles POST /v1/cart/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.log, w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(h.log, w, http.StatusBadRequest, "invalid_product_id", "productId is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 || req.Quantity > 99 {
		respondError(h.log, w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	if err := h.store.AddToCart(req.ProductID, req.Quantity); err != nil {
		respondStoreError(h.log, w, err)
		return
	}

	respondJSON(h.log, w, http.StatusCreated, h.cartResponse())
}

// UpdateQuantity handles PATCH /v1/cart/items/{id} with a signed delta. The
// resulting quantity never drops below 1; removal is its own endpoint.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.log, w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.store.UpdateCartQuantity(chi.URLParam(r, "id"), req.Delta); err != nil {
		respondStoreError(h.log, w, err)
		return
	}

	respondJSON(h.log, w, http.StatusOK, h.cartResponse())
}

// RemoveItem handles DELETE /v1/cart/items/{id}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveFromCart(chi.URLParam(r, "id"))
	respondJSON(h.log, w, http.StatusOK, h.cartResponse())
}
