package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/balapuneethsujay07/zenkira-store/internal/domain"
	"github.com/balapuneethsujay07/zenkira-store/internal/store"
)

// Shipping is free above the threshold, flat below it. Shipping is a display
// figure only; order totals stay pure sums of the line items.
const (
	freeShippingThreshold = 2000
	flatShippingFee       = 250
)

type OrderHandler struct {
	store store.Store
	log   *zap.Logger
}

func NewOrderHandler(s store.Store, log *zap.Logger) *OrderHandler {
	return &OrderHandler{store: s, log: log}
}

type CheckoutRequestDTO struct {
	PaymentMethod string `json:"paymentMethod"`
}

type CheckoutResponse struct {
	Order      domain.Order `json:"order"`
	Subtotal   int64        `json:"subtotal"`
	Shipping   int64        `json:"shipping"`
	GrandTotal int64        `json:"grandTotal"`
}

// ShippingFor returns the shipping fee for a given subtotal.
func ShippingFor(subtotal int64) int64 {
	if subtotal > freeShippingThreshold {
		return 0
	}
	return flatShippingFee
}

// Checkout handles POST /v1/checkout.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.log, w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.PaymentMethod == "" {
		respondError(h.log, w, http.StatusBadRequest, "invalid_payment_method", "paymentMethod is required")
		return
	}

	order, err := h.store.PlaceOrder(req.PaymentMethod)
	if err != nil {
		respondStoreError(h.log, w, err)
		return
	}

	shipping := ShippingFor(order.Total)
	h.log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int64("total", order.Total),
		zap.String("request_id", getRequestID(r.Context())),
	)

	respondJSON(h.log, w, http.StatusCreated, CheckoutResponse{
		Order:      order,
		Subtotal:   order.Total,
		Shipping:   shipping,
		GrandTotal: order.Total + shipping,
	})
}

// List handles GET /v1/orders, newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders := h.store.Orders()
	if orders == nil {
		orders = []domain.Order{}
	}
	respondJSON(h.log, w, http.StatusOK, map[string]interface{}{"orders": orders})
}

// Get handles GET /v1/orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.store.Order(chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(h.log, w, err)
		return
	}
	respondJSON(h.log, w, http.StatusOK, order)
}
