package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/balapuneethsujay07/zenkira-store/internal/domain"
	"github.com/balapuneethsujay07/zenkira-store/internal/store"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

func respondJSON(log *zap.Logger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("failed to encode response", zap.Error(err))
	}
}

func respondError(log *zap.Logger, w http.ResponseWriter, status int, code, message string) {
	respondJSON(log, w, status, ErrorResponse{Error: message, Code: code})
}

// respondStoreError maps store and validation errors onto HTTP statuses.
func respondStoreError(log *zap.Logger, w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondJSON(log, w, http.StatusBadRequest, ErrorResponse{
			Error: vErr.Message,
			Code:  "validation_error",
			Field: vErr.Field,
		})
	case errors.Is(err, store.ErrProductNotFound):
		respondError(log, w, http.StatusNotFound, "not_found", "product not found")
	case errors.Is(err, store.ErrOrderNotFound):
		respondError(log, w, http.StatusNotFound, "not_found", "order not found")
	case errors.Is(err, store.ErrEmptyCart):
		respondError(log, w, http.StatusConflict, "empty_cart", "cart is empty")
	case errors.Is(err, store.ErrInsufficientStock):
		respondError(log, w, http.StatusConflict, "insufficient_stock", "not enough stock available")
	default:
		log.Error("unexpected store error", zap.Error(err))
		respondError(log, w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
