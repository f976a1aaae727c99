package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/balapuneethsujay07/zenkira-store/internal/domain"
	"github.com/balapuneethsujay07/zenkira-store/internal/store"
)

// Hardcoded demo credentials for the admin role. This mirrors the mock login
// screen; there is no real credential store.
const (
	adminEmail    = "ZENKIRA"
	adminPassword = "1234"
)

type AuthHandler struct {
	store store.Store
	log   *zap.Logger
}

func NewAuthHandler(s store.Store, log *zap.Logger) *AuthHandler {
	return &AuthHandler{store: s, log: log}
}

type LoginRequestDTO struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     domain.UserRole `json:"role"`
}

// Login handles POST /v1/auth/login. Users log in with any non-empty
// credentials; the admin role requires the fixed demo pair.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.log, w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Role == "" {
		req.Role = domain.RoleUser
	}
	if !req.Role.Valid() {
		respondError(h.log, w, http.StatusBadRequest, "invalid_role", "role must be user or admin")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(h.log, w, http.StatusBadRequest, "invalid_credentials", "email and password are required")
		return
	}
	if req.Role == domain.RoleAdmin && (req.Email != adminEmail || req.Password != adminPassword) {
		respondError(h.log, w, http.StatusUnauthorized, "invalid_credentials", "admin credentials rejected")
		return
	}

	auth := h.store.Login(req.Role)
	h.log.Info("session started", zap.String("role", string(req.Role)))
	respondJSON(h.log, w, http.StatusOK, auth)
}

// Logout handles POST /v1/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout()
	respondJSON(h.log, w, http.StatusOK, map[string]string{"message": "session terminated"})
}

// Me handles GET /v1/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	respondJSON(h.log, w, http.StatusOK, h.store.Auth())
}
