package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/balapuneethsujay07/zenkira-store/internal/domain"
	"github.com/balapuneethsujay07/zenkira-store/internal/store"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestIDMiddleware adds a unique request ID to each request.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%d", time.Now().UnixNano())
		}

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// SessionAuth gates routes on the store's session state. The login flow is a
// demo mock, so "authentication" here is just checking that someone hit the
// login endpoint first.
type SessionAuth struct {
	store store.Store
}

func NewSessionAuth(s store.Store) *SessionAuth {
	return &SessionAuth{store: s}
}

// RequireLogin rejects requests when no session is active.
func (a *SessionAuth) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.store.Auth().IsLoggedIn {
			deny(w, http.StatusUnauthorized, "unauthenticated", "login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests unless the session holds the admin role.
func (a *SessionAuth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := a.store.Auth()
		if !auth.IsLoggedIn {
			deny(w, http.StatusUnauthorized, "unauthenticated", "login required")
			return
		}
		if auth.Role != domain.RoleAdmin {
			deny(w, http.StatusForbidden, "permission_denied", "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func deny(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q,"code":%q}`, message, code)
}
