package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balapuneethsujay07/zenkira-store/internal/domain"
)

func TestLogin_User(t *testing.T) {
	env := setupEnv(t)

	recorder := env.do(t, http.MethodPost, "/v1/auth/login", LoginRequestDTO{Email: "a@b.c", Password: "x", Role: domain.RoleUser})
	require.Equal(t, http.StatusOK, recorder.Code)

	var auth domain.AuthState
	decode(t, recorder, &auth)
	assert.True(t, auth.IsLoggedIn)
	assert.Equal(t, domain.RoleUser, auth.Role)
	require.NotNil(t, auth.User)
	assert.Equal(t, "Operative_Neo", auth.User.Name)
}

func TestLogin_AdminCredentialCheck(t *testing.T) {
	env := setupEnv(t)

	recorder := env.do(t, http.MethodPost, "/v1/auth/login", LoginRequestDTO{Email: "wrong", Password: "wrong", Role: domain.RoleAdmin})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, env.store.Auth().IsLoggedIn)

	recorder = env.do(t, http.MethodPost, "/v1/auth/login", LoginRequestDTO{Email: "ZENKIRA", Password: "1234", Role: domain.RoleAdmin})
	require.Equal(t, http.StatusOK, recorder.Code)

	var auth domain.AuthState
	decode(t, recorder, &auth)
	assert.Equal(t, domain.RoleAdmin, auth.Role)
	require.NotNil(t, auth.User)
	assert.Equal(t, 999999, auth.User.LoyaltyPoints)
}

func TestLogin_Validation(t *testing.T) {
	env := setupEnv(t)

	recorder := env.do(t, http.MethodPost, "/v1/auth/login", LoginRequestDTO{Role: "overlord"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = env.do(t, http.MethodPost, "/v1/auth/login", LoginRequestDTO{Email: "a@b.c"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLogoutAndMe(t *testing.T) {
	env := setupEnv(t)
	env.loginAs(t, domain.RoleUser)

	recorder := env.do(t, http.MethodGet, "/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var auth domain.AuthState
	decode(t, recorder, &auth)
	assert.True(t, auth.IsLoggedIn)

	recorder = env.do(t, http.MethodPost, "/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.do(t, http.MethodGet, "/v1/auth/me", nil)
	auth = domain.AuthState{}
	decode(t, recorder, &auth)
	assert.False(t, auth.IsLoggedIn)
	assert.Nil(t, auth.User)
}
