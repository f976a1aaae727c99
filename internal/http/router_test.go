package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/balapuneethsujay07/zenkira-store/internal/cache"
	"github.com/balapuneethsujay07/zenkira-store/internal/domain"
	"github.com/balapuneethsujay07/zenkira-store/internal/recommend"
	"github.com/balapuneethsujay07/zenkira-store/internal/store"
)

type stubRecommender struct {
	suggestions []recommend.Suggestion
}

func (s stubRecommender) Suggest(context.Context, string) []recommend.Suggestion {
	return s.suggestions
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Mitsuri Figure", Series: "Demon Slayer", Category: domain.CategoryFigures, Price: 200, Stock: 5, IsFeatured: true},
		{ID: "p2", Name: "Gear 5 Hoodie", Series: "One Piece", Category: domain.CategoryApparel, Price: 100, Stock: 10},
		{ID: "p3", Name: "Enma Replica", Series: "One Piece", Category: domain.CategoryCollectibles, Price: 2500, Stock: 3},
	}
}

type testEnv struct {
	router chi.Router
	store  *store.MemoryStore
	cache  *cache.Cache
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	st := store.NewMemoryStore(testProducts(), store.Options{})
	c := cache.New(time.Minute)
	t.Cleanup(func() { c.Close() })

	router := NewRouter(st, c, stubRecommender{}, zap.NewNop())
	return &testEnv{router: router, store: st, cache: c}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, request)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(target))
}

func (e *testEnv) loginAs(t *testing.T, role domain.UserRole) {
	t.Helper()

	body := map[string]string{"email": "user@zenkira.net", "password": "hunter2", "role": string(role)}
	if role == domain.RoleAdmin {
		body["email"] = "ZENKIRA"
		body["password"] = "1234"
	}
	recorder := e.do(t, http.MethodPost, "/v1/auth/login", body)
	require.Equal(t, http.StatusOK, recorder.Code)
}
