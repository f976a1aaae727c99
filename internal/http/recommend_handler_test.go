package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/balapuneethsujay07/zenkira-store/internal/cache"
	"github.com/balapuneethsujay07/zenkira-store/internal/recommend"
	"github.com/balapuneethsujay07/zenkira-store/internal/store"
)

func TestRecommendations_Success(t *testing.T) {
	st := store.NewMemoryStore(testProducts(), store.Options{})
	c := cache.New(time.Minute)
	t.Cleanup(func() { c.Close() })

	rec := stubRecommender{suggestions: []recommend.Suggestion{
		{Series: "One Piece", MerchType: "Figures", Reason: "High energy."},
	}}
	env := &testEnv{router: NewRouter(st, c, rec, zap.NewNop()), store: st, cache: c}

	recorder := env.do(t, http.MethodPost, "/v1/recommendations", RecommendRequestDTO{Mood: "hyped"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response RecommendResponse
	decode(t, recorder, &response)
	require.Len(t, response.Suggestions, 1)
	assert.Equal(t, "One Piece", response.Suggestions[0].Series)
}

func TestRecommendations_DegradesToEmptyList(t *testing.T) {
	env := setupEnv(t) // stub returns nil, as a failed upstream call would

	recorder := env.do(t, http.MethodPost, "/v1/recommendations", RecommendRequestDTO{Mood: "melancholy"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response RecommendResponse
	decode(t, recorder, &response)
	assert.NotNil(t, response.Suggestions)
	assert.Empty(t, response.Suggestions)
}

func TestRecommendations_RequiresMood(t *testing.T) {
	env := setupEnv(t)

	recorder := env.do(t, http.MethodPost, "/v1/recommendations", RecommendRequestDTO{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
