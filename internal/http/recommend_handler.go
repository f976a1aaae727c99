package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/balapuneethsujay07/zenkira-store/internal/recommend"
)

type RecommendHandler struct {
	recommender recommend.Recommender
	log         *zap.Logger
}

func NewRecommendHandler(rec recommend.Recommender, log *zap.Logger) *RecommendHandler {
	return &RecommendHandler{recommender: rec, log: log}
}

type RecommendRequestDTO struct {
	Mood string `json:"mood"`
}

type RecommendResponse struct {
	Suggestions []recommend.Suggestion `json:"suggestions"`
}

// Suggest handles POST /v1/recommendations. The recommender is best-effort:
// an empty list is a valid response, never an error.
func (h *RecommendHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.log, w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Mood == "" {
		respondError(h.log, w, http.StatusBadRequest, "invalid_mood", "mood is required")
		return
	}

	suggestions := h.recommender.Suggest(r.Context(), req.Mood)
	if suggestions == nil {
		suggestions = []recommend.Suggestion{}
	}
	respondJSON(h.log, w, http.StatusOK, RecommendResponse{Suggestions: suggestions})
}
