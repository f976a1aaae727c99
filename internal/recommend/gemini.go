package recommend

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"
)

const defaultModel = "gemini-3-flash-preview"

// Gemini implements Recommender on top of the Gemini API, asking for a JSON
// payload constrained by a response schema.
type Gemini struct {
	client *genai.Client
	model  string
	log    *zap.Logger
	sfg    singleflight.Group // collapses concurrent lookups for the same mood
}

// NewGemini creates a Gemini-backed recommender.
func NewGemini(ctx context.Context, apiKey, model string, log *zap.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  model,
		log:    log,
	}, nil
}

// Suggest asks the model for three series/merch pairings matching the mood.
// Any failure is logged and returned as an empty list.
func (g *Gemini) Suggest(ctx context.Context, mood string) []Suggestion {
	v, _, _ := g.sfg.Do(mood, func() (interface{}, error) {
		return g.fetch(ctx, mood), nil
	})
	return v.([]Suggestion)
}

func (g *Gemini) fetch(ctx context.Context, mood string) []Suggestion {
	prompt := fmt.Sprintf(
		"Based on a mood described as %q, suggest 3 anime series and 3 types of merchandise "+
			"(e.g., Figures, Hoodies, Keychains) that would match. Return the result in JSON format.",
		mood,
	)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   suggestionSchema(),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		g.log.Warn("recommendation request failed", zap.Error(err))
		return nil
	}

	suggestions, err := parseSuggestions([]byte(resp.Text()))
	if err != nil {
		g.log.Warn("recommendation response malformed", zap.Error(err))
		return nil
	}
	return suggestions
}

func suggestionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"suggestions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"series":    {Type: genai.TypeString},
						"merchType": {Type: genai.TypeString},
						"reason":    {Type: genai.TypeString},
					},
					Required: []string{"series", "merchType", "reason"},
				},
			},
		},
		Required: []string{"suggestions"},
	}
}

func parseSuggestions(data []byte) ([]Suggestion, error) {
	var payload struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return payload.Suggestions, nil
}
