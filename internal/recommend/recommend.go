// Package recommend asks an external model for merch suggestions matching a
// mood. It is best-effort enrichment: every failure degrades to an empty
// suggestion list and nothing in the cart or checkout path depends on it.
package recommend

import "context"

// Suggestion pairs an anime series with a merch type and the reason it fits
// the requested mood.
type Suggestion struct {
	Series    string `json:"series"`
	MerchType string `json:"merchType"`
	Reason    string `json:"reason"`
}

// Recommender produces suggestions for a free-text mood. Implementations
// must never return an error to callers; failures yield an empty slice.
type Recommender interface {
	Suggest(ctx context.Context, mood string) []Suggestion
}

// Nop is the recommender used when no API key is configured.
type Nop struct{}

func (Nop) Suggest(context.Context, string) []Suggestion { return nil }
