package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuggestions(t *testing.T) {
	data := []byte(`{"suggestions":[
		{"series":"One Piece","merchType":"Figures","reason":"High-energy adventure matches the mood."},
		{"series":"Frieren","merchType":"Keychains","reason":"Calm and reflective."}
	]}`)

	got, err := parseSuggestions(data)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "One Piece", got[0].Series)
	assert.Equal(t, "Keychains", got[1].MerchType)
}

func TestParseSuggestions_EmptyObject(t *testing.T) {
	got, err := parseSuggestions([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseSuggestions_Malformed(t *testing.T) {
	_, err := parseSuggestions([]byte(`not json`))
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	assert.Nil(t, Nop{}.Suggest(context.Background(), "hyped"))
}

func TestNewGemini_RequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "", nil)
	assert.Error(t, err)
}
