package feed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhase1RoundTrip(t *testing.T) {
	items := []*Item{
		{Type: TypePost, ID: uuid.New(), ActorID: uuid.New(), Source: "followed", SubKey: "photo", Score: 0.8, Hint: &PresentationHint{Layout: "card"}},
		{Type: TypeSuggestion, ID: uuid.New(), ActorID: uuid.New(), Source: "match", Score: 0.6},
	}

	refs := RefsOf(items)
	data, kept, err := EncodePhase1(refs)
	require.NoError(t, err)
	assert.Equal(t, 2, kept)

	decoded, err := DecodePhase1(data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, refs, decoded)

	restored := ItemsOf(decoded)
	require.Len(t, restored, 2)
	assert.Equal(t, items[0].ID, restored[0].ID)
	assert.Equal(t, items[0].Hint.Layout, restored[0].Hint.Layout)
	// Phase-2 hydration is the caller's job
	assert.Nil(t, restored[0].Payload)
}

func TestPhase1PayloadNeverExceedsCap(t *testing.T) {
	refs := make([]ItemRef, 500)
	for i := range refs {
		refs[i] = ItemRef{
			Type:    TypePost,
			ID:      uuid.New(),
			ActorID: uuid.New(),
			Source:  "followed",
			SubKey:  "photo",
			Score:   0.123456789,
			Hint:    &PresentationHint{Layout: "card", Accent: "warm"},
		}
	}

	data, kept, err := EncodePhase1(refs)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(data), MaxPhase1Bytes)
	assert.Less(t, kept, 500)
	assert.Greater(t, kept, 0)

	// Truncation drops whole trailing items: payload still parses and
	// matches the kept prefix exactly.
	decoded, err := DecodePhase1(data)
	require.NoError(t, err)
	require.Len(t, decoded, kept)
	assert.Equal(t, refs[:kept], decoded)
}
