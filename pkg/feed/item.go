// Package feed assembles a personalized content feed from
// heterogeneous candidate types: the slot-sequence ranker with
// actor-diversity constraints, the seeded tie-breaking generator, and
// the presort segment payload encoding.
package feed

import "github.com/google/uuid"

type ItemType string

const (
	TypePost       ItemType = "post"
	TypeSuggestion ItemType = "suggestion"
	TypeQuestion   ItemType = "question"
)

// PresentationHint tags an item with a layout mode and optional accent
// for the client renderer.
type PresentationHint struct {
	Layout string `json:"layout"`
	Accent string `json:"accent,omitempty"`
}

// Item is one feed entry: a tagged union over post / profile
// suggestion / quiz prompt. Constructed per request or restored from a
// cache segment, never persisted standalone.
type Item struct {
	Type    ItemType
	ID      uuid.UUID
	ActorID uuid.UUID
	// Source is provenance: which provider produced the item
	// (e.g. "followed", "match", "quiz_pool").
	Source string
	// SubKey is the bucket key within the type: media type for posts,
	// source for suggestions. Empty means unbucketed.
	SubKey string
	Score  float64
	Hint   *PresentationHint
	// Payload carries the hydrated entity; nil in the ranked skeleton.
	Payload interface{}
}
