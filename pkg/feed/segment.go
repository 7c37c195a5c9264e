package feed

import (
	"encoding/json"

	"github.com/google/uuid"
)

// MaxPhase1Bytes caps the precomputed minimal segment payload.
const MaxPhase1Bytes = 8 * 1024

// ItemRef is the lightweight reference stored in a presort segment:
// enough to serve the phase-1 fast path and to reconstruct phase-2
// items for re-hydration, but never full denormalized content.
type ItemRef struct {
	Type    ItemType          `json:"type"`
	ID      uuid.UUID         `json:"id"`
	ActorID uuid.UUID         `json:"actor_id"`
	Source  string            `json:"source,omitempty"`
	SubKey  string            `json:"sub_key,omitempty"`
	Score   float64           `json:"score"`
	Hint    *PresentationHint `json:"hint,omitempty"`
}

type phase1Envelope struct {
	Items []ItemRef `json:"items"`
}

// RefsOf strips ranked items down to cacheable references.
func RefsOf(items []*Item) []ItemRef {
	refs := make([]ItemRef, len(items))
	for i, item := range items {
		refs[i] = ItemRef{
			Type:    item.Type,
			ID:      item.ID,
			ActorID: item.ActorID,
			Source:  item.Source,
			SubKey:  item.SubKey,
			Score:   item.Score,
			Hint:    item.Hint,
		}
	}
	return refs
}

// ItemsOf restores the ranked skeleton from cached references. Payloads
// stay nil; phase-2 callers re-hydrate entity data themselves.
func ItemsOf(refs []ItemRef) []*Item {
	items := make([]*Item, len(refs))
	for i, ref := range refs {
		items[i] = &Item{
			Type:    ref.Type,
			ID:      ref.ID,
			ActorID: ref.ActorID,
			Source:  ref.Source,
			SubKey:  ref.SubKey,
			Score:   ref.Score,
			Hint:    ref.Hint,
		}
	}
	return items
}

// EncodePhase1 marshals refs into the minimal fast-path payload,
// dropping trailing items whole until it fits MaxPhase1Bytes, a
// payload is never cut mid-item. Returns the payload and how many
// items it kept.
func EncodePhase1(refs []ItemRef) ([]byte, int, error) {
	kept := len(refs)
	for {
		data, err := json.Marshal(phase1Envelope{Items: refs[:kept]})
		if err != nil {
			return nil, 0, err
		}
		if len(data) <= MaxPhase1Bytes || kept == 0 {
			return data, kept, nil
		}
		kept--
	}
}

// DecodePhase1 is the read-path counterpart of EncodePhase1.
func DecodePhase1(data []byte) ([]ItemRef, error) {
	var env phase1Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return env.Items, nil
}
