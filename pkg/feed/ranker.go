package feed

import (
	"sort"

	"github.com/google/uuid"
)

// Slot is one position in the configured slot sequence.
type Slot struct {
	Type ItemType
	// SubKey filters the slot to a typed bucket (media type or
	// source). Empty pulls from the type's "any" bucket directly.
	SubKey string
	// Count repeats the slot; 0 is treated as 1.
	Count int
	// Hint overrides the item's own presentation hint when set.
	Hint *PresentationHint
}

// RankerConfig drives one ranking pass.
type RankerConfig struct {
	Sequence []Slot
	// ActorCap is the maximum emissions per actor in one response,
	// enforced uniformly across item types. <=0 means unlimited.
	ActorCap int
	// Seed makes suggestion tie-breaking deterministic: identical
	// (seed, candidate set) pairs produce identical output. Nil keeps
	// the input order, which is whatever the providers produced.
	Seed *uint32
}

// Ranker interleaves pre-bucketed candidates per the slot sequence.
// Single-pass, synchronous, no shared state; construct one per request.
type Ranker struct {
	cfg RankerConfig
}

func NewRanker(cfg RankerConfig) *Ranker {
	return &Ranker{cfg: cfg}
}

type bucket struct {
	items  []*Item
	cursor int
}

// next pulls the first unused, cap-compliant item at or after the
// cursor. The cursor only advances past items consumed from THIS
// bucket; items consumed elsewhere (the any-bucket aliases every typed
// bucket's items) are skipped via the used set.
func (b *bucket) next(used map[*Item]bool, actorCount map[string]int, actorCap int) *Item {
	for b.cursor < len(b.items) {
		item := b.items[b.cursor]
		if used[item] {
			b.cursor++
			continue
		}
		// Actor-less items (quiz prompts) are exempt from the cap.
		if actorCap > 0 && item.ActorID != uuid.Nil && actorCount[item.ActorID.String()] >= actorCap {
			b.cursor++
			continue
		}
		b.cursor++
		return item
	}
	return nil
}

// Rank produces up to count items. It walks the slot sequence
// circularly, pulling from each slot's typed bucket with fallback to
// the type-wide bucket, and stops when the request is filled or a full
// pass produced nothing.
func (r *Ranker) Rank(candidates []*Item, count int) []*Item {
	sequence := r.expandSequence()
	if count <= 0 || len(sequence) == 0 {
		return []*Item{}
	}

	buckets := r.buildBuckets(candidates)

	out := make([]*Item, 0, count)
	used := make(map[*Item]bool, len(candidates))
	actorCount := make(map[string]int)

	idle := 0
	for slotIdx := 0; len(out) < count && idle < len(sequence); slotIdx++ {
		slot := sequence[slotIdx%len(sequence)]

		item := r.pull(buckets, slot, used, actorCount)
		if item == nil {
			idle++
			continue
		}
		idle = 0

		used[item] = true
		if item.ActorID != uuid.Nil {
			actorCount[item.ActorID.String()]++
		}

		emitted := *item
		if slot.Hint != nil {
			emitted.Hint = slot.Hint
		}
		out = append(out, &emitted)
	}

	return out
}

func (r *Ranker) pull(buckets map[ItemType]map[string]*bucket, slot Slot, used map[*Item]bool, actorCount map[string]int) *Item {
	typed := buckets[slot.Type]
	if typed == nil {
		return nil
	}

	if slot.SubKey != "" {
		if b := typed[slot.SubKey]; b != nil {
			if item := b.next(used, actorCount, r.cfg.ActorCap); item != nil {
				return item
			}
		}
	}
	// Typed bucket exhausted (or slot untyped): fall back to "any"
	if b := typed[""]; b != nil {
		return b.next(used, actorCount, r.cfg.ActorCap)
	}
	return nil
}

func (r *Ranker) expandSequence() []Slot {
	out := make([]Slot, 0, len(r.cfg.Sequence))
	for _, slot := range r.cfg.Sequence {
		n := slot.Count
		if n <= 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			out = append(out, slot)
		}
	}
	return out
}

// buildBuckets orders candidates per type and sub-key. Suggestions are
// sorted descending by score with seeded tie-breaking among equals;
// other types keep provider order. Every type also gets an "any"
// bucket aliasing all of its items.
func (r *Ranker) buildBuckets(candidates []*Item) map[ItemType]map[string]*bucket {
	byType := make(map[ItemType][]*Item)
	for _, item := range candidates {
		byType[item.Type] = append(byType[item.Type], item)
	}

	if suggestions := byType[TypeSuggestion]; len(suggestions) > 1 {
		r.orderSuggestions(suggestions)
	}

	buckets := make(map[ItemType]map[string]*bucket, len(byType))
	for typ, items := range byType {
		typed := map[string]*bucket{"": {items: items}}
		for _, item := range items {
			if item.SubKey == "" {
				continue
			}
			sub, ok := typed[item.SubKey]
			if !ok {
				sub = &bucket{}
				typed[item.SubKey] = sub
			}
			sub.items = append(sub.items, item)
		}
		buckets[typ] = typed
	}
	return buckets
}

func (r *Ranker) orderSuggestions(suggestions []*Item) {
	tiebreak := make(map[*Item]float64, len(suggestions))
	if r.cfg.Seed != nil {
		rng := NewRand(*r.cfg.Seed)
		// Assigned in input order so the stream lines up for identical
		// candidate sets
		for _, item := range suggestions {
			tiebreak[item] = rng.Float64()
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return tiebreak[suggestions[i]] < tiebreak[suggestions[j]]
	})
}
