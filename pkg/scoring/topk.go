package scoring

import (
	"sort"

	"github.com/google/uuid"
)

// Entry is one retained candidate in the top-K selection.
type Entry struct {
	ID      uuid.UUID
	Score   float64
	Payload interface{}
}

// TopK is a fixed-capacity bounded min-heap keyed by score. After any
// sequence of pushes it holds exactly min(pushCount, capacity) entries,
// always the highest-scoring ones seen. It knows nothing about
// pruning: callers use the aggregator's upper bound to decide whether
// a candidate is worth scoring at all.
//
// Not safe for concurrent use; every scoring pass owns its own instance.
type TopK struct {
	capacity int
	entries  []Entry
}

func NewTopK(capacity int) *TopK {
	if capacity < 0 {
		capacity = 0
	}
	return &TopK{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity),
	}
}

func (h *TopK) Len() int { return len(h.entries) }

func (h *TopK) Capacity() int { return h.capacity }

// Min returns the lowest retained score, i.e. the bar a new candidate
// must clear once the heap is full.
func (h *TopK) Min() (float64, bool) {
	if len(h.entries) == 0 {
		return 0, false
	}
	return h.entries[0].Score, true
}

// Push inserts the entry when under capacity, or replaces the current
// minimum when the new score beats it. Returns whether the entry was retained.
func (h *TopK) Push(e Entry) bool {
	if h.capacity == 0 {
		return false
	}

	if len(h.entries) < h.capacity {
		h.entries = append(h.entries, e)
		h.siftUp(len(h.entries) - 1)
		return true
	}

	if e.Score <= h.entries[0].Score {
		return false
	}
	h.entries[0] = e
	h.siftDown(0)
	return true
}

// ToArray returns the retained entries sorted descending by score.
// The heap itself is left untouched.
func (h *TopK) ToArray() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func (h *TopK) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.entries[i].Score >= h.entries[parent].Score {
			return
		}
		h.entries[i], h.entries[parent] = h.entries[parent], h.entries[i]
		i = parent
	}
}

func (h *TopK) siftDown(i int) {
	n := len(h.entries)
	for {
		smallest := i
		if l := 2*i + 1; l < n && h.entries[l].Score < h.entries[smallest].Score {
			smallest = l
		}
		if r := 2*i + 2; r < n && h.entries[r].Score < h.entries[smallest].Score {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.entries[i], h.entries[smallest] = h.entries[smallest], h.entries[i]
		i = smallest
	}
}
