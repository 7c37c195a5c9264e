package scoring

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTopKCapacityOne(t *testing.T) {
	h := NewTopK(1)
	for _, s := range []float64{0.3, 0.9, 0.5} {
		h.Push(Entry{ID: uuid.New(), Score: s})
	}

	out := h.ToArray()
	assert.Len(t, out, 1)
	assert.Equal(t, 0.9, out[0].Score)
}

func TestTopKRetainsHighestUnderAdversarialOrder(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		cap    int
		want   []float64
	}{
		{
			name:   "ascending insertion",
			scores: []float64{0.1, 0.2, 0.3, 0.4, 0.5},
			cap:    3,
			want:   []float64{0.5, 0.4, 0.3},
		},
		{
			name:   "descending insertion",
			scores: []float64{0.5, 0.4, 0.3, 0.2, 0.1},
			cap:    3,
			want:   []float64{0.5, 0.4, 0.3},
		},
		{
			name:   "fewer pushes than capacity",
			scores: []float64{0.7, 0.2},
			cap:    10,
			want:   []float64{0.7, 0.2},
		},
		{
			name:   "zero capacity retains nothing",
			scores: []float64{0.9},
			cap:    0,
			want:   []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTopK(tt.cap)
			for _, s := range tt.scores {
				h.Push(Entry{ID: uuid.New(), Score: s})
			}

			out := h.ToArray()
			got := make([]float64, len(out))
			for i, e := range out {
				got[i] = e.Score
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTopKMatchesFullSortForRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		capacity := 1 + rng.Intn(20)
		pushes := rng.Intn(200)

		h := NewTopK(capacity)
		scores := make([]float64, pushes)
		for i := range scores {
			scores[i] = rng.Float64()
			h.Push(Entry{ID: uuid.New(), Score: scores[i]})
		}

		sort.Sort(sort.Reverse(sort.Float64Slice(scores)))
		wantLen := pushes
		if capacity < wantLen {
			wantLen = capacity
		}

		out := h.ToArray()
		if !assert.Len(t, out, wantLen, "trial %d cap=%d pushes=%d", trial, capacity, pushes) {
			continue
		}
		for i, e := range out {
			assert.Equal(t, scores[i], e.Score, "trial %d position %d", trial, i)
		}
	}
}

func TestTopKMinTracksTheBar(t *testing.T) {
	h := NewTopK(2)

	_, ok := h.Min()
	assert.False(t, ok)

	h.Push(Entry{Score: 0.8})
	h.Push(Entry{Score: 0.3})
	min, ok := h.Min()
	assert.True(t, ok)
	assert.Equal(t, 0.3, min)

	// Below the bar: rejected, bar unchanged
	assert.False(t, h.Push(Entry{Score: 0.2}))
	min, _ = h.Min()
	assert.Equal(t, 0.3, min)

	// Above the bar: replaces the minimum
	assert.True(t, h.Push(Entry{Score: 0.5}))
	min, _ = h.Min()
	assert.Equal(t, 0.5, min)
}
