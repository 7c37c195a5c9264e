package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func interests(keys ...string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

func TestInterestOverlap(t *testing.T) {
	op := InterestOverlapOperator{}

	tests := []struct {
		name      string
		viewer    map[string]bool
		candidate map[string]bool
		want      float64
	}{
		{
			name:      "partial overlap is jaccard",
			viewer:    interests("music", "film"),
			candidate: interests("music", "sports"),
			want:      1.0 / 3.0,
		},
		{
			name:      "identical sets",
			viewer:    interests("music", "film"),
			candidate: interests("film", "music"),
			want:      1,
		},
		{
			name:      "disjoint sets",
			viewer:    interests("music"),
			candidate: interests("sports"),
			want:      0,
		},
		{
			name:      "both empty is zero not nil",
			viewer:    interests(),
			candidate: interests(),
			want:      0,
		},
		{
			name:      "one empty",
			viewer:    interests("music"),
			candidate: interests(),
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := op.Score(&ViewerContext{Interests: tt.viewer}, &CandidateContext{Interests: tt.candidate})

			// Absence of interests is a valid, scorable state
			assert.NotNil(t, res.Score)
			assert.InDelta(t, tt.want, *res.Score, 1e-9)
			assert.GreaterOrEqual(t, *res.Score, 0.0)
			assert.LessOrEqual(t, *res.Score, 1.0)
		})
	}
}

func TestInterestCheapNeverUnderestimates(t *testing.T) {
	op := InterestOverlapOperator{}

	pairs := []struct {
		viewer    map[string]bool
		candidate map[string]bool
	}{
		{interests("a", "b", "c"), interests("a")},
		{interests(), interests("a")},
		{interests("a"), interests("a")},
		{interests(), interests()},
	}

	for _, p := range pairs {
		v := &ViewerContext{Interests: p.viewer}
		c := &CandidateContext{Interests: p.candidate}
		res := op.Score(v, c)
		assert.GreaterOrEqual(t, op.Cheap(v, c), *res.Score)
	}
}
