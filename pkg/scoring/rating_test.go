package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRatingQuality(t *testing.T) {
	op := RatingQualityOperator{}

	tests := []struct {
		name  string
		avg   float64
		count int
		want  float64
	}{
		{"below minimum sample is neutral", 0.95, 2, 0.5},
		{"at minimum sample trusts average", 0.8, 3, 0.8},
		{"zero ratings is neutral", 0, 0, 0.5},
		{"large sample", 0.42, 120, 0.42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &CandidateContext{ReceivedRatingAvg: tt.avg, ReceivedRatingCount: tt.count}
			res := op.Score(&ViewerContext{}, c)
			assert.NotNil(t, res.Score)
			assert.InDelta(t, tt.want, *res.Score, 1e-9)
		})
	}
}

func TestRatingFit(t *testing.T) {
	op := RatingFitOperator{}
	t1, t2, t3 := uuid.New(), uuid.New(), uuid.New()

	t.Run("same preference direction scores high", func(t *testing.T) {
		v := &ViewerContext{RatingsGiven: map[uuid.UUID]float64{t1: 0.9, t2: 0.2, t3: 0.6}}
		c := &CandidateContext{RatingsGiven: map[uuid.UUID]float64{t1: 0.8, t2: 0.1, t3: 0.5}}

		res := op.Score(v, c)
		assert.NotNil(t, res.Score)
		// Centered vectors are parallel -> cosine 1 -> score 1
		assert.InDelta(t, 1.0, *res.Score, 1e-6)
	})

	t.Run("opposite preference direction scores low", func(t *testing.T) {
		v := &ViewerContext{RatingsGiven: map[uuid.UUID]float64{t1: 0.9, t2: 0.1}}
		c := &CandidateContext{RatingsGiven: map[uuid.UUID]float64{t1: 0.1, t2: 0.9}}

		res := op.Score(v, c)
		assert.NotNil(t, res.Score)
		assert.InDelta(t, 0.0, *res.Score, 1e-6)
	})

	t.Run("no ratings on either side is neutral", func(t *testing.T) {
		res := op.Score(&ViewerContext{}, &CandidateContext{RatingsGiven: map[uuid.UUID]float64{t1: 0.5}})
		assert.NotNil(t, res.Score)
		assert.Equal(t, 0.5, *res.Score)
	})

	t.Run("single common target is neutral", func(t *testing.T) {
		v := &ViewerContext{RatingsGiven: map[uuid.UUID]float64{t1: 0.9}}
		c := &CandidateContext{RatingsGiven: map[uuid.UUID]float64{t1: 0.9}}

		res := op.Score(v, c)
		assert.NotNil(t, res.Score)
		assert.Equal(t, 0.5, *res.Score)
	})

	t.Run("uniform raters carry no signal", func(t *testing.T) {
		v := &ViewerContext{RatingsGiven: map[uuid.UUID]float64{t1: 0.7, t2: 0.7}}
		c := &CandidateContext{RatingsGiven: map[uuid.UUID]float64{t1: 0.3, t2: 0.9}}

		res := op.Score(v, c)
		assert.NotNil(t, res.Score)
		assert.Equal(t, 0.5, *res.Score)
	})
}
