package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func traitsOf(pairs map[string]float64) map[string]TraitValue {
	m := make(map[string]TraitValue, len(pairs))
	for k, v := range pairs {
		m[k] = TraitValue{Value: v, Confidence: 1}
	}
	return m
}

func TestTraitSimilarityCoveragePenalty(t *testing.T) {
	op := TraitSimilarityOperator{}

	// Identical values on the 2 common traits, but the candidate only
	// shares 2 of the viewer's 2 traits while holding 8 total:
	// min(2, 8) = 2 -> coverage sqrt(2/2) = 1, full cosine retained.
	v := &ViewerContext{Traits: traitsOf(map[string]float64{"warmth": 0.8, "openness": 0.4})}
	cTraits := traitsOf(map[string]float64{"warmth": 0.8, "openness": 0.4})
	for _, extra := range []string{"t1", "t2", "t3", "t4", "t5", "t6"} {
		cTraits[extra] = TraitValue{Value: 0.1, Confidence: 1}
	}
	c := &CandidateContext{Traits: cTraits}

	res := op.Score(v, c)
	assert.NotNil(t, res.Score)
	assert.InDelta(t, 1.0, *res.Score, 1e-9)
}

func TestTraitSimilarityPartialCoverage(t *testing.T) {
	op := TraitSimilarityOperator{}

	// 1 common of min(2,3)=2 -> coverage sqrt(0.5); identical value on
	// the common trait gives remapped cosine 1.
	v := &ViewerContext{Traits: traitsOf(map[string]float64{"warmth": 0.6, "humor": 0.2})}
	c := &CandidateContext{Traits: traitsOf(map[string]float64{"warmth": 0.6, "order": -0.3, "calm": 0.9})}

	res := op.Score(v, c)
	assert.NotNil(t, res.Score)
	assert.InDelta(t, math.Sqrt(0.5), *res.Score, 1e-9)
}

func TestTraitSimilarityNoCommonTraits(t *testing.T) {
	op := TraitSimilarityOperator{}

	v := &ViewerContext{Traits: traitsOf(map[string]float64{"warmth": 0.6})}
	c := &CandidateContext{Traits: traitsOf(map[string]float64{"order": 0.3})}

	res := op.Score(v, c)
	assert.Nil(t, res.Score)
	// Neutral fallback must still be covered by the pruning estimate
	assert.GreaterOrEqual(t, op.Cheap(v, c), op.Neutral())
}

func TestTraitCheapBoundsFullScore(t *testing.T) {
	op := TraitSimilarityOperator{}

	cases := []struct {
		viewer    map[string]float64
		candidate map[string]float64
	}{
		{map[string]float64{"a": 0.5, "b": -0.5}, map[string]float64{"a": 0.5, "c": 0.1}},
		{map[string]float64{"a": 1}, map[string]float64{"a": -1}},
		{map[string]float64{"a": 0.2, "b": 0.4, "c": 0.6}, map[string]float64{"a": 0.2, "b": 0.4, "c": 0.6}},
		{map[string]float64{}, map[string]float64{"a": 0.3}},
	}

	for _, tc := range cases {
		v := &ViewerContext{Traits: traitsOf(tc.viewer)}
		c := &CandidateContext{Traits: traitsOf(tc.candidate)}

		res := op.Score(v, c)
		effective := op.Neutral()
		if res.Score != nil {
			effective = *res.Score
		}
		assert.GreaterOrEqual(t, op.Cheap(v, c), effective)
	}
}
