package scoring

import (
	"math"
	"sort"
)

// TraitSimilarityOperator scores cosine similarity between the two
// users' confidence-weighted trait vectors over their COMMON trait
// keys, remapped to [0,1] and multiplied by a coverage penalty:
//
//	sqrt(commonCount / min(countA, countB))
//
// The square root softens the penalty so a user with many traits is
// never punished harder than one with few common ones. No common
// traits means no signal.
type TraitSimilarityOperator struct{}

func (TraitSimilarityOperator) Name() string { return "traits" }

func (TraitSimilarityOperator) Neutral() float64 { return 0.5 }

func (TraitSimilarityOperator) Score(v *ViewerContext, c *CandidateContext) Result {
	common := commonTraitKeys(v.Traits, c.Traits)
	if len(common) == 0 {
		return noSignal(map[string]interface{}{"common": 0})
	}

	vecV := make([]float64, 0, len(common))
	vecC := make([]float64, 0, len(common))
	for _, key := range common {
		tv, tc := v.Traits[key], c.Traits[key]
		vecV = append(vecV, tv.Value*tv.Confidence)
		vecC = append(vecC, tc.Value*tc.Confidence)
	}

	cos, ok := cosine64(vecV, vecC)
	if !ok {
		return noSignal(map[string]interface{}{"common": len(common), "zero_norm": true})
	}

	coverage := traitCoverage(len(common), len(v.Traits), len(c.Traits))
	score := clamp01(remapCosine(cos) * coverage)

	return scored(score, map[string]interface{}{
		"common":   len(common),
		"coverage": coverage,
	})
}

// Cheap: the remapped cosine never exceeds 1, so the coverage factor
// alone bounds the full score. The 0.5 floor covers the no-signal
// neutral fallback.
func (TraitSimilarityOperator) Cheap(v *ViewerContext, c *CandidateContext) float64 {
	common := commonTraitKeys(v.Traits, c.Traits)
	if len(common) == 0 {
		return 0.5
	}
	return math.Max(traitCoverage(len(common), len(v.Traits), len(c.Traits)), 0.5)
}

func traitCoverage(common, countA, countB int) float64 {
	minCount := countA
	if countB < minCount {
		minCount = countB
	}
	if minCount == 0 {
		return 0
	}
	return math.Sqrt(float64(common) / float64(minCount))
}

func commonTraitKeys(a, b map[string]TraitValue) []string {
	keys := make([]string, 0)
	for key := range a {
		if _, ok := b[key]; ok {
			keys = append(keys, key)
		}
	}
	// Stable order so scores are reproducible run to run
	sort.Strings(keys)
	return keys
}
