package scoring

import (
	"sort"

	"github.com/google/uuid"
)

// RatingQualityOperator scores the viewer-agnostic quality of a
// candidate: the average of their received ratings, neutral 0.5 when
// they have fewer than MinCount ratings.
type RatingQualityOperator struct {
	// MinCount is the minimum received ratings before the average is
	// trusted. Zero means the package default of 3.
	MinCount int
}

func (RatingQualityOperator) Name() string { return "rating_quality" }

func (RatingQualityOperator) Neutral() float64 { return 0.5 }

func (op RatingQualityOperator) minCount() int {
	if op.MinCount > 0 {
		return op.MinCount
	}
	return 3
}

func (op RatingQualityOperator) Score(v *ViewerContext, c *CandidateContext) Result {
	if c.ReceivedRatingCount < op.minCount() {
		return scored(0.5, map[string]interface{}{
			"count":        c.ReceivedRatingCount,
			"below_sample": true,
		})
	}
	return scored(clamp01(c.ReceivedRatingAvg), map[string]interface{}{
		"count": c.ReceivedRatingCount,
	})
}

// RatingFitOperator scores how similarly the two users rate other
// people: cosine similarity between their mean-centered rating vectors
// over commonly rated targets, remapped to [0,1]. Neutral 0.5 when
// either party lacks ratings or they share fewer than two targets.
type RatingFitOperator struct{}

func (RatingFitOperator) Name() string { return "rating_fit" }

func (RatingFitOperator) Neutral() float64 { return 0.5 }

func (RatingFitOperator) Score(v *ViewerContext, c *CandidateContext) Result {
	if len(v.RatingsGiven) == 0 || len(c.RatingsGiven) == 0 {
		return scored(0.5, map[string]interface{}{"common": 0})
	}

	common := make([]uuid.UUID, 0)
	for target := range v.RatingsGiven {
		if _, ok := c.RatingsGiven[target]; ok {
			common = append(common, target)
		}
	}
	if len(common) < 2 {
		return scored(0.5, map[string]interface{}{"common": len(common)})
	}
	sort.Slice(common, func(i, j int) bool { return common[i].String() < common[j].String() })

	vecV := make([]float64, len(common))
	vecC := make([]float64, len(common))
	var meanV, meanC float64
	for i, target := range common {
		vecV[i] = v.RatingsGiven[target]
		vecC[i] = c.RatingsGiven[target]
		meanV += vecV[i]
		meanC += vecC[i]
	}
	meanV /= float64(len(common))
	meanC /= float64(len(common))
	for i := range common {
		vecV[i] -= meanV
		vecC[i] -= meanC
	}

	cos, ok := cosine64(vecV, vecC)
	if !ok {
		// Fully uniform raters carry no preference signal
		return scored(0.5, map[string]interface{}{"common": len(common), "uniform": true})
	}

	return scored(remapCosine(cos), map[string]interface{}{"common": len(common)})
}
