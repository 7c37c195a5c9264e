package scoring

// InterestOverlapOperator scores Jaccard similarity over the two users'
// interest key sets. An empty set on either side is a valid, scorable
// state: the overlap is simply 0, never "no signal".
type InterestOverlapOperator struct{}

func (InterestOverlapOperator) Name() string { return "interests" }

func (InterestOverlapOperator) Neutral() float64 { return 0 }

func (InterestOverlapOperator) Score(v *ViewerContext, c *CandidateContext) Result {
	intersection := 0
	for key := range v.Interests {
		if c.Interests[key] {
			intersection++
		}
	}
	union := len(v.Interests) + len(c.Interests) - intersection

	if union == 0 {
		return scored(0, map[string]interface{}{"common": 0})
	}

	return scored(float64(intersection)/float64(union), map[string]interface{}{
		"common": intersection,
		"union":  union,
	})
}

// Cheap: the true Jaccard score is 0 whenever either set is empty,
// otherwise it cannot exceed 1.
func (InterestOverlapOperator) Cheap(v *ViewerContext, c *CandidateContext) float64 {
	if len(v.Interests) == 0 || len(c.Interests) == 0 {
		return 0
	}
	return 1
}
