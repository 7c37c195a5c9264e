package scoring

import "time"

// NewnessOperator scores how recently the candidate joined:
// clamp(1 - accountAgeDays/window). Gives fresh profiles a discovery
// boost; long-standing accounts simply score 0 (valid absence, not
// "unknown").
type NewnessOperator struct {
	// WindowDays is the age at which the boost fully decays.
	// Zero means the package default of 30.
	WindowDays int

	// Now is injectable for tests. Nil means time.Now.
	Now func() time.Time
}

func (NewnessOperator) Name() string { return "newness" }

func (NewnessOperator) Neutral() float64 { return 0 }

func (op NewnessOperator) windowDays() float64 {
	if op.WindowDays > 0 {
		return float64(op.WindowDays)
	}
	return 30
}

func (op NewnessOperator) now() time.Time {
	if op.Now != nil {
		return op.Now()
	}
	return time.Now()
}

func (op NewnessOperator) Score(v *ViewerContext, c *CandidateContext) Result {
	if c.CreatedAt.IsZero() {
		return scored(0, nil)
	}
	ageDays := op.now().Sub(c.CreatedAt).Hours() / 24
	if ageDays < 0 {
		ageDays = 0
	}
	return scored(clamp01(1-ageDays/op.windowDays()), map[string]interface{}{
		"age_days": ageDays,
	})
}

// Cheap: the full computation is a subtraction, the estimate is exact.
func (op NewnessOperator) Cheap(v *ViewerContext, c *CandidateContext) float64 {
	res := op.Score(v, c)
	if res.Score == nil {
		return 0
	}
	return *res.Score
}
