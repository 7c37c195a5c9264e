// Package scoring implements the pairwise compatibility pipeline:
// scoring operators, hard gates, preference classifiers, the weighted
// aggregator with its pruning bound, and the bounded top-K selector.
package scoring

// Result is the outcome of one operator's full scoring pass.
// A nil Score means "no signal"; the aggregator substitutes the
// operator's documented neutral value. A non-nil Score is always in [0,1].
type Result struct {
	Score  *float64
	Reason map[string]interface{}
}

func scored(value float64, reason map[string]interface{}) Result {
	return Result{Score: &value, Reason: reason}
}

func noSignal(reason map[string]interface{}) Result {
	return Result{Reason: reason}
}

// Operator is a single compatibility signal. Score is required;
// the optional capabilities below are exposed via interface assertions.
type Operator interface {
	Name() string

	// Neutral is the value the aggregator substitutes when Score
	// returns no signal. 0.5 for similarity-type signals ("neutral
	// unknown"), 0 for overlap/newness/proximity ("valid absence").
	Neutral() float64

	Score(v *ViewerContext, c *CandidateContext) Result
}

// CheapEstimator is an optional operator capability: a fast,
// conservative estimate used only for pruning. It must never return
// less than any value the full Score pass (or its neutral fallback)
// could contribute.
type CheapEstimator interface {
	Cheap(v *ViewerContext, c *CandidateContext) float64
}

// HardGate excludes a candidate outright. Gates are reserved for safety
// invariants (self-matching, blocked pairs), never for preferences.
type HardGate interface {
	Name() string
	// Gate returns true when the pair must be excluded.
	Gate(v *ViewerContext, c *CandidateContext) bool
}

// PreferenceClassifier flags soft preference compliance on one
// dimension. It never removes a candidate from consideration.
type PreferenceClassifier interface {
	Dimension() string
	// Classify returns true when the candidate is within the viewer's
	// stated preference for this dimension.
	Classify(v *ViewerContext, c *CandidateContext) bool
}
