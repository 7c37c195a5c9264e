package scoring

// Weights maps operator names to their contribution weight. Operators
// absent from the map contribute nothing.
type Weights map[string]float64

// Aggregate is the full scoring outcome for one (viewer, candidate) pair.
type Aggregate struct {
	// Excluded is set when a hard gate fired; no score exists then.
	Excluded bool
	GatedBy  string

	Total      float64
	Components map[string]float64
	Compliance map[string]bool
	// TierA is true when every registered classifier reported
	// compliant. Tier B candidates stay eligible, only flagged.
	TierA   bool
	Reasons map[string]interface{}

	// UpperBound is guaranteed >= Total for the same pair.
	UpperBound float64
}

// Compliant reports the compliance flag for one dimension, defaulting
// to compliant when no classifier was registered for it.
func (a *Aggregate) Compliant(dimension string) bool {
	if v, ok := a.Compliance[dimension]; ok {
		return v
	}
	return true
}

// Aggregator runs hard gates, preference classifiers and weighted
// scoring operators over a pair of contexts. It is stateless across
// calls and safe for concurrent use.
type Aggregator struct {
	gates       []HardGate
	classifiers []PreferenceClassifier
	operators   []Operator
	weights     Weights
}

func NewAggregator(gates []HardGate, classifiers []PreferenceClassifier, operators []Operator, weights Weights) *Aggregator {
	return &Aggregator{
		gates:       gates,
		classifiers: classifiers,
		operators:   operators,
		weights:     weights,
	}
}

// Gate runs the hard gates and returns the name of the first one that
// fired, if any.
func (a *Aggregator) Gate(v *ViewerContext, c *CandidateContext) (string, bool) {
	for _, g := range a.gates {
		if g.Gate(v, c) {
			return g.Name(), true
		}
	}
	return "", false
}

// UpperBound computes the pruning bound: cheap estimate x weight where
// an operator exposes one, full weight otherwise (a ceiling score of
// 1.0 is assumed, which is safe but possibly loose). The result is always >= the
// Total a subsequent Evaluate would produce.
func (a *Aggregator) UpperBound(v *ViewerContext, c *CandidateContext) float64 {
	var bound float64
	for _, op := range a.operators {
		weight := a.weights[op.Name()]
		if weight == 0 {
			continue
		}
		if ce, ok := op.(CheapEstimator); ok {
			bound += ce.Cheap(v, c) * weight
		} else {
			bound += weight
		}
	}
	return bound
}

// Evaluate runs the full pipeline: gates, classifiers, then every
// scoring operator. Missing signals resolve to the operator's neutral
// value; per-operator metadata is merged into the reasons payload.
func (a *Aggregator) Evaluate(v *ViewerContext, c *CandidateContext) *Aggregate {
	if name, gated := a.Gate(v, c); gated {
		return &Aggregate{Excluded: true, GatedBy: name}
	}

	agg := &Aggregate{
		Components: make(map[string]float64, len(a.operators)),
		Compliance: make(map[string]bool, len(a.classifiers)),
		Reasons:    make(map[string]interface{}),
		TierA:      true,
		UpperBound: a.UpperBound(v, c),
	}

	for _, cl := range a.classifiers {
		ok := cl.Classify(v, c)
		agg.Compliance[cl.Dimension()] = ok
		if !ok {
			agg.TierA = false
		}
	}

	for _, op := range a.operators {
		weight := a.weights[op.Name()]
		if weight == 0 {
			continue
		}

		res := op.Score(v, c)
		value := op.Neutral()
		if res.Score != nil {
			value = *res.Score
		}

		agg.Components[op.Name()] = value
		agg.Total += value * weight
		if res.Reason != nil {
			agg.Reasons[op.Name()] = res.Reason
		}
	}

	return agg
}
