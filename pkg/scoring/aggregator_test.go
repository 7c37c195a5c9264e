package scoring

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOperator lets tests pin arbitrary scores and cheap estimates.
type stubOperator struct {
	name    string
	neutral float64
	score   *float64
	cheap   *float64
}

func (s stubOperator) Name() string     { return s.name }
func (s stubOperator) Neutral() float64 { return s.neutral }
func (s stubOperator) Score(v *ViewerContext, c *CandidateContext) Result {
	return Result{Score: s.score}
}

type stubCheapOperator struct{ stubOperator }

func (s stubCheapOperator) Cheap(v *ViewerContext, c *CandidateContext) float64 {
	return *s.cheap
}

func defaultOperators() []Operator {
	return []Operator{
		QuizSimilarityOperator{},
		TraitSimilarityOperator{},
		InterestOverlapOperator{},
		RatingQualityOperator{},
		RatingFitOperator{},
		ProximityOperator{},
	}
}

func defaultWeights() Weights {
	return Weights{
		"quiz":           0.25,
		"traits":         0.20,
		"interests":      0.20,
		"rating_quality": 0.10,
		"rating_fit":     0.10,
		"proximity":      0.15,
	}
}

func TestAggregatorGateExcludes(t *testing.T) {
	agg := NewAggregator(
		[]HardGate{SelfMatchGate{}, BlockedPairGate{}},
		nil,
		defaultOperators(),
		defaultWeights(),
	)

	self := uuid.New()
	out := agg.Evaluate(&ViewerContext{UserID: self}, &CandidateContext{UserID: self})
	assert.True(t, out.Excluded)
	assert.Equal(t, "self_match", out.GatedBy)

	blocked := uuid.New()
	out = agg.Evaluate(
		&ViewerContext{UserID: uuid.New(), Blocked: map[uuid.UUID]bool{blocked: true}},
		&CandidateContext{UserID: blocked},
	)
	assert.True(t, out.Excluded)
	assert.Equal(t, "blocked_pair", out.GatedBy)
}

func TestAggregatorNonCompliantStaysScored(t *testing.T) {
	agg := NewAggregator(
		[]HardGate{SelfMatchGate{}},
		[]PreferenceClassifier{GenderClassifier{}, AgeClassifier{}, DistanceClassifier{}},
		defaultOperators(),
		defaultWeights(),
	)

	v := &ViewerContext{
		UserID: uuid.New(),
		Prefs:  PreferencesContext{Genders: []string{"f"}, AgeMin: 25, AgeMax: 35},
	}
	c := &CandidateContext{UserID: uuid.New(), Gender: "m", Age: 45}

	out := agg.Evaluate(v, c)
	require.False(t, out.Excluded)
	assert.False(t, out.TierA)
	assert.False(t, out.Compliance["gender"])
	assert.False(t, out.Compliance["age"])
	assert.True(t, out.Compliance["distance"]) // no coords -> compliant
	// Unregistered dimensions default to compliant
	assert.True(t, out.Compliant("height"))
}

func TestAggregatorNeutralDefaults(t *testing.T) {
	// Viewer and candidate share no quiz data, no traits, and both have
	// empty interest sets.
	agg := NewAggregator(nil, nil, defaultOperators(), defaultWeights())

	out := agg.Evaluate(
		&ViewerContext{UserID: uuid.New(), CreatedAt: time.Now()},
		&CandidateContext{UserID: uuid.New(), CreatedAt: time.Now()},
	)
	require.False(t, out.Excluded)

	// "Neutral unknown" vs "valid absence"
	assert.Equal(t, 0.5, out.Components["quiz"])
	assert.Equal(t, 0.5, out.Components["traits"])
	assert.Equal(t, 0.0, out.Components["interests"])
	assert.Equal(t, 0.0, out.Components["proximity"])
	assert.Equal(t, 0.5, out.Components["rating_quality"])
	assert.Equal(t, 0.5, out.Components["rating_fit"])
}

func TestAggregatorUpperBoundNeverUnderestimates(t *testing.T) {
	t.Run("real operators over randomized contexts", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		agg := NewAggregator(nil, nil, defaultOperators(), defaultWeights())

		for trial := 0; trial < 100; trial++ {
			v, c := randomContextPair(rng)
			out := agg.Evaluate(v, c)
			require.False(t, out.Excluded)
			assert.GreaterOrEqual(t, out.UpperBound+1e-9, out.Total, "trial %d", trial)
		}
	})

	t.Run("randomized stub operators and weights", func(t *testing.T) {
		rng := rand.New(rand.NewSource(23))

		for trial := 0; trial < 200; trial++ {
			ops := make([]Operator, 0)
			weights := Weights{}

			for i := 0; i < 1+rng.Intn(6); i++ {
				name := fmt.Sprintf("op%d", i)
				weights[name] = rng.Float64() * 2

				score := rng.Float64()
				stub := stubOperator{name: name, neutral: 0.5}
				if rng.Float64() < 0.8 {
					stub.score = &score
				} // else nil -> neutral fallback

				if rng.Float64() < 0.5 {
					// A valid cheap estimate bounds both outcomes
					effective := stub.neutral
					if stub.score != nil {
						effective = *stub.score
					}
					cheap := effective + rng.Float64()*(1-effective)
					stub.cheap = &cheap
					ops = append(ops, stubCheapOperator{stubOperator: stub})
				} else {
					ops = append(ops, stub)
				}
			}

			agg := NewAggregator(nil, nil, ops, weights)
			out := agg.Evaluate(&ViewerContext{}, &CandidateContext{})
			assert.GreaterOrEqual(t, out.UpperBound+1e-9, out.Total, "trial %d", trial)
		}
	})
}

func randomContextPair(rng *rand.Rand) (*ViewerContext, *CandidateContext) {
	randInterests := func() map[string]bool {
		m := make(map[string]bool)
		for i := 0; i < rng.Intn(6); i++ {
			m[fmt.Sprintf("i%d", rng.Intn(8))] = true
		}
		return m
	}
	randTraits := func() map[string]TraitValue {
		m := make(map[string]TraitValue)
		for i := 0; i < rng.Intn(6); i++ {
			m[fmt.Sprintf("t%d", rng.Intn(8))] = TraitValue{
				Value:      rng.Float64()*2 - 1,
				Confidence: rng.Float64(),
			}
		}
		return m
	}
	randVec := func() []float32 {
		if rng.Float64() < 0.4 {
			return nil
		}
		vec := make([]float32, 4)
		for i := range vec {
			vec[i] = rng.Float32()*2 - 1
		}
		return vec
	}

	lat1, lon1 := rng.Float64()*180-90, rng.Float64()*360-180
	lat2, lon2 := rng.Float64()*180-90, rng.Float64()*360-180

	v := &ViewerContext{
		UserID:     uuid.New(),
		Interests:  randInterests(),
		Traits:     randTraits(),
		QuizVector: randVec(),
		Latitude:   &lat1,
		Longitude:  &lon1,
		CreatedAt:  time.Now().Add(-time.Duration(rng.Intn(100)) * 24 * time.Hour),
	}
	c := &CandidateContext{
		UserID:              uuid.New(),
		Interests:           randInterests(),
		Traits:              randTraits(),
		QuizVector:          randVec(),
		Latitude:            &lat2,
		Longitude:           &lon2,
		ReceivedRatingAvg:   rng.Float64(),
		ReceivedRatingCount: rng.Intn(10),
		CreatedAt:           time.Now().Add(-time.Duration(rng.Intn(100)) * 24 * time.Hour),
	}

	// Vector cosine needs equal dims; mismatch falls back anyway but
	// keep half the trials on the vector path.
	if len(v.QuizVector) > 0 && len(c.QuizVector) == 0 && rng.Float64() < 0.5 {
		c.QuizVector = randVec()
	}

	return v, c
}
