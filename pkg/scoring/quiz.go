package scoring

import "math"

// QuizSimilarityOperator scores cosine similarity between the two
// users' confidence-weighted quiz vectors, remapped from [-1,1] to
// [0,1]. When vectors are unavailable it falls back to the raw
// answer-key overlap ratio; with no shared answers either, it yields
// no signal (the aggregator fills in the 0.5 neutral).
type QuizSimilarityOperator struct{}

func (QuizSimilarityOperator) Name() string { return "quiz" }

func (QuizSimilarityOperator) Neutral() float64 { return 0.5 }

func (QuizSimilarityOperator) Score(v *ViewerContext, c *CandidateContext) Result {
	if len(v.QuizVector) > 0 && len(v.QuizVector) == len(c.QuizVector) {
		cos, ok := cosine32(v.QuizVector, c.QuizVector)
		if ok {
			return scored(remapCosine(cos), map[string]interface{}{
				"method": "vector_cosine",
				"dims":   len(v.QuizVector),
			})
		}
	}

	// Fallback: fraction of identically answered shared questions
	common, matched := 0, 0
	for key, answer := range v.QuizAnswers {
		other, ok := c.QuizAnswers[key]
		if !ok {
			continue
		}
		common++
		if other == answer {
			matched++
		}
	}
	if common == 0 {
		return noSignal(map[string]interface{}{"method": "none"})
	}

	return scored(float64(matched)/float64(common), map[string]interface{}{
		"method": "answer_overlap",
		"common": common,
	})
}

// remapCosine maps a cosine in [-1,1] onto the [0,1] score range.
func remapCosine(cos float64) float64 {
	s := (cos + 1) / 2
	return clamp01(s)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// cosine32 returns the cosine similarity of two equal-length vectors.
// ok is false when either vector has zero norm.
func cosine32(a, b []float32) (float64, bool) {
	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

func cosine64(a, b []float64) (float64, bool) {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}
