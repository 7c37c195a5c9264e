package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizSimilarityVectorPath(t *testing.T) {
	op := QuizSimilarityOperator{}

	t.Run("identical vectors score 1", func(t *testing.T) {
		v := &ViewerContext{QuizVector: []float32{0.5, -0.2, 0.8}}
		c := &CandidateContext{QuizVector: []float32{0.5, -0.2, 0.8}}

		res := op.Score(v, c)
		assert.NotNil(t, res.Score)
		assert.InDelta(t, 1.0, *res.Score, 1e-9)
		assert.Equal(t, "vector_cosine", res.Reason["method"])
	})

	t.Run("opposite vectors score 0", func(t *testing.T) {
		v := &ViewerContext{QuizVector: []float32{1, 0}}
		c := &CandidateContext{QuizVector: []float32{-1, 0}}

		res := op.Score(v, c)
		assert.NotNil(t, res.Score)
		assert.InDelta(t, 0.0, *res.Score, 1e-9)
	})

	t.Run("orthogonal vectors remap to 0.5", func(t *testing.T) {
		v := &ViewerContext{QuizVector: []float32{1, 0}}
		c := &CandidateContext{QuizVector: []float32{0, 1}}

		res := op.Score(v, c)
		assert.NotNil(t, res.Score)
		assert.InDelta(t, 0.5, *res.Score, 1e-9)
	})
}

func TestQuizSimilarityAnswerFallback(t *testing.T) {
	op := QuizSimilarityOperator{}

	t.Run("falls back to answer overlap without vectors", func(t *testing.T) {
		v := &ViewerContext{QuizAnswers: map[string]string{"q1": "a", "q2": "b", "q3": "c"}}
		c := &CandidateContext{QuizAnswers: map[string]string{"q1": "a", "q2": "x", "q3": "c", "q4": "d"}}

		res := op.Score(v, c)
		assert.NotNil(t, res.Score)
		assert.InDelta(t, 2.0/3.0, *res.Score, 1e-9)
		assert.Equal(t, "answer_overlap", res.Reason["method"])
	})

	t.Run("mismatched vector lengths use fallback", func(t *testing.T) {
		v := &ViewerContext{
			QuizVector:  []float32{1, 0, 0},
			QuizAnswers: map[string]string{"q1": "a"},
		}
		c := &CandidateContext{
			QuizVector:  []float32{1, 0},
			QuizAnswers: map[string]string{"q1": "a"},
		}

		res := op.Score(v, c)
		assert.NotNil(t, res.Score)
		assert.InDelta(t, 1.0, *res.Score, 1e-9)
	})

	t.Run("no shared signal yields nil", func(t *testing.T) {
		v := &ViewerContext{}
		c := &CandidateContext{QuizAnswers: map[string]string{"q9": "a"}}

		res := op.Score(v, c)
		assert.Nil(t, res.Score)
	})
}
