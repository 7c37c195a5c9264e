package service

import (
	"testing"
	"time"

	"matchfeed-be/internal/constant"
	"matchfeed-be/internal/entity"
	"matchfeed-be/pkg/scoring"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeOptionsNormalize(t *testing.T) {
	t.Run("zero values fall back to defaults", func(t *testing.T) {
		opts := RecomputeOptions{}
		opts.normalize()

		assert.Equal(t, constant.DefaultBatchSize, opts.BatchSize)
		assert.Equal(t, constant.DefaultBatchPauseMs*time.Millisecond, opts.Pause)
		assert.Equal(t, constant.AlgorithmVersion, opts.Version)
		assert.NotNil(t, opts.Sleep)
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		called := false
		opts := RecomputeOptions{
			BatchSize: 7,
			Pause:     50 * time.Millisecond,
			Version:   "mf-canary",
			Sleep:     func(time.Duration) { called = true },
		}
		opts.normalize()

		assert.Equal(t, 7, opts.BatchSize)
		assert.Equal(t, 50*time.Millisecond, opts.Pause)
		assert.Equal(t, "mf-canary", opts.Version)
		opts.Sleep(0)
		assert.True(t, called)
	})

	t.Run("negative pause falls back to default", func(t *testing.T) {
		opts := RecomputeOptions{Pause: -time.Second}
		opts.normalize()
		assert.Equal(t, constant.DefaultBatchPauseMs*time.Millisecond, opts.Pause)
	})
}

func TestEntriesToRows(t *testing.T) {
	svc := &matchService{}
	viewerId := uuid.New()
	now := time.Now()

	lat1, lon1 := 52.37, 4.89
	lat2, lon2 := 52.09, 5.12
	viewerCtx := &scoring.ViewerContext{UserID: viewerId, Latitude: &lat1, Longitude: &lon1}

	tierACand := uuid.New()
	tierBCand := uuid.New()

	entries := []scoring.Entry{
		{
			ID:    tierACand,
			Score: 0.82,
			Payload: &candidateResult{
				agg: &scoring.Aggregate{
					Total: 0.82,
					TierA: true,
					Components: map[string]float64{
						"quiz":           0.9,
						"traits":         0.8,
						"interests":      0.7,
						"rating_quality": 0.6,
						"rating_fit":     0.5,
						"proximity":      0.95,
					},
					Reasons: map[string]interface{}{"shared_interests": 4},
				},
				cand: &scoring.CandidateContext{UserID: tierACand, Latitude: &lat2, Longitude: &lon2},
			},
		},
		{
			ID:    tierBCand,
			Score: 0.41,
			Payload: &candidateResult{
				agg:  &scoring.Aggregate{Total: 0.41, TierA: false, Components: map[string]float64{}},
				cand: &scoring.CandidateContext{UserID: tierBCand},
			},
		},
		// Foreign payloads are skipped rather than panicking.
		{ID: uuid.New(), Score: 0.99, Payload: "not a result"},
	}

	rows := svc.entriesToRows(viewerId, entries, viewerCtx, "mf-v1", now)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, viewerId, first.ViewerId)
	assert.Equal(t, tierACand, first.CandidateId)
	assert.Equal(t, entity.TierA, first.Tier)
	assert.InDelta(t, 0.82, first.Score, 1e-9)
	assert.InDelta(t, 0.9, first.ScoreQuiz, 1e-9)
	assert.InDelta(t, 0.95, first.ScoreProximity, 1e-9)
	assert.Equal(t, "mf-v1", first.AlgorithmVersion)
	assert.Equal(t, now, first.ComputedAt)
	require.NotNil(t, first.DistanceKm)
	// Amsterdam to Utrecht is roughly 35 km.
	assert.InDelta(t, 35, *first.DistanceKm, 5)

	second := rows[1]
	assert.Equal(t, entity.TierB, second.Tier)
	assert.Nil(t, second.DistanceKm)
}

func TestContextBuildingHelpers(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	set := interestSet([]*entity.UserInterest{
		{UserId: a, Key: "hiking"},
		{UserId: a, Key: "jazz"},
	})
	assert.Equal(t, map[string]bool{"hiking": true, "jazz": true}, set)

	traits := traitMap([]*entity.UserTrait{
		{UserId: a, Key: "openness", Value: 0.8, Confidence: 0.9},
	})
	assert.Equal(t, scoring.TraitValue{Value: 0.8, Confidence: 0.9}, traits["openness"])

	ratings := ratingMap([]*entity.Rating{
		{RaterId: a, TargetId: b, Value: 4},
	})
	assert.Equal(t, map[uuid.UUID]float64{b: 4}, ratings)
}
