package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	TierA = "A" // within stated preferences
	TierB = "B" // outside stated preferences, still eligible
)

type MatchScore struct {
	Id                 uuid.UUID
	ViewerId           uuid.UUID
	CandidateId        uuid.UUID
	Score              float64
	ScoreQuiz          float64
	ScoreTraits        float64
	ScoreInterests     float64
	ScoreRatingQuality float64
	ScoreRatingFit     float64
	ScoreProximity     float64
	DistanceKm         *float64
	Tier               string
	Reasons            map[string]interface{}
	AlgorithmVersion   string
	ComputedAt         time.Time
}

const (
	CompatibilityReady            = "READY"
	CompatibilityInsufficientData = "INSUFFICIENT_DATA"
)

type CompatibilitySummary struct {
	Id               uuid.UUID
	ViewerId         uuid.UUID
	TargetId         uuid.UUID
	Status           string
	Score            *float64
	AlgorithmVersion string
	ComputedAt       time.Time
}
