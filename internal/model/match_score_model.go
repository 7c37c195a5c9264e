package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MatchScore is one persisted (viewer, candidate) score row. At most K
// rows exist per viewer; recomputes replace the whole set, never patch.
type MatchScore struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ViewerId           uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_viewer_candidate;index:idx_viewer_score,priority:1"`
	CandidateId        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_viewer_candidate"`
	Score              float64        `gorm:"not null;index:idx_viewer_score,priority:2,sort:desc"`
	ScoreQuiz          float64        `gorm:"not null"`
	ScoreTraits        float64        `gorm:"not null"`
	ScoreInterests     float64        `gorm:"not null"`
	ScoreRatingQuality float64        `gorm:"not null"`
	ScoreRatingFit     float64        `gorm:"not null"`
	ScoreProximity     float64        `gorm:"not null"`
	DistanceKm         *float64       `gorm:"type:double precision"`
	Tier               string         `gorm:"type:varchar(1);not null"` // A = within preferences, B = outside
	Reasons            datatypes.JSON `gorm:"type:jsonb"`
	AlgorithmVersion   string         `gorm:"type:varchar(32);not null;index"`
	ComputedAt         time.Time      `gorm:"not null"`
}

func (MatchScore) TableName() string {
	return "match_scores"
}
