package model

import (
	"time"

	"github.com/google/uuid"
)

// CompatibilitySummary is the derived two-state view over match data.
// Never mutated independently; always recomputed from MatchScore rows
// plus signal availability.
type CompatibilitySummary struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ViewerId         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_viewer_target;index"`
	TargetId         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_viewer_target"`
	Status           string    `gorm:"type:varchar(24);not null"` // READY | INSUFFICIENT_DATA
	Score            *float64  `gorm:"type:double precision"`
	AlgorithmVersion string    `gorm:"type:varchar(32);not null"`
	ComputedAt       time.Time `gorm:"not null"`
}

func (CompatibilitySummary) TableName() string {
	return "compatibility_summaries"
}
