package dto

import (
	"time"

	"github.com/google/uuid"
)

type GetCompatibilityResponse struct {
	TargetId         uuid.UUID              `json:"target_id"`
	Status           string                 `json:"status"` // READY | INSUFFICIENT_DATA
	Score            *float64               `json:"score,omitempty"`
	Components       map[string]float64     `json:"components,omitempty"`
	Reasons          map[string]interface{} `json:"reasons,omitempty"`
	AlgorithmVersion string                 `json:"algorithm_version"`
	ComputedAt       *time.Time             `json:"computed_at,omitempty"`
}
