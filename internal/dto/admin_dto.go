package dto

import "github.com/google/uuid"

type RecomputeMatchesRequest struct {
	UserId    *uuid.UUID `json:"user_id"` // nil = all users
	BatchSize int        `json:"batch_size" validate:"omitempty,min=1,max=1000"`
	PauseMs   int        `json:"pause_ms" validate:"omitempty,min=0,max=60000"`
	Version   string     `json:"version"`
}

type RecomputeMatchesResponse struct {
	UsersProcessed int `json:"users_processed"`
	UsersSkipped   int `json:"users_skipped"`
}

type PresortRecomputeMessage struct {
	UserId uuid.UUID `json:"user_id"`
	Reason string    `json:"reason"`
}
