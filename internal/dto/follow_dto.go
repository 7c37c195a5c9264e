package dto

import (
	"time"

	"github.com/google/uuid"
)

type FollowResponse struct {
	Id         uuid.UUID `json:"id"`
	FollowerId uuid.UUID `json:"follower_id"`
	FolloweeId uuid.UUID `json:"followee_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type UpdatePostVisibilityRequest struct {
	Id         uuid.UUID
	Visibility string `json:"visibility" validate:"required,oneof=public followers"`
}

type UpdatePostVisibilityResponse struct {
	Id         uuid.UUID `json:"id"`
	Visibility string    `json:"visibility"`
}
