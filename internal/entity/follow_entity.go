package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	FollowPending  = "pending"
	FollowApproved = "approved"
)

type Follow struct {
	Id         uuid.UUID
	FollowerId uuid.UUID
	FolloweeId uuid.UUID
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Block struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	BlockedId uuid.UUID
	CreatedAt time.Time
}
