package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	VisibilityPublic    = "public"
	VisibilityFollowers = "followers"
)

type Post struct {
	Id           uuid.UUID
	AuthorId     uuid.UUID
	Caption      string
	MediaType    string
	MediaURL     string
	Visibility   string
	LikeCount    int
	CommentCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
