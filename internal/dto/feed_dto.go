package dto

import (
	"time"

	"github.com/google/uuid"
)

type GetFeedRequest struct {
	Count    int     `query:"count" validate:"omitempty,min=1,max=50"`
	Cursor   int     `query:"cursor" validate:"omitempty,min=0"`
	Seed     *uint32 `query:"seed"`
	Debug    bool    `query:"debug"`
	MarkSeen bool    `query:"mark_seen"`
}

type FeedItemResponse struct {
	Type      string                 `json:"type"`
	Id        uuid.UUID              `json:"id"`
	ActorId   uuid.UUID              `json:"actor_id"`
	Layout    string                 `json:"layout,omitempty"`
	Accent    string                 `json:"accent,omitempty"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Score     float64                `json:"score,omitempty"`
	Breakdown map[string]interface{} `json:"breakdown,omitempty"` // debug only
}

type GetFeedResponse struct {
	Items      []*FeedItemResponse `json:"items"`
	NextCursor int                 `json:"next_cursor"`
	Source     string              `json:"source"` // presort | live
	ComputedAt *time.Time          `json:"computed_at,omitempty"`
}
