package entity

import (
	"time"

	"matchfeed-be/pkg/feed"

	"github.com/google/uuid"
)

type PresortedFeedSegment struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	SegmentIndex     int
	Items            []feed.ItemRef
	Phase1Payload    []byte
	AlgorithmVersion string
	ComputedAt       time.Time
	ExpiresAt        time.Time
}

// Expired is the lazy read-time check; expired segments are never
// served, only recomputed or bypassed.
func (s *PresortedFeedSegment) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type FeedSeen struct {
	Id       uuid.UUID
	UserId   uuid.UUID
	ItemType string
	ItemId   uuid.UUID
	SeenAt   time.Time
}
