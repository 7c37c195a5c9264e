package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PresortedFeedSegment is a precomputed, versioned, expiring slice of a
// user's ranked feed. An expired segment is never served; it is
// recomputed or the request falls back to live ranking.
type PresortedFeedSegment struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_user_segment;index"`
	SegmentIndex     int            `gorm:"not null;uniqueIndex:idx_user_segment"`
	Items            datatypes.JSON `gorm:"type:jsonb"` // ordered lightweight item refs
	Phase1Payload    datatypes.JSON `gorm:"type:jsonb"` // minimal fast-path payload, <= 8KB
	AlgorithmVersion string         `gorm:"type:varchar(32);not null;index"`
	ComputedAt       time.Time      `gorm:"not null"`
	ExpiresAt        time.Time      `gorm:"not null;index"`
}

func (PresortedFeedSegment) TableName() string {
	return "presorted_feed_segments"
}
