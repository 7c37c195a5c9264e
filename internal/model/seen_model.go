package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedSeen marks an item as served to a user. The hot "recently seen"
// window additionally lives in Redis with a TTL; these rows are the
// durable trail.
type FeedSeen struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_item;index"`
	ItemType string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_user_item"`
	ItemId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_item"`
	SeenAt   time.Time `gorm:"autoCreateTime"`
}

func (FeedSeen) TableName() string {
	return "feed_seen"
}
