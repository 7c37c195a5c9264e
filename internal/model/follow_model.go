package model

import (
	"time"

	"github.com/google/uuid"
)

type Follow struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FollowerId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follower_followee;index"`
	FolloweeId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follower_followee;index"`
	Status     string    `gorm:"type:varchar(16);default:'pending';index"` // pending | approved
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Follow) TableName() string {
	return "follows"
}

type Block struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_blocked;index"`
	BlockedId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_blocked"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Block) TableName() string {
	return "blocks"
}
