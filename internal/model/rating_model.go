package model

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RaterId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rater_target;index"`
	TargetId  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rater_target;index"`
	Value     float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Rating) TableName() string {
	return "ratings"
}
