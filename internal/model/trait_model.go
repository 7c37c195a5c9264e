package model

import (
	"github.com/google/uuid"
)

type UserTrait struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_trait;index"`
	Key        string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_user_trait"`
	Value      float64   `gorm:"not null"`
	Confidence float64   `gorm:"not null;default:1"`
}

func (UserTrait) TableName() string {
	return "user_traits"
}
