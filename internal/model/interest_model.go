package model

import (
	"github.com/google/uuid"
)

type UserInterest struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_interest;index"`
	Key    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_user_interest"`
}

func (UserInterest) TableName() string {
	return "user_interests"
}
