package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AuthorId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Caption      string         `gorm:"type:text"`
	MediaType    string         `gorm:"type:varchar(16);index"` // photo | video | text
	MediaURL     string         `gorm:"type:varchar(512)"`
	Visibility   string         `gorm:"type:varchar(16);default:'public';index"` // public | followers
	LikeCount    int            `gorm:"default:0"`
	CommentCount int            `gorm:"default:0"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Post) TableName() string {
	return "posts"
}
