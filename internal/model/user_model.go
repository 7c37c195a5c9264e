package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username          string         `gorm:"type:varchar(64);not null;uniqueIndex"`
	DisplayName       string         `gorm:"type:varchar(128)"`
	Gender            string         `gorm:"type:varchar(16);index"`
	BirthDate         *time.Time     `gorm:"type:date"`
	Bio               string         `gorm:"type:text"`
	City              string         `gorm:"type:varchar(128)"`
	Latitude          *float64       `gorm:"type:double precision"`
	Longitude         *float64       `gorm:"type:double precision"`
	PrefGenders       string         `gorm:"type:varchar(64)"` // comma separated
	PrefAgeMin        int            `gorm:"default:0"`
	PrefAgeMax        int            `gorm:"default:0"`
	PrefMaxDistanceKm float64        `gorm:"default:0"`
	CreatedAt         time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
