package entity

import (
	"time"

	"github.com/google/uuid"
)

type Preferences struct {
	Genders       []string
	AgeMin        int
	AgeMax        int
	MaxDistanceKm float64
}

type User struct {
	Id          uuid.UUID
	Username    string
	DisplayName string
	Gender      string
	BirthDate   *time.Time
	Bio         string
	City        string
	Latitude    *float64
	Longitude   *float64
	Prefs       Preferences
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Age computes full years at the given instant; 0 when birth date is unknown.
func (u *User) Age(now time.Time) int {
	if u.BirthDate == nil {
		return 0
	}
	years := now.Year() - u.BirthDate.Year()
	anniversary := u.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
