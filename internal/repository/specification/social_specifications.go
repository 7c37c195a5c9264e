package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByFollowerID struct {
	FollowerID uuid.UUID
}

func (s ByFollowerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("follower_id = ?", s.FollowerID)
}

type ByFolloweeID struct {
	FolloweeID uuid.UUID
}

func (s ByFolloweeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("followee_id = ?", s.FolloweeID)
}

type ByFollowStatus struct {
	Status string
}

func (s ByFollowStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByAuthorID struct {
	AuthorID uuid.UUID
}

func (s ByAuthorID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("author_id = ?", s.AuthorID)
}

type ByAuthorIDs struct {
	AuthorIDs []uuid.UUID
}

func (s ByAuthorIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("author_id IN ?", s.AuthorIDs)
}

type ByVisibility struct {
	Visibility string
}

func (s ByVisibility) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("visibility = ?", s.Visibility)
}

type CreatedAfter struct {
	After time.Time
}

func (s CreatedAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at > ?", s.After)
}

type ByRaterID struct {
	RaterID uuid.UUID
}

func (s ByRaterID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("rater_id = ?", s.RaterID)
}

type ActiveQuestions struct{}

func (s ActiveQuestions) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}
