package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BySegmentIndex struct {
	Index int
}

func (s BySegmentIndex) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("segment_index = ?", s.Index)
}

type NotExpired struct {
	Now time.Time
}

func (s NotExpired) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at > ?", s.Now)
}

type SeenSince struct {
	Since time.Time
}

func (s SeenSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("seen_at >= ?", s.Since)
}

type ByItemType struct {
	ItemType string
}

func (s ByItemType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("item_type = ?", s.ItemType)
}

type ByItemID struct {
	ItemID uuid.UUID
}

func (s ByItemID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("item_id = ?", s.ItemID)
}
