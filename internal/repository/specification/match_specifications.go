package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByViewerID struct {
	ViewerID uuid.UUID
}

func (s ByViewerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("viewer_id = ?", s.ViewerID)
}

type ByCandidateID struct {
	CandidateID uuid.UUID
}

func (s ByCandidateID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("candidate_id = ?", s.CandidateID)
}

type ByTargetID struct {
	TargetID uuid.UUID
}

func (s ByTargetID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("target_id = ?", s.TargetID)
}

type ByTier struct {
	Tier string
}

func (s ByTier) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tier = ?", s.Tier)
}

type ByAlgorithmVersion struct {
	Version string
}

func (s ByAlgorithmVersion) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("algorithm_version = ?", s.Version)
}
