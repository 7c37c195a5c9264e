package implementation

import (
	"context"
	"errors"
	"fmt"

	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/mapper"
	"matchfeed-be/internal/model"
	"matchfeed-be/internal/repository/contract"
	"matchfeed-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatchScoreRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MatchMapper
}

func NewMatchScoreRepository(db *gorm.DB) contract.MatchScoreRepository {
	return &MatchScoreRepositoryImpl{
		db:     db,
		mapper: mapper.NewMatchMapper(),
	}
}

func (r *MatchScoreRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MatchScoreRepositoryImpl) ReplaceForViewer(ctx context.Context, viewerId uuid.UUID, scores []*entity.MatchScore) error {
	models := r.mapper.ToModels(scores)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("viewer_id = ?", viewerId).Delete(&model.MatchScore{}).Error; err != nil {
			return fmt.Errorf("clear viewer scores: %w", err)
		}
		if len(models) == 0 {
			return nil
		}
		if err := tx.Create(models).Error; err != nil {
			return fmt.Errorf("insert viewer scores: %w", err)
		}
		return nil
	})
}

func (r *MatchScoreRepositoryImpl) TopForViewer(ctx context.Context, viewerId uuid.UUID, limit int) ([]*entity.MatchScore, error) {
	var models []*model.MatchScore
	err := r.db.WithContext(ctx).
		Where("viewer_id = ?", viewerId).
		Order("score DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MatchScoreRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MatchScore, error) {
	var m model.MatchScore
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MatchScoreRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MatchScore, error) {
	var models []*model.MatchScore
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MatchScoreRepositoryImpl) DeleteAllForViewer(ctx context.Context, viewerId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("viewer_id = ?", viewerId).Delete(&model.MatchScore{}).Error
}

type CompatibilityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MatchMapper
}

func NewCompatibilityRepository(db *gorm.DB) contract.CompatibilityRepository {
	return &CompatibilityRepositoryImpl{
		db:     db,
		mapper: mapper.NewMatchMapper(),
	}
}

func (r *CompatibilityRepositoryImpl) Upsert(ctx context.Context, summary *entity.CompatibilitySummary) error {
	m := r.mapper.SummaryToModel(summary)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "viewer_id"}, {Name: "target_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "score", "algorithm_version", "computed_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*summary = *r.mapper.SummaryToEntity(m)
	return nil
}

func (r *CompatibilityRepositoryImpl) FindPair(ctx context.Context, viewerId, targetId uuid.UUID) (*entity.CompatibilitySummary, error) {
	var m model.CompatibilitySummary
	err := r.db.WithContext(ctx).
		Where("viewer_id = ? AND target_id = ?", viewerId, targetId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SummaryToEntity(&m), nil
}
