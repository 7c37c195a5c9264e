package implementation

import (
	"context"

	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/mapper"
	"matchfeed-be/internal/model"
	"matchfeed-be/internal/repository/contract"
	"matchfeed-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TraitRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewTraitRepository(db *gorm.DB) contract.TraitRepository {
	return &TraitRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *TraitRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TraitRepositoryImpl) Upsert(ctx context.Context, trait *entity.UserTrait) error {
	m := &model.UserTrait{
		Id:         trait.Id,
		UserId:     trait.UserId,
		Key:        trait.Key,
		Value:      trait.Value,
		Confidence: trait.Confidence,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "confidence"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*trait = *r.mapper.TraitToEntity(m)
	return nil
}

func (r *TraitRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserTrait, error) {
	var models []*model.UserTrait
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TraitsToEntities(models), nil
}

func (r *TraitRepositoryImpl) FindAllByUserIds(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID][]*entity.UserTrait, error) {
	var models []*model.UserTrait
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIds).Find(&models).Error; err != nil {
		return nil, err
	}
	grouped := make(map[uuid.UUID][]*entity.UserTrait, len(userIds))
	for _, m := range models {
		grouped[m.UserId] = append(grouped[m.UserId], r.mapper.TraitToEntity(m))
	}
	return grouped, nil
}
