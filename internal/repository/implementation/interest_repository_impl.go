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
)

type InterestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewInterestRepository(db *gorm.DB) contract.InterestRepository {
	return &InterestRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *InterestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InterestRepositoryImpl) Create(ctx context.Context, interest *entity.UserInterest) error {
	m := &model.UserInterest{Id: interest.Id, UserId: interest.UserId, Key: interest.Key}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*interest = *r.mapper.InterestToEntity(m)
	return nil
}

func (r *InterestRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.UserInterest{}).Error
}

func (r *InterestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserInterest, error) {
	var models []*model.UserInterest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.InterestsToEntities(models), nil
}

func (r *InterestRepositoryImpl) FindAllByUserIds(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID][]*entity.UserInterest, error) {
	var models []*model.UserInterest
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIds).Find(&models).Error; err != nil {
		return nil, err
	}
	grouped := make(map[uuid.UUID][]*entity.UserInterest, len(userIds))
	for _, m := range models {
		grouped[m.UserId] = append(grouped[m.UserId], r.mapper.InterestToEntity(m))
	}
	return grouped, nil
}
