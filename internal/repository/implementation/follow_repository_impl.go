package implementation

import (
	"context"
	"errors"

	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/mapper"
	"matchfeed-be/internal/model"
	"matchfeed-be/internal/repository/contract"
	"matchfeed-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FollowMapper
}

func NewFollowRepository(db *gorm.DB) contract.FollowRepository {
	return &FollowRepositoryImpl{
		db:     db,
		mapper: mapper.NewFollowMapper(),
	}
}

func (r *FollowRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FollowRepositoryImpl) Create(ctx context.Context, follow *entity.Follow) error {
	m := r.mapper.ToModel(follow)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*follow = *r.mapper.ToEntity(m)
	return nil
}

func (r *FollowRepositoryImpl) Update(ctx context.Context, follow *entity.Follow) error {
	m := r.mapper.ToModel(follow)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*follow = *r.mapper.ToEntity(m)
	return nil
}

func (r *FollowRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Follow{}, id).Error
}

func (r *FollowRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Follow, error) {
	var m model.Follow
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FollowRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Follow, error) {
	var models []*model.Follow
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FollowRepositoryImpl) ApprovedFolloweeIDs(ctx context.Context, followerId uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND status = ?", followerId, entity.FollowApproved).
		Pluck("followee_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

type BlockRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FollowMapper
}

func NewBlockRepository(db *gorm.DB) contract.BlockRepository {
	return &BlockRepositoryImpl{
		db:     db,
		mapper: mapper.NewFollowMapper(),
	}
}

func (r *BlockRepositoryImpl) Create(ctx context.Context, block *entity.Block) error {
	m := &model.Block{
		Id:        block.Id,
		UserId:    block.UserId,
		BlockedId: block.BlockedId,
		CreatedAt: block.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*block = *r.mapper.BlockToEntity(m)
	return nil
}

func (r *BlockRepositoryImpl) Delete(ctx context.Context, userId, blockedId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND blocked_id = ?", userId, blockedId).
		Delete(&model.Block{}).Error
}

func (r *BlockRepositoryImpl) BlockedPairIDs(ctx context.Context, userId uuid.UUID) (map[uuid.UUID]bool, error) {
	var models []*model.Block
	err := r.db.WithContext(ctx).
		Where("user_id = ? OR blocked_id = ?", userId, userId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	blocked := make(map[uuid.UUID]bool, len(models))
	for _, m := range models {
		if m.UserId == userId {
			blocked[m.BlockedId] = true
		} else {
			blocked[m.UserId] = true
		}
	}
	return blocked, nil
}
