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

type PostRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PostMapper
}

func NewPostRepository(db *gorm.DB) contract.PostRepository {
	return &PostRepositoryImpl{
		db:     db,
		mapper: mapper.NewPostMapper(),
	}
}

func (r *PostRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *entity.Post) error {
	m := r.mapper.ToModel(post)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*post = *r.mapper.ToEntity(m)
	return nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *entity.Post) error {
	m := r.mapper.ToModel(post)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*post = *r.mapper.ToEntity(m)
	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}

func (r *PostRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Post, error) {
	var m model.Post
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PostRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Post, error) {
	var models []*model.Post
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PostRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Post{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
