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
	"gorm.io/gorm/clause"
)

type QuizRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewQuizRepository(db *gorm.DB) contract.QuizRepository {
	return &QuizRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *QuizRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QuizRepositoryImpl) UpsertResult(ctx context.Context, result *entity.QuizResult) error {
	m := r.mapper.QuizResultToModel(result)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"vector", "answers", "answered_count", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*result = *r.mapper.QuizResultToEntity(m)
	return nil
}

func (r *QuizRepositoryImpl) FindResult(ctx context.Context, userId uuid.UUID) (*entity.QuizResult, error) {
	var m model.QuizResult
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.QuizResultToEntity(&m), nil
}

func (r *QuizRepositoryImpl) FindResultsByUserIds(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]*entity.QuizResult, error) {
	var models []*model.QuizResult
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIds).Find(&models).Error; err != nil {
		return nil, err
	}
	results := make(map[uuid.UUID]*entity.QuizResult, len(models))
	for _, m := range models {
		results[m.UserId] = r.mapper.QuizResultToEntity(m)
	}
	return results, nil
}

func (r *QuizRepositoryImpl) FindQuestions(ctx context.Context, specs ...specification.Specification) ([]*entity.QuizQuestion, error) {
	var models []*model.QuizQuestion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.QuizQuestionsToEntities(models), nil
}
