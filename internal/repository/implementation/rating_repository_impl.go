package implementation

import (
	"context"

	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/mapper"
	"matchfeed-be/internal/model"
	"matchfeed-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewRatingRepository(db *gorm.DB) contract.RatingRepository {
	return &RatingRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *RatingRepositoryImpl) Upsert(ctx context.Context, rating *entity.Rating) error {
	m := &model.Rating{
		Id:        rating.Id,
		RaterId:   rating.RaterId,
		TargetId:  rating.TargetId,
		Value:     rating.Value,
		CreatedAt: rating.CreatedAt,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "rater_id"}, {Name: "target_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*rating = *r.mapper.RatingToEntity(m)
	return nil
}

func (r *RatingRepositoryImpl) FindAllByRater(ctx context.Context, raterId uuid.UUID) ([]*entity.Rating, error) {
	var models []*model.Rating
	if err := r.db.WithContext(ctx).Where("rater_id = ?", raterId).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.RatingsToEntities(models), nil
}

func (r *RatingRepositoryImpl) FindAllByRaters(ctx context.Context, raterIds []uuid.UUID) (map[uuid.UUID][]*entity.Rating, error) {
	var models []*model.Rating
	if err := r.db.WithContext(ctx).Where("rater_id IN ?", raterIds).Find(&models).Error; err != nil {
		return nil, err
	}
	grouped := make(map[uuid.UUID][]*entity.Rating, len(raterIds))
	for _, m := range models {
		grouped[m.RaterId] = append(grouped[m.RaterId], r.mapper.RatingToEntity(m))
	}
	return grouped, nil
}

func (r *RatingRepositoryImpl) ReceivedAggregates(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]*entity.RatingAggregate, error) {
	type row struct {
		TargetId uuid.UUID
		Average  float64
		Count    int
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Rating{}).
		Select("target_id, AVG(value) AS average, COUNT(*) AS count").
		Where("target_id IN ?", userIds).
		Group("target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	aggregates := make(map[uuid.UUID]*entity.RatingAggregate, len(rows))
	for _, rw := range rows {
		aggregates[rw.TargetId] = &entity.RatingAggregate{
			UserId:  rw.TargetId,
			Average: rw.Average,
			Count:   rw.Count,
		}
	}
	return aggregates, nil
}
