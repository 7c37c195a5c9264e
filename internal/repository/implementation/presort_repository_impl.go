package implementation

import (
	"context"
	"errors"
	"time"

	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/mapper"
	"matchfeed-be/internal/model"
	"matchfeed-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PresortRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PresortMapper
}

func NewPresortRepository(db *gorm.DB) contract.PresortRepository {
	return &PresortRepositoryImpl{
		db:     db,
		mapper: mapper.NewPresortMapper(),
	}
}

func (r *PresortRepositoryImpl) Upsert(ctx context.Context, segment *entity.PresortedFeedSegment) error {
	m, err := r.mapper.ToModel(segment)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "segment_index"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"items", "phase1_payload", "algorithm_version", "computed_at", "expires_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	e, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*segment = *e
	return nil
}

func (r *PresortRepositoryImpl) FindSegment(ctx context.Context, userId uuid.UUID, index int) (*entity.PresortedFeedSegment, error) {
	var m model.PresortedFeedSegment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND segment_index = ?", userId, index).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *PresortRepositoryImpl) FindAllForUser(ctx context.Context, userId uuid.UUID) ([]*entity.PresortedFeedSegment, error) {
	var models []*model.PresortedFeedSegment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("segment_index ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	segments := make([]*entity.PresortedFeedSegment, 0, len(models))
	for _, m := range models {
		e, err := r.mapper.ToEntity(m)
		if err != nil {
			return nil, err
		}
		segments = append(segments, e)
	}
	return segments, nil
}

func (r *PresortRepositoryImpl) DeleteAllForUser(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.PresortedFeedSegment{}).Error
}

type FeedSeenRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PresortMapper
}

func NewFeedSeenRepository(db *gorm.DB) contract.FeedSeenRepository {
	return &FeedSeenRepositoryImpl{
		db:     db,
		mapper: mapper.NewPresortMapper(),
	}
}

func (r *FeedSeenRepositoryImpl) MarkSeen(ctx context.Context, seen *entity.FeedSeen) error {
	m := r.mapper.SeenToModel(seen)
	// Re-serving an item is a no-op, not an error.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_type"}, {Name: "item_id"}},
		DoNothing: true,
	}).Create(m).Error
	if err != nil {
		return err
	}
	*seen = *r.mapper.SeenToEntity(m)
	return nil
}

func (r *FeedSeenRepositoryImpl) SeenItemIDs(ctx context.Context, userId uuid.UUID, since time.Time) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.FeedSeen{}).
		Where("user_id = ? AND seen_at >= ?", userId, since).
		Pluck("item_id", &ids).Error
	if err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	return seen, nil
}
