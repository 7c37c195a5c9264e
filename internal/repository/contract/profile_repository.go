package contract

import (
	"context"

	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InterestRepository interface {
	Create(ctx context.Context, interest *entity.UserInterest) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserInterest, error)
	// FindAllByUserIds loads interests for a batch of users in one query.
	FindAllByUserIds(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID][]*entity.UserInterest, error)
}

type TraitRepository interface {
	Upsert(ctx context.Context, trait *entity.UserTrait) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserTrait, error)
	FindAllByUserIds(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID][]*entity.UserTrait, error)
}

type QuizRepository interface {
	UpsertResult(ctx context.Context, result *entity.QuizResult) error
	FindResult(ctx context.Context, userId uuid.UUID) (*entity.QuizResult, error)
	FindResultsByUserIds(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]*entity.QuizResult, error)
	FindQuestions(ctx context.Context, specs ...specification.Specification) ([]*entity.QuizQuestion, error)
}

type RatingRepository interface {
	Upsert(ctx context.Context, rating *entity.Rating) error
	FindAllByRater(ctx context.Context, raterId uuid.UUID) ([]*entity.Rating, error)
	FindAllByRaters(ctx context.Context, raterIds []uuid.UUID) (map[uuid.UUID][]*entity.Rating, error)
	// ReceivedAggregates summarizes ratings received by each listed user.
	ReceivedAggregates(ctx context.Context, userIds []uuid.UUID) (map[uuid.UUID]*entity.RatingAggregate, error)
}
