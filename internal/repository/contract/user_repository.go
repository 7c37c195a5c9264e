package contract

import (
	"context"

	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// FindCandidateIDs returns every active user id except the given one.
	FindCandidateIDs(ctx context.Context, exclude uuid.UUID) ([]uuid.UUID, error)
}
