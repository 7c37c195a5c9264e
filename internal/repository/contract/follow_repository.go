package contract

import (
	"context"

	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FollowRepository interface {
	Create(ctx context.Context, follow *entity.Follow) error
	Update(ctx context.Context, follow *entity.Follow) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Follow, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Follow, error)
	// ApprovedFolloweeIDs lists who the user follows with approved status.
	ApprovedFolloweeIDs(ctx context.Context, followerId uuid.UUID) ([]uuid.UUID, error)
}

type BlockRepository interface {
	Create(ctx context.Context, block *entity.Block) error
	Delete(ctx context.Context, userId, blockedId uuid.UUID) error
	// BlockedPairIDs returns ids blocked by the user or blocking the user.
	BlockedPairIDs(ctx context.Context, userId uuid.UUID) (map[uuid.UUID]bool, error)
}
