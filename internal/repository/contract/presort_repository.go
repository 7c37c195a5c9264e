package contract

import (
	"context"
	"time"

	"matchfeed-be/internal/entity"

	"github.com/google/uuid"
)

type PresortRepository interface {
	// Upsert writes one segment, replacing any existing row for the
	// same (user, segment index).
	Upsert(ctx context.Context, segment *entity.PresortedFeedSegment) error
	FindSegment(ctx context.Context, userId uuid.UUID, index int) (*entity.PresortedFeedSegment, error)
	FindAllForUser(ctx context.Context, userId uuid.UUID) ([]*entity.PresortedFeedSegment, error)
	DeleteAllForUser(ctx context.Context, userId uuid.UUID) error
}

type FeedSeenRepository interface {
	MarkSeen(ctx context.Context, seen *entity.FeedSeen) error
	// SeenItemIDs returns the set of item ids served to the user at or
	// after the given instant.
	SeenItemIDs(ctx context.Context, userId uuid.UUID, since time.Time) (map[uuid.UUID]bool, error)
}
