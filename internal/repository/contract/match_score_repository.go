package contract

import (
	"context"

	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MatchScoreRepository interface {
	// ReplaceForViewer atomically swaps the viewer's full score set.
	// Partial result sets must never be visible to readers.
	ReplaceForViewer(ctx context.Context, viewerId uuid.UUID, scores []*entity.MatchScore) error
	TopForViewer(ctx context.Context, viewerId uuid.UUID, limit int) ([]*entity.MatchScore, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MatchScore, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MatchScore, error)
	DeleteAllForViewer(ctx context.Context, viewerId uuid.UUID) error
}

type CompatibilityRepository interface {
	Upsert(ctx context.Context, summary *entity.CompatibilitySummary) error
	FindPair(ctx context.Context, viewerId, targetId uuid.UUID) (*entity.CompatibilitySummary, error)
}
