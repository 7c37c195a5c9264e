package unitofwork

import (
	"context"

	"matchfeed-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	InterestRepository() contract.InterestRepository
	TraitRepository() contract.TraitRepository
	QuizRepository() contract.QuizRepository
	RatingRepository() contract.RatingRepository

	PostRepository() contract.PostRepository
	FollowRepository() contract.FollowRepository
	BlockRepository() contract.BlockRepository

	MatchScoreRepository() contract.MatchScoreRepository
	CompatibilityRepository() contract.CompatibilityRepository
	PresortRepository() contract.PresortRepository
	FeedSeenRepository() contract.FeedSeenRepository
}
