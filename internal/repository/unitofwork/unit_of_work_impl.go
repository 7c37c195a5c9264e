package unitofwork

import (
	"context"
	"fmt"

	"matchfeed-be/internal/repository/contract"
	"matchfeed-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InterestRepository() contract.InterestRepository {
	return implementation.NewInterestRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TraitRepository() contract.TraitRepository {
	return implementation.NewTraitRepository(u.getDB())
}

func (u *UnitOfWorkImpl) QuizRepository() contract.QuizRepository {
	return implementation.NewQuizRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RatingRepository() contract.RatingRepository {
	return implementation.NewRatingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PostRepository() contract.PostRepository {
	return implementation.NewPostRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FollowRepository() contract.FollowRepository {
	return implementation.NewFollowRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BlockRepository() contract.BlockRepository {
	return implementation.NewBlockRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MatchScoreRepository() contract.MatchScoreRepository {
	return implementation.NewMatchScoreRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CompatibilityRepository() contract.CompatibilityRepository {
	return implementation.NewCompatibilityRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PresortRepository() contract.PresortRepository {
	return implementation.NewPresortRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FeedSeenRepository() contract.FeedSeenRepository {
	return implementation.NewFeedSeenRepository(u.getDB())
}
