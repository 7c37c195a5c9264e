package service

import (
	"context"
	"testing"

	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/repository/contract"
	"matchfeed-be/internal/repository/specification"
	"matchfeed-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test doubles embed the interfaces they stand in for; only the methods
// the follow paths touch are implemented.

type stubFollowRepository struct {
	contract.FollowRepository
	follow  *entity.Follow
	deleted []uuid.UUID
	updated []*entity.Follow
}

func (r *stubFollowRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Follow, error) {
	return r.follow, nil
}

func (r *stubFollowRepository) Update(ctx context.Context, follow *entity.Follow) error {
	r.updated = append(r.updated, follow)
	return nil
}

func (r *stubFollowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type stubUnitOfWork struct {
	unitofwork.UnitOfWork
	follows contract.FollowRepository
}

func (u stubUnitOfWork) FollowRepository() contract.FollowRepository { return u.follows }

type stubUowFactory struct{ uow unitofwork.UnitOfWork }

func (f stubUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type stubPresortService struct {
	invalidated map[uuid.UUID][]string
}

func (s *stubPresortService) RecomputeForUser(ctx context.Context, userId uuid.UUID) error {
	return nil
}

func (s *stubPresortService) InvalidateUser(ctx context.Context, userId uuid.UUID, reason string) {
	if s.invalidated == nil {
		s.invalidated = make(map[uuid.UUID][]string)
	}
	s.invalidated[userId] = append(s.invalidated[userId], reason)
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestFollowMutationsInvalidatePresort(t *testing.T) {
	follower, followee := uuid.New(), uuid.New()

	setup := func(status string) (IFollowService, *stubPresortService, *stubFollowRepository) {
		repo := &stubFollowRepository{follow: &entity.Follow{
			Id:         uuid.New(),
			FollowerId: follower,
			FolloweeId: followee,
			Status:     status,
		}}
		presort := &stubPresortService{}
		svc := NewFollowService(stubUowFactory{uow: stubUnitOfWork{follows: repo}}, presort, nil, nopLogger{})
		return svc, presort, repo
	}

	t.Run("approve invalidates the follower", func(t *testing.T) {
		svc, presort, repo := setup(entity.FollowPending)

		res, err := svc.Approve(context.Background(), followee, follower)
		require.NoError(t, err)
		assert.Equal(t, entity.FollowApproved, res.Status)
		require.Len(t, repo.updated, 1)
		assert.Equal(t, []string{"follow_granted"}, presort.invalidated[follower])
	})

	t.Run("deny drops the request and invalidates the follower", func(t *testing.T) {
		svc, presort, repo := setup(entity.FollowPending)

		err := svc.Deny(context.Background(), followee, follower)
		require.NoError(t, err)
		require.Len(t, repo.deleted, 1)
		assert.Equal(t, []string{"follow_denied"}, presort.invalidated[follower])
	})

	t.Run("revoke invalidates the follower", func(t *testing.T) {
		svc, presort, repo := setup(entity.FollowApproved)

		err := svc.Revoke(context.Background(), follower, followee)
		require.NoError(t, err)
		require.Len(t, repo.deleted, 1)
		assert.Equal(t, []string{"follow_revoked"}, presort.invalidated[follower])
	})

	t.Run("missing pair never invalidates", func(t *testing.T) {
		presort := &stubPresortService{}
		svc := NewFollowService(stubUowFactory{uow: stubUnitOfWork{follows: &stubFollowRepository{}}}, presort, nil, nopLogger{})

		assert.Error(t, svc.Deny(context.Background(), followee, follower))
		assert.Empty(t, presort.invalidated)
	})
}
