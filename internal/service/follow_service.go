package service

import (
	"context"
	"fmt"
	"time"

	"matchfeed-be/internal/dto"
	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/pkg/logger"
	"matchfeed-be/internal/repository/specification"
	"matchfeed-be/internal/repository/unitofwork"
	"matchfeed-be/pkg/events"
	"matchfeed-be/pkg/nats"

	"github.com/google/uuid"
)

type IFollowService interface {
	Request(ctx context.Context, followerId, followeeId uuid.UUID) (*dto.FollowResponse, error)
	Approve(ctx context.Context, followeeId, followerId uuid.UUID) (*dto.FollowResponse, error)
	Deny(ctx context.Context, followeeId, followerId uuid.UUID) error
	Revoke(ctx context.Context, followerId, followeeId uuid.UUID) error
}

type followService struct {
	uowFactory unitofwork.RepositoryFactory
	presort    IPresortService
	natsPub    *nats.Publisher
	log        logger.ILogger
}

func NewFollowService(
	uowFactory unitofwork.RepositoryFactory,
	presort IPresortService,
	natsPub *nats.Publisher,
	log logger.ILogger,
) IFollowService {
	return &followService{
		uowFactory: uowFactory,
		presort:    presort,
		natsPub:    natsPub,
		log:        log,
	}
}

func (s *followService) Request(ctx context.Context, followerId, followeeId uuid.UUID) (*dto.FollowResponse, error) {
	if followerId == followeeId {
		return nil, fmt.Errorf("cannot follow yourself")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := s.findPair(ctx, uow, followerId, followeeId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return followToResponse(existing), nil
	}

	follow := &entity.Follow{
		Id:         uuid.New(),
		FollowerId: followerId,
		FolloweeId: followeeId,
		Status:     entity.FollowPending,
		CreatedAt:  time.Now(),
	}
	if err := uow.FollowRepository().Create(ctx, follow); err != nil {
		return nil, fmt.Errorf("create follow request: %w", err)
	}
	return followToResponse(follow), nil
}

func (s *followService) Approve(ctx context.Context, followeeId, followerId uuid.UUID) (*dto.FollowResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	follow, err := s.findPair(ctx, uow, followerId, followeeId)
	if err != nil {
		return nil, err
	}
	if follow == nil {
		return nil, fmt.Errorf("follow request not found")
	}

	follow.Status = entity.FollowApproved
	follow.UpdatedAt = time.Now()
	if err := uow.FollowRepository().Update(ctx, follow); err != nil {
		return nil, fmt.Errorf("approve follow: %w", err)
	}

	// The follower's feed composition changed: their presort is stale.
	s.publishEvent(ctx, events.NewFollowGranted(followerId, followeeId))
	s.presort.InvalidateUser(ctx, followerId, "follow_granted")

	return followToResponse(follow), nil
}

func (s *followService) Deny(ctx context.Context, followeeId, followerId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	follow, err := s.findPair(ctx, uow, followerId, followeeId)
	if err != nil {
		return err
	}
	if follow == nil {
		return fmt.Errorf("follow request not found")
	}

	if err := uow.FollowRepository().Delete(ctx, follow.Id); err != nil {
		return fmt.Errorf("deny follow: %w", err)
	}

	// Over-invalidation is harmless; every relationship mutation takes
	// the same path.
	s.publishEvent(ctx, events.NewFollowDenied(followerId, followeeId))
	s.presort.InvalidateUser(ctx, followerId, "follow_denied")
	return nil
}

func (s *followService) Revoke(ctx context.Context, followerId, followeeId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	follow, err := s.findPair(ctx, uow, followerId, followeeId)
	if err != nil {
		return err
	}
	if follow == nil {
		return fmt.Errorf("follow not found")
	}

	if err := uow.FollowRepository().Delete(ctx, follow.Id); err != nil {
		return fmt.Errorf("revoke follow: %w", err)
	}

	s.publishEvent(ctx, events.NewFollowRevoked(followerId, followeeId))
	s.presort.InvalidateUser(ctx, followerId, "follow_revoked")
	return nil
}

func (s *followService) findPair(ctx context.Context, uow unitofwork.UnitOfWork, followerId, followeeId uuid.UUID) (*entity.Follow, error) {
	follow, err := uow.FollowRepository().FindOne(ctx,
		specification.ByFollowerID{FollowerID: followerId},
		specification.ByFolloweeID{FolloweeID: followeeId},
	)
	if err != nil {
		return nil, fmt.Errorf("load follow pair: %w", err)
	}
	return follow, nil
}

func (s *followService) publishEvent(ctx context.Context, evt events.Event) {
	if s.natsPub == nil {
		return
	}
	if err := s.natsPub.Publish(ctx, evt); err != nil {
		s.log.Warn("follow", "failed to publish event", map[string]interface{}{
			"event": evt.EventType(),
			"error": err.Error(),
		})
	}
}

func followToResponse(f *entity.Follow) *dto.FollowResponse {
	return &dto.FollowResponse{
		Id:         f.Id,
		FollowerId: f.FollowerId,
		FolloweeId: f.FolloweeId,
		Status:     f.Status,
		CreatedAt:  f.CreatedAt,
	}
}
