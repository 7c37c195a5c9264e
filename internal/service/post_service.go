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

type IPostService interface {
	// UpdateVisibility flips a post between public and followers-only
	// and invalidates every follower's presorted feed.
	UpdateVisibility(ctx context.Context, authorId uuid.UUID, req *dto.UpdatePostVisibilityRequest) (*dto.UpdatePostVisibilityResponse, error)
}

type postService struct {
	uowFactory unitofwork.RepositoryFactory
	presort    IPresortService
	natsPub    *nats.Publisher
	log        logger.ILogger
}

func NewPostService(
	uowFactory unitofwork.RepositoryFactory,
	presort IPresortService,
	natsPub *nats.Publisher,
	log logger.ILogger,
) IPostService {
	return &postService{
		uowFactory: uowFactory,
		presort:    presort,
		natsPub:    natsPub,
		log:        log,
	}
}

func (s *postService) UpdateVisibility(ctx context.Context, authorId uuid.UUID, req *dto.UpdatePostVisibilityRequest) (*dto.UpdatePostVisibilityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.PostRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, fmt.Errorf("load post: %w", err)
	}
	if post == nil || post.AuthorId != authorId {
		return nil, fmt.Errorf("post not found")
	}
	if post.Visibility == req.Visibility {
		return &dto.UpdatePostVisibilityResponse{Id: post.Id, Visibility: post.Visibility}, nil
	}

	post.Visibility = req.Visibility
	post.UpdatedAt = time.Now()
	if err := uow.PostRepository().Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post visibility: %w", err)
	}

	if s.natsPub != nil {
		evt := events.NewPostVisibilityChanged(post.Id, authorId, post.Visibility)
		if err := s.natsPub.Publish(ctx, evt); err != nil {
			s.log.Warn("post", "failed to publish visibility event", map[string]interface{}{
				"post_id": post.Id,
				"error":   err.Error(),
			})
		}
	}

	// Everyone following the author may have this post cached in a
	// presorted segment.
	followers, err := uow.FollowRepository().FindAll(ctx,
		specification.ByFolloweeID{FolloweeID: authorId},
		specification.ByFollowStatus{Status: entity.FollowApproved},
	)
	if err != nil {
		s.log.Warn("post", "failed to list followers for invalidation", map[string]interface{}{
			"author_id": authorId,
			"error":     err.Error(),
		})
	} else {
		for _, f := range followers {
			s.presort.InvalidateUser(ctx, f.FollowerId, "post_visibility_changed")
		}
	}

	return &dto.UpdatePostVisibilityResponse{Id: post.Id, Visibility: post.Visibility}, nil
}
