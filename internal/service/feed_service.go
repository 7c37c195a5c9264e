package service

import (
	"context"
	"fmt"
	"time"

	"matchfeed-be/internal/constant"
	"matchfeed-be/internal/dto"
	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/pkg/logger"
	"matchfeed-be/internal/pkg/seencache"
	"matchfeed-be/internal/repository/specification"
	"matchfeed-be/internal/repository/unitofwork"
	"matchfeed-be/pkg/feed"

	"github.com/google/uuid"
)

type IFeedService interface {
	GetFeed(ctx context.Context, userId uuid.UUID, req *dto.GetFeedRequest) (*dto.GetFeedResponse, error)
}

type feedService struct {
	uowFactory unitofwork.RepositoryFactory
	providers  *FeedProviders
	presort    IPresortService
	seenCache  *seencache.SeenCache
	sequence   []feed.Slot
	actorCap   int
	segSize    int
	version    string
	log        logger.ILogger
}

func NewFeedService(
	uowFactory unitofwork.RepositoryFactory,
	providers *FeedProviders,
	presort IPresortService,
	seenCache *seencache.SeenCache,
	sequence []feed.Slot,
	actorCap int,
	segSize int,
	version string,
	log logger.ILogger,
) IFeedService {
	return &feedService{
		uowFactory: uowFactory,
		providers:  providers,
		presort:    presort,
		seenCache:  seenCache,
		sequence:   sequence,
		actorCap:   actorCap,
		segSize:    segSize,
		version:    version,
		log:        log,
	}
}

func (s *feedService) GetFeed(ctx context.Context, userId uuid.UUID, req *dto.GetFeedRequest) (*dto.GetFeedResponse, error) {
	count := req.Count
	if count <= 0 {
		count = constant.DefaultFeedCount
	}
	if count > constant.MaxFeedCount {
		count = constant.MaxFeedCount
	}

	// A caller-provided seed or debug request bypasses the presorted
	// cache: both need a fresh ranking pass.
	if req.Seed == nil && !req.Debug {
		if res, ok := s.fromPresort(ctx, userId, req.Cursor, count, req.MarkSeen); ok {
			return res, nil
		}
	}

	items, err := s.rankLive(ctx, userId, req.Seed, req.Cursor, count)
	if err != nil {
		return nil, err
	}

	responses, err := s.hydrate(ctx, userId, items, req.Debug)
	if err != nil {
		return nil, err
	}

	if req.MarkSeen {
		s.markSeen(ctx, userId, items)
	}

	return &dto.GetFeedResponse{
		Items:      responses,
		NextCursor: req.Cursor + len(responses),
		Source:     "live",
	}, nil
}

// fromPresort serves the request from cached segments when a fresh,
// version-matching, unexpired segment covers the cursor. Any miss
// (absent, expired, stale version, corrupt) falls back to live ranking.
func (s *feedService) fromPresort(ctx context.Context, userId uuid.UUID, cursor, count int, markSeen bool) (*dto.GetFeedResponse, bool) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	index := cursor / s.segSize
	offset := cursor % s.segSize

	segment, err := uow.PresortRepository().FindSegment(ctx, userId, index)
	if err != nil {
		// Corrupt segments must not break the feed; recompute and move on.
		s.log.Warn("feed", "presort segment unreadable", map[string]interface{}{
			"user_id": userId,
			"segment": index,
			"error":   err.Error(),
		})
		s.presort.InvalidateUser(ctx, userId, "corrupt_segment")
		return nil, false
	}
	if segment == nil {
		s.presort.InvalidateUser(ctx, userId, "segment_missing")
		return nil, false
	}
	if segment.Expired(now) || segment.AlgorithmVersion != s.version {
		s.presort.InvalidateUser(ctx, userId, "segment_stale")
		return nil, false
	}
	if offset >= len(segment.Items) {
		return nil, false
	}

	refs := segment.Items[offset:]
	if len(refs) > count {
		refs = refs[:count]
	}
	items := feed.ItemsOf(refs)
	items = s.dropRecentlySeen(ctx, userId, items)

	responses, err := s.hydrate(ctx, userId, items, false)
	if err != nil {
		s.log.Warn("feed", "presort hydration failed", map[string]interface{}{
			"user_id": userId,
			"segment": index,
			"error":   err.Error(),
		})
		return nil, false
	}

	if markSeen {
		s.markSeen(ctx, userId, items)
	}

	computedAt := segment.ComputedAt
	return &dto.GetFeedResponse{
		Items:      responses,
		NextCursor: cursor + len(responses),
		Source:     "presort",
		ComputedAt: &computedAt,
	}, true
}

func (s *feedService) rankLive(ctx context.Context, userId uuid.UUID, seed *uint32, cursor, count int) ([]*feed.Item, error) {
	candidates, err := s.providers.collect(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("collect feed candidates: %w", err)
	}
	candidates = s.dropRecentlySeen(ctx, userId, candidates)

	ranker := feed.NewRanker(feed.RankerConfig{
		Sequence: s.sequence,
		ActorCap: s.actorCap,
		Seed:     seed,
	})
	ranked := ranker.Rank(candidates, cursor+count)
	if cursor >= len(ranked) {
		return nil, nil
	}
	return ranked[cursor:], nil
}

// dropRecentlySeen filters posts and suggestions still inside the seen
// window. Redis trouble falls back to the durable markers, and failing
// that degrades to an unfiltered feed, never an error.
func (s *feedService) dropRecentlySeen(ctx context.Context, userId uuid.UUID, items []*feed.Item) []*feed.Item {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if item.Type != feed.TypeQuestion {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return items
	}

	seen, err := s.seenCache.RecentlySeen(ctx, userId, ids)
	if err != nil {
		s.log.Warn("feed", "seen window unavailable, using durable markers", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		uow := s.uowFactory.NewUnitOfWork(ctx)
		since := time.Now().Add(-s.seenCache.Window())
		seen, err = uow.FeedSeenRepository().SeenItemIDs(ctx, userId, since)
		if err != nil {
			s.log.Warn("feed", "durable seen markers unavailable", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
			return items
		}
	}

	kept := items[:0]
	for _, item := range items {
		if item.Type != feed.TypeQuestion && seen[item.ID] {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

func (s *feedService) markSeen(ctx context.Context, userId uuid.UUID, items []*feed.Item) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if item.Type != feed.TypeQuestion {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return
	}

	if err := s.seenCache.MarkSeen(ctx, userId, ids); err != nil {
		s.log.Warn("feed", "failed to mark seen window", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	for _, item := range items {
		if item.Type == feed.TypeQuestion {
			continue
		}
		seen := &entity.FeedSeen{
			Id:       uuid.New(),
			UserId:   userId,
			ItemType: string(item.Type),
			ItemId:   item.ID,
			SeenAt:   time.Now(),
		}
		if err := uow.FeedSeenRepository().MarkSeen(ctx, seen); err != nil {
			s.log.Warn("feed", "failed to persist seen marker", map[string]interface{}{
				"user_id": userId,
				"item_id": item.ID,
				"error":   err.Error(),
			})
		}
	}
}

func (s *feedService) hydrate(ctx context.Context, userId uuid.UUID, items []*feed.Item, debug bool) ([]*dto.FeedItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	postIds := make([]uuid.UUID, 0)
	userIds := make([]uuid.UUID, 0)
	questionIds := make([]uuid.UUID, 0)
	for _, item := range items {
		switch item.Type {
		case feed.TypePost:
			postIds = append(postIds, item.ID)
		case feed.TypeSuggestion:
			userIds = append(userIds, item.ID)
		case feed.TypeQuestion:
			questionIds = append(questionIds, item.ID)
		}
	}

	posts := make(map[uuid.UUID]*entity.Post)
	if len(postIds) > 0 {
		found, err := uow.PostRepository().FindAll(ctx, specification.ByIDs{IDs: postIds})
		if err != nil {
			return nil, fmt.Errorf("hydrate posts: %w", err)
		}
		for _, p := range found {
			posts[p.Id] = p
		}
	}

	profiles := make(map[uuid.UUID]*entity.User)
	if len(userIds) > 0 {
		found, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: userIds})
		if err != nil {
			return nil, fmt.Errorf("hydrate profiles: %w", err)
		}
		for _, u := range found {
			profiles[u.Id] = u
		}
	}

	questions := make(map[uuid.UUID]*entity.QuizQuestion)
	if len(questionIds) > 0 {
		found, err := uow.QuizRepository().FindQuestions(ctx, specification.ByIDs{IDs: questionIds})
		if err != nil {
			return nil, fmt.Errorf("hydrate questions: %w", err)
		}
		for _, q := range found {
			questions[q.Id] = q
		}
	}

	var breakdowns map[uuid.UUID]*entity.MatchScore
	if debug && len(userIds) > 0 {
		rows, err := uow.MatchScoreRepository().FindAll(ctx,
			specification.ByViewerID{ViewerID: userId})
		if err != nil {
			return nil, fmt.Errorf("hydrate breakdowns: %w", err)
		}
		breakdowns = make(map[uuid.UUID]*entity.MatchScore, len(rows))
		for _, row := range rows {
			breakdowns[row.CandidateId] = row
		}
	}

	responses := make([]*dto.FeedItemResponse, 0, len(items))
	for _, item := range items {
		res := &dto.FeedItemResponse{
			Type:    string(item.Type),
			Id:      item.ID,
			ActorId: item.ActorID,
			Score:   item.Score,
		}
		if item.Hint != nil {
			res.Layout = item.Hint.Layout
			res.Accent = item.Hint.Accent
		}

		switch item.Type {
		case feed.TypePost:
			post, ok := posts[item.ID]
			if !ok {
				continue // deleted since ranking; skip silently
			}
			res.Payload = map[string]interface{}{
				"caption":       post.Caption,
				"media_type":    post.MediaType,
				"media_url":     post.MediaURL,
				"like_count":    post.LikeCount,
				"comment_count": post.CommentCount,
				"created_at":    post.CreatedAt,
			}
		case feed.TypeSuggestion:
			profile, ok := profiles[item.ID]
			if !ok {
				continue
			}
			res.Payload = map[string]interface{}{
				"username":     profile.Username,
				"display_name": profile.DisplayName,
				"city":         profile.City,
				"bio":          profile.Bio,
				"tier":         item.SubKey,
			}
			if row := breakdowns[item.ID]; row != nil {
				res.Breakdown = map[string]interface{}{
					"quiz":           row.ScoreQuiz,
					"traits":         row.ScoreTraits,
					"interests":      row.ScoreInterests,
					"rating_quality": row.ScoreRatingQuality,
					"rating_fit":     row.ScoreRatingFit,
					"proximity":      row.ScoreProximity,
					"reasons":        row.Reasons,
				}
			}
		case feed.TypeQuestion:
			q, ok := questions[item.ID]
			if !ok {
				continue
			}
			res.Payload = map[string]interface{}{
				"prompt":   q.Prompt,
				"category": q.Category,
			}
		}

		responses = append(responses, res)
	}
	return responses, nil
}
