package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"matchfeed-be/internal/dto"
	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/pkg/logger"
	"matchfeed-be/internal/repository/unitofwork"
	"matchfeed-be/pkg/feed"

	"github.com/google/uuid"
)

// PresortConfig sizes the precomputed cache.
type PresortConfig struct {
	SegmentCount int
	SegmentSize  int
	TTL          time.Duration
	Version      string
}

type IPresortService interface {
	// RecomputeForUser rebuilds every presorted segment for the user.
	RecomputeForUser(ctx context.Context, userId uuid.UUID) error
	// InvalidateUser drops the user's segments and queues a recompute.
	// Readers fall back to live ranking until the recompute lands.
	InvalidateUser(ctx context.Context, userId uuid.UUID, reason string)
}

type presortService struct {
	uowFactory unitofwork.RepositoryFactory
	providers  *FeedProviders
	sequence   []feed.Slot
	actorCap   int
	cfg        PresortConfig
	publisher  IPublisherService
	log        logger.ILogger
}

func NewPresortService(
	uowFactory unitofwork.RepositoryFactory,
	providers *FeedProviders,
	sequence []feed.Slot,
	actorCap int,
	cfg PresortConfig,
	publisher IPublisherService,
	log logger.ILogger,
) IPresortService {
	return &presortService{
		uowFactory: uowFactory,
		providers:  providers,
		sequence:   sequence,
		actorCap:   actorCap,
		cfg:        cfg,
		publisher:  publisher,
		log:        log,
	}
}

func (s *presortService) RecomputeForUser(ctx context.Context, userId uuid.UUID) error {
	candidates, err := s.providers.collect(ctx, userId)
	if err != nil {
		return fmt.Errorf("collect feed candidates: %w", err)
	}

	// Presorted segments are computed unseeded: per-request seeds only
	// apply to live ranking.
	ranker := feed.NewRanker(feed.RankerConfig{
		Sequence: s.sequence,
		ActorCap: s.actorCap,
	})
	ranked := ranker.Rank(candidates, s.cfg.SegmentCount*s.cfg.SegmentSize)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	for index := 0; index < s.cfg.SegmentCount; index++ {
		start := index * s.cfg.SegmentSize
		if start >= len(ranked) {
			break
		}
		end := start + s.cfg.SegmentSize
		if end > len(ranked) {
			end = len(ranked)
		}

		refs := feed.RefsOf(ranked[start:end])
		payload, kept, err := feed.EncodePhase1(refs)
		if err != nil {
			return fmt.Errorf("encode segment %d: %w", index, err)
		}
		if kept < len(refs) {
			s.log.Debug("presort", "phase-1 payload truncated", map[string]interface{}{
				"user_id": userId,
				"segment": index,
				"kept":    kept,
				"total":   len(refs),
			})
		}

		segment := &entity.PresortedFeedSegment{
			Id:               uuid.New(),
			UserId:           userId,
			SegmentIndex:     index,
			Items:            refs,
			Phase1Payload:    payload,
			AlgorithmVersion: s.cfg.Version,
			ComputedAt:       now,
			ExpiresAt:        now.Add(s.cfg.TTL),
		}
		if err := uow.PresortRepository().Upsert(ctx, segment); err != nil {
			return fmt.Errorf("store segment %d: %w", index, err)
		}
	}

	return nil
}

func (s *presortService) InvalidateUser(ctx context.Context, userId uuid.UUID, reason string) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PresortRepository().DeleteAllForUser(ctx, userId); err != nil {
		s.log.Warn("presort", "failed to drop segments", map[string]interface{}{
			"user_id": userId,
			"reason":  reason,
			"error":   err.Error(),
		})
	}

	msg, err := json.Marshal(dto.PresortRecomputeMessage{UserId: userId, Reason: reason})
	if err != nil {
		return
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.log.Warn("presort", "failed to queue recompute", map[string]interface{}{
			"user_id": userId,
			"reason":  reason,
			"error":   err.Error(),
		})
	}
}
