package service

import (
	"context"
	"fmt"

	"matchfeed-be/internal/pkg/logger"
	"matchfeed-be/internal/repository/memory"
	"matchfeed-be/pkg/events"
	pktNats "matchfeed-be/pkg/nats"

	"github.com/google/uuid"
)

type IInvalidationService interface {
	Start() error
}

// invalidationService bridges the NATS bus to presort invalidation.
// Score replacement can happen in another process (the batch job), so
// the REST process learns about it from the durable consumer rather
// than a direct call.
type invalidationService struct {
	natsSub   *pktNats.Subscriber
	presort   IPresortService
	pairCache *memory.CompatibilityCache
	log       logger.ILogger
}

func NewInvalidationService(
	natsSub *pktNats.Subscriber,
	presort IPresortService,
	pairCache *memory.CompatibilityCache,
	log logger.ILogger,
) IInvalidationService {
	return &invalidationService{
		natsSub:   natsSub,
		presort:   presort,
		pairCache: pairCache,
		log:       log,
	}
}

func (s *invalidationService) Start() error {
	subject := fmt.Sprintf("matchfeed.%s", events.EventMatchScoresReplaced)
	return s.natsSub.Subscribe(subject, "presort-invalidator", s.onScoresReplaced)
}

func (s *invalidationService) onScoresReplaced(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	raw, ok := payload["viewer_id"].(string)
	if !ok {
		// Malformed events never succeed on retry.
		s.log.Warn("invalidation", "event missing viewer_id", map[string]interface{}{
			"event": event.EventType(),
		})
		return nil
	}

	viewerId, err := uuid.Parse(raw)
	if err != nil {
		s.log.Warn("invalidation", "event has invalid viewer_id", map[string]interface{}{
			"viewer_id": raw,
		})
		return nil
	}

	// Fresh scores make both the presorted segments and any cached pair
	// summaries for this viewer stale.
	s.pairCache.InvalidateAllFor(viewerId)
	s.presort.InvalidateUser(ctx, viewerId, "match_scores_replaced")
	return nil
}
