package service

import (
	"context"
	"fmt"
	"time"

	"matchfeed-be/internal/constant"
	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/pkg/logger"
	"matchfeed-be/internal/repository/specification"
	"matchfeed-be/internal/repository/unitofwork"
	"matchfeed-be/pkg/events"
	"matchfeed-be/pkg/nats"
	"matchfeed-be/pkg/scoring"

	"github.com/google/uuid"
)

// RecomputeOptions tunes one scoring pass. Zero values fall back to
// configured defaults; Sleep is injectable so batch tests run without
// real delays.
type RecomputeOptions struct {
	BatchSize int
	Pause     time.Duration
	Version   string
	Sleep     func(time.Duration)
}

func (o *RecomputeOptions) normalize() {
	if o.BatchSize <= 0 {
		o.BatchSize = constant.DefaultBatchSize
	}
	if o.Pause <= 0 {
		o.Pause = constant.DefaultBatchPauseMs * time.Millisecond
	}
	if o.Version == "" {
		o.Version = constant.AlgorithmVersion
	}
	if o.Sleep == nil {
		o.Sleep = time.Sleep
	}
}

type IMatchService interface {
	// RecomputeForViewer scores every eligible candidate for one viewer
	// and atomically replaces the viewer's stored score set. Returns the
	// number of rows written.
	RecomputeForViewer(ctx context.Context, viewerId uuid.UUID, opts RecomputeOptions) (int, error)
	// RecomputeAll runs RecomputeForViewer for every user. A failing
	// viewer is logged and skipped, never aborts the run.
	RecomputeAll(ctx context.Context, opts RecomputeOptions) (processed int, skipped int, err error)
}

type matchService struct {
	uowFactory unitofwork.RepositoryFactory
	aggregator *scoring.Aggregator
	topK       int
	natsPub    *nats.Publisher
	log        logger.ILogger
}

func NewMatchService(
	uowFactory unitofwork.RepositoryFactory,
	aggregator *scoring.Aggregator,
	topK int,
	natsPub *nats.Publisher,
	log logger.ILogger,
) IMatchService {
	return &matchService{
		uowFactory: uowFactory,
		aggregator: aggregator,
		topK:       topK,
		natsPub:    natsPub,
		log:        log,
	}
}

func (s *matchService) RecomputeForViewer(ctx context.Context, viewerId uuid.UUID, opts RecomputeOptions) (int, error) {
	opts.normalize()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	viewerCtx, err := s.buildViewerContext(ctx, uow, viewerId)
	if err != nil {
		return 0, fmt.Errorf("build viewer context: %w", err)
	}

	candidateIds, err := uow.UserRepository().FindCandidateIDs(ctx, viewerId)
	if err != nil {
		return 0, fmt.Errorf("list candidates: %w", err)
	}

	heap := scoring.NewTopK(s.topK)
	now := time.Now()

	for start := 0; start < len(candidateIds); start += opts.BatchSize {
		end := start + opts.BatchSize
		if end > len(candidateIds) {
			end = len(candidateIds)
		}
		batch := candidateIds[start:end]

		candidates, err := s.buildCandidateContexts(ctx, uow, batch, now)
		if err != nil {
			return 0, fmt.Errorf("build candidate contexts: %w", err)
		}

		for _, cand := range candidates {
			if !cand.Validate() {
				s.log.Warn("match", "skipping candidate with invalid signals", map[string]interface{}{
					"viewer_id":    viewerId,
					"candidate_id": cand.UserID,
				})
				continue
			}

			// Prune before full scoring once the heap is full: the
			// upper bound never underestimates the real total.
			if bar, ok := heap.Min(); ok && heap.Len() == s.topK {
				if s.aggregator.UpperBound(viewerCtx, cand) <= bar {
					continue
				}
			}

			agg := s.aggregator.Evaluate(viewerCtx, cand)
			if agg.Excluded {
				continue
			}

			heap.Push(scoring.Entry{
				ID:      cand.UserID,
				Score:   agg.Total,
				Payload: &candidateResult{agg: agg, cand: cand},
			})
		}

		if end < len(candidateIds) && opts.Pause > 0 {
			opts.Sleep(opts.Pause)
		}
	}

	rows := s.entriesToRows(viewerId, heap.ToArray(), viewerCtx, opts.Version, now)
	if err := uow.MatchScoreRepository().ReplaceForViewer(ctx, viewerId, rows); err != nil {
		return 0, fmt.Errorf("replace viewer scores: %w", err)
	}

	// Downstream consumers (presort recompute, analytics) are advisory;
	// a publish failure never fails the scoring pass.
	if s.natsPub != nil {
		evt := events.NewMatchScoresReplaced(viewerId, len(rows), opts.Version)
		if err := s.natsPub.Publish(ctx, evt); err != nil {
			s.log.Warn("match", "failed to publish score replacement event", map[string]interface{}{
				"viewer_id": viewerId,
				"error":     err.Error(),
			})
		}
	}

	return len(rows), nil
}

func (s *matchService) RecomputeAll(ctx context.Context, opts RecomputeOptions) (int, int, error) {
	opts.normalize()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("list users: %w", err)
	}

	processed, skipped := 0, 0
	for _, user := range users {
		if _, err := s.RecomputeForViewer(ctx, user.Id, opts); err != nil {
			s.log.Error("match", "viewer recompute failed", map[string]interface{}{
				"viewer_id": user.Id,
				"error":     err.Error(),
			})
			skipped++
			continue
		}
		processed++
	}
	return processed, skipped, nil
}

// candidateResult keeps the aggregate next to the context it was scored
// from so row building can read distance and tier without re-deriving.
type candidateResult struct {
	agg  *scoring.Aggregate
	cand *scoring.CandidateContext
}

func (s *matchService) entriesToRows(viewerId uuid.UUID, entries []scoring.Entry, viewerCtx *scoring.ViewerContext, version string, now time.Time) []*entity.MatchScore {
	rows := make([]*entity.MatchScore, 0, len(entries))
	for _, e := range entries {
		res, ok := e.Payload.(*candidateResult)
		if !ok {
			continue
		}
		agg := res.agg

		tier := entity.TierB
		if agg.TierA {
			tier = entity.TierA
		}

		rows = append(rows, &entity.MatchScore{
			Id:                 uuid.New(),
			ViewerId:           viewerId,
			CandidateId:        e.ID,
			Score:              agg.Total,
			ScoreQuiz:          agg.Components["quiz"],
			ScoreTraits:        agg.Components["traits"],
			ScoreInterests:     agg.Components["interests"],
			ScoreRatingQuality: agg.Components["rating_quality"],
			ScoreRatingFit:     agg.Components["rating_fit"],
			ScoreProximity:     agg.Components["proximity"],
			DistanceKm:         scoring.DistanceKm(viewerCtx, res.cand),
			Tier:               tier,
			Reasons:            agg.Reasons,
			AlgorithmVersion:   version,
			ComputedAt:         now,
		})
	}
	return rows
}

func (s *matchService) buildViewerContext(ctx context.Context, uow unitofwork.UnitOfWork, viewerId uuid.UUID) (*scoring.ViewerContext, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: viewerId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("viewer %s not found", viewerId)
	}

	interests, err := uow.InterestRepository().FindAllByUserIds(ctx, []uuid.UUID{viewerId})
	if err != nil {
		return nil, err
	}
	traits, err := uow.TraitRepository().FindAllByUserIds(ctx, []uuid.UUID{viewerId})
	if err != nil {
		return nil, err
	}
	quiz, err := uow.QuizRepository().FindResult(ctx, viewerId)
	if err != nil {
		return nil, err
	}
	given, err := uow.RatingRepository().FindAllByRater(ctx, viewerId)
	if err != nil {
		return nil, err
	}
	blocked, err := uow.BlockRepository().BlockedPairIDs(ctx, viewerId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	vc := &scoring.ViewerContext{
		UserID:       user.Id,
		Gender:       user.Gender,
		Age:          user.Age(now),
		Interests:    interestSet(interests[viewerId]),
		Traits:       traitMap(traits[viewerId]),
		RatingsGiven: ratingMap(given),
		Latitude:     user.Latitude,
		Longitude:    user.Longitude,
		City:         user.City,
		CreatedAt:    user.CreatedAt,
		Blocked:      blocked,
		Prefs: scoring.PreferencesContext{
			Genders:       user.Prefs.Genders,
			AgeMin:        user.Prefs.AgeMin,
			AgeMax:        user.Prefs.AgeMax,
			MaxDistanceKm: user.Prefs.MaxDistanceKm,
		},
	}
	if quiz != nil {
		vc.QuizVector = quiz.Vector
		vc.QuizAnswers = quiz.Answers
	}
	if !vc.Validate() {
		return nil, fmt.Errorf("viewer %s has invalid scoring signals", viewerId)
	}
	return vc, nil
}

func (s *matchService) buildCandidateContexts(ctx context.Context, uow unitofwork.UnitOfWork, ids []uuid.UUID, now time.Time) ([]*scoring.CandidateContext, error) {
	users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	interests, err := uow.InterestRepository().FindAllByUserIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	traits, err := uow.TraitRepository().FindAllByUserIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	quizzes, err := uow.QuizRepository().FindResultsByUserIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	given, err := uow.RatingRepository().FindAllByRaters(ctx, ids)
	if err != nil {
		return nil, err
	}
	received, err := uow.RatingRepository().ReceivedAggregates(ctx, ids)
	if err != nil {
		return nil, err
	}

	contexts := make([]*scoring.CandidateContext, 0, len(users))
	for _, user := range users {
		cc := &scoring.CandidateContext{
			UserID:       user.Id,
			Gender:       user.Gender,
			Age:          user.Age(now),
			Interests:    interestSet(interests[user.Id]),
			Traits:       traitMap(traits[user.Id]),
			RatingsGiven: ratingMap(given[user.Id]),
			Latitude:     user.Latitude,
			Longitude:    user.Longitude,
			City:         user.City,
			CreatedAt:    user.CreatedAt,
		}
		if quiz := quizzes[user.Id]; quiz != nil {
			cc.QuizVector = quiz.Vector
			cc.QuizAnswers = quiz.Answers
		}
		if agg := received[user.Id]; agg != nil {
			cc.ReceivedRatingAvg = agg.Average
			cc.ReceivedRatingCount = agg.Count
		}
		contexts = append(contexts, cc)
	}
	return contexts, nil
}

func interestSet(interests []*entity.UserInterest) map[string]bool {
	set := make(map[string]bool, len(interests))
	for _, i := range interests {
		set[i.Key] = true
	}
	return set
}

func traitMap(traits []*entity.UserTrait) map[string]scoring.TraitValue {
	m := make(map[string]scoring.TraitValue, len(traits))
	for _, t := range traits {
		m[t.Key] = scoring.TraitValue{Value: t.Value, Confidence: t.Confidence}
	}
	return m
}

func ratingMap(ratings []*entity.Rating) map[uuid.UUID]float64 {
	m := make(map[uuid.UUID]float64, len(ratings))
	for _, r := range ratings {
		m[r.TargetId] = r.Value
	}
	return m
}
