package service

import (
	"context"
	"fmt"
	"time"

	"matchfeed-be/internal/constant"
	"matchfeed-be/internal/dto"
	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/pkg/logger"
	"matchfeed-be/internal/repository/memory"
	"matchfeed-be/internal/repository/specification"
	"matchfeed-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICompatibilityService interface {
	// GetPair returns the compatibility summary between viewer and
	// target, deriving and persisting it when stale or absent.
	GetPair(ctx context.Context, viewerId, targetId uuid.UUID) (*dto.GetCompatibilityResponse, error)
	// RefreshForViewer rebuilds summaries for every stored match row of
	// one viewer. Returns the number of summaries written.
	RefreshForViewer(ctx context.Context, viewerId uuid.UUID) (int, error)
}

type compatibilityService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.CompatibilityCache
	log        logger.ILogger
}

func NewCompatibilityService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.CompatibilityCache,
	log logger.ILogger,
) ICompatibilityService {
	return &compatibilityService{
		uowFactory: uowFactory,
		cache:      cache,
		log:        log,
	}
}

// DeriveCompatibilityStatus maps stored signals to the two-state
// summary: READY needs a score row plus quiz or trait signal on both
// sides, anything less is INSUFFICIENT_DATA.
func DeriveCompatibilityStatus(row *entity.MatchScore, viewerHasSignal, targetHasSignal bool) (string, *float64) {
	if row == nil || !viewerHasSignal || !targetHasSignal {
		return entity.CompatibilityInsufficientData, nil
	}
	score := row.Score
	return entity.CompatibilityReady, &score
}

func (s *compatibilityService) GetPair(ctx context.Context, viewerId, targetId uuid.UUID) (*dto.GetCompatibilityResponse, error) {
	if cached, found := s.cache.Get(viewerId, targetId); found {
		return summaryToResponse(cached, nil), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	row, err := uow.MatchScoreRepository().FindOne(ctx,
		specification.ByViewerID{ViewerID: viewerId},
		specification.ByCandidateID{CandidateID: targetId})
	if err != nil {
		return nil, fmt.Errorf("load match score: %w", err)
	}

	// The persisted summary is the second-level cache: current means
	// derived at or after the score row it summarizes.
	stored, err := uow.CompatibilityRepository().FindPair(ctx, viewerId, targetId)
	if err != nil {
		return nil, fmt.Errorf("load stored summary: %w", err)
	}
	if stored != nil && (row == nil || !stored.ComputedAt.Before(row.ComputedAt)) {
		s.cache.Save(stored)
		return summaryToResponse(stored, row), nil
	}

	viewerHasSignal, err := s.hasSignal(ctx, uow, viewerId)
	if err != nil {
		return nil, err
	}
	targetHasSignal, err := s.hasSignal(ctx, uow, targetId)
	if err != nil {
		return nil, err
	}

	status, score := DeriveCompatibilityStatus(row, viewerHasSignal, targetHasSignal)

	summary := &entity.CompatibilitySummary{
		Id:               uuid.New(),
		ViewerId:         viewerId,
		TargetId:         targetId,
		Status:           status,
		Score:            score,
		AlgorithmVersion: constant.AlgorithmVersion,
		ComputedAt:       time.Now(),
	}
	if row != nil {
		summary.AlgorithmVersion = row.AlgorithmVersion
	}

	// Persisting the summary is a cache-fill; failure degrades to
	// recomputing next read.
	if err := uow.CompatibilityRepository().Upsert(ctx, summary); err != nil {
		s.log.Warn("compatibility", "failed to persist summary", map[string]interface{}{
			"viewer_id": viewerId,
			"target_id": targetId,
			"error":     err.Error(),
		})
	}
	s.cache.Save(summary)

	return summaryToResponse(summary, row), nil
}

func (s *compatibilityService) RefreshForViewer(ctx context.Context, viewerId uuid.UUID) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.MatchScoreRepository().FindAll(ctx,
		specification.ByViewerID{ViewerID: viewerId})
	if err != nil {
		return 0, fmt.Errorf("load viewer scores: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	viewerHasSignal, err := s.hasSignal(ctx, uow, viewerId)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, row := range rows {
		targetHasSignal, err := s.hasSignal(ctx, uow, row.CandidateId)
		if err != nil {
			// One unreadable target must not abort the whole refresh.
			s.log.Warn("compatibility", "failed to load target signal", map[string]interface{}{
				"viewer_id": viewerId,
				"target_id": row.CandidateId,
				"error":     err.Error(),
			})
			continue
		}

		status, score := DeriveCompatibilityStatus(row, viewerHasSignal, targetHasSignal)
		summary := &entity.CompatibilitySummary{
			Id:               uuid.New(),
			ViewerId:         viewerId,
			TargetId:         row.CandidateId,
			Status:           status,
			Score:            score,
			AlgorithmVersion: row.AlgorithmVersion,
			ComputedAt:       time.Now(),
		}
		if err := uow.CompatibilityRepository().Upsert(ctx, summary); err != nil {
			s.log.Warn("compatibility", "failed to persist summary", map[string]interface{}{
				"viewer_id": viewerId,
				"target_id": row.CandidateId,
				"error":     err.Error(),
			})
			continue
		}
		s.cache.Save(summary)
		written++
	}
	return written, nil
}

func (s *compatibilityService) hasSignal(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (bool, error) {
	quiz, err := uow.QuizRepository().FindResult(ctx, userId)
	if err != nil {
		return false, fmt.Errorf("load quiz signal: %w", err)
	}
	if quiz != nil && len(quiz.Vector) > 0 {
		return true, nil
	}
	traits, err := uow.TraitRepository().FindAllByUserIds(ctx, []uuid.UUID{userId})
	if err != nil {
		return false, fmt.Errorf("load trait signal: %w", err)
	}
	return len(traits[userId]) > 0, nil
}

func summaryToResponse(summary *entity.CompatibilitySummary, row *entity.MatchScore) *dto.GetCompatibilityResponse {
	res := &dto.GetCompatibilityResponse{
		TargetId:         summary.TargetId,
		Status:           summary.Status,
		Score:            summary.Score,
		AlgorithmVersion: summary.AlgorithmVersion,
	}
	computedAt := summary.ComputedAt
	res.ComputedAt = &computedAt

	if row != nil && summary.Status == entity.CompatibilityReady {
		res.Components = map[string]float64{
			"quiz":           row.ScoreQuiz,
			"traits":         row.ScoreTraits,
			"interests":      row.ScoreInterests,
			"rating_quality": row.ScoreRatingQuality,
			"rating_fit":     row.ScoreRatingFit,
			"proximity":      row.ScoreProximity,
		}
		res.Reasons = row.Reasons
	}
	return res
}
