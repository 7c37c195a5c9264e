package mapper

import (
	"encoding/json"

	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/model"

	"gorm.io/datatypes"
)

type MatchMapper struct{}

func NewMatchMapper() *MatchMapper {
	return &MatchMapper{}
}

func (m *MatchMapper) ToEntity(s *model.MatchScore) *entity.MatchScore {
	if s == nil {
		return nil
	}

	reasons := make(map[string]interface{})
	if len(s.Reasons) > 0 {
		_ = json.Unmarshal(s.Reasons, &reasons)
	}

	return &entity.MatchScore{
		Id:                 s.Id,
		ViewerId:           s.ViewerId,
		CandidateId:        s.CandidateId,
		Score:              s.Score,
		ScoreQuiz:          s.ScoreQuiz,
		ScoreTraits:        s.ScoreTraits,
		ScoreInterests:     s.ScoreInterests,
		ScoreRatingQuality: s.ScoreRatingQuality,
		ScoreRatingFit:     s.ScoreRatingFit,
		ScoreProximity:     s.ScoreProximity,
		DistanceKm:         s.DistanceKm,
		Tier:               s.Tier,
		Reasons:            reasons,
		AlgorithmVersion:   s.AlgorithmVersion,
		ComputedAt:         s.ComputedAt,
	}
}

func (m *MatchMapper) ToModel(s *entity.MatchScore) *model.MatchScore {
	if s == nil {
		return nil
	}

	reasons, _ := json.Marshal(s.Reasons)

	return &model.MatchScore{
		Id:                 s.Id,
		ViewerId:           s.ViewerId,
		CandidateId:        s.CandidateId,
		Score:              s.Score,
		ScoreQuiz:          s.ScoreQuiz,
		ScoreTraits:        s.ScoreTraits,
		ScoreInterests:     s.ScoreInterests,
		ScoreRatingQuality: s.ScoreRatingQuality,
		ScoreRatingFit:     s.ScoreRatingFit,
		ScoreProximity:     s.ScoreProximity,
		DistanceKm:         s.DistanceKm,
		Tier:               s.Tier,
		Reasons:            datatypes.JSON(reasons),
		AlgorithmVersion:   s.AlgorithmVersion,
		ComputedAt:         s.ComputedAt,
	}
}

func (m *MatchMapper) ToEntities(scores []*model.MatchScore) []*entity.MatchScore {
	entities := make([]*entity.MatchScore, len(scores))
	for i, s := range scores {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *MatchMapper) ToModels(scores []*entity.MatchScore) []*model.MatchScore {
	models := make([]*model.MatchScore, len(scores))
	for i, s := range scores {
		models[i] = m.ToModel(s)
	}
	return models
}

func (m *MatchMapper) SummaryToEntity(s *model.CompatibilitySummary) *entity.CompatibilitySummary {
	if s == nil {
		return nil
	}
	return &entity.CompatibilitySummary{
		Id:               s.Id,
		ViewerId:         s.ViewerId,
		TargetId:         s.TargetId,
		Status:           s.Status,
		Score:            s.Score,
		AlgorithmVersion: s.AlgorithmVersion,
		ComputedAt:       s.ComputedAt,
	}
}

func (m *MatchMapper) SummaryToModel(s *entity.CompatibilitySummary) *model.CompatibilitySummary {
	if s == nil {
		return nil
	}
	return &model.CompatibilitySummary{
		Id:               s.Id,
		ViewerId:         s.ViewerId,
		TargetId:         s.TargetId,
		Status:           s.Status,
		Score:            s.Score,
		AlgorithmVersion: s.AlgorithmVersion,
		ComputedAt:       s.ComputedAt,
	}
}
