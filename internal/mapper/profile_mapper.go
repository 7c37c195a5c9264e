package mapper

import (
	"encoding/json"

	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) InterestToEntity(i *model.UserInterest) *entity.UserInterest {
	if i == nil {
		return nil
	}
	return &entity.UserInterest{Id: i.Id, UserId: i.UserId, Key: i.Key}
}

func (m *ProfileMapper) InterestsToEntities(interests []*model.UserInterest) []*entity.UserInterest {
	entities := make([]*entity.UserInterest, len(interests))
	for i, it := range interests {
		entities[i] = m.InterestToEntity(it)
	}
	return entities
}

func (m *ProfileMapper) TraitToEntity(t *model.UserTrait) *entity.UserTrait {
	if t == nil {
		return nil
	}
	return &entity.UserTrait{
		Id:         t.Id,
		UserId:     t.UserId,
		Key:        t.Key,
		Value:      t.Value,
		Confidence: t.Confidence,
	}
}

func (m *ProfileMapper) TraitsToEntities(traits []*model.UserTrait) []*entity.UserTrait {
	entities := make([]*entity.UserTrait, len(traits))
	for i, t := range traits {
		entities[i] = m.TraitToEntity(t)
	}
	return entities
}

func (m *ProfileMapper) RatingToEntity(r *model.Rating) *entity.Rating {
	if r == nil {
		return nil
	}
	return &entity.Rating{
		Id:        r.Id,
		RaterId:   r.RaterId,
		TargetId:  r.TargetId,
		Value:     r.Value,
		CreatedAt: r.CreatedAt,
	}
}

func (m *ProfileMapper) RatingsToEntities(ratings []*model.Rating) []*entity.Rating {
	entities := make([]*entity.Rating, len(ratings))
	for i, r := range ratings {
		entities[i] = m.RatingToEntity(r)
	}
	return entities
}

func (m *ProfileMapper) QuizResultToEntity(q *model.QuizResult) *entity.QuizResult {
	if q == nil {
		return nil
	}

	answers := make(map[string]string)
	if len(q.Answers) > 0 {
		// Corrupt answer payloads degrade to "no answers", never error
		_ = json.Unmarshal(q.Answers, &answers)
	}

	return &entity.QuizResult{
		Id:            q.Id,
		UserId:        q.UserId,
		Vector:        q.Vector.Slice(),
		Answers:       answers,
		AnsweredCount: q.AnsweredCount,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

func (m *ProfileMapper) QuizResultToModel(q *entity.QuizResult) *model.QuizResult {
	if q == nil {
		return nil
	}

	answers, _ := json.Marshal(q.Answers)

	return &model.QuizResult{
		Id:            q.Id,
		UserId:        q.UserId,
		Vector:        pgvector.NewVector(q.Vector),
		Answers:       datatypes.JSON(answers),
		AnsweredCount: q.AnsweredCount,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

func (m *ProfileMapper) QuizQuestionToEntity(q *model.QuizQuestion) *entity.QuizQuestion {
	if q == nil {
		return nil
	}
	return &entity.QuizQuestion{
		Id:        q.Id,
		Prompt:    q.Prompt,
		Category:  q.Category,
		Active:    q.Active,
		CreatedAt: q.CreatedAt,
	}
}

func (m *ProfileMapper) QuizQuestionsToEntities(questions []*model.QuizQuestion) []*entity.QuizQuestion {
	entities := make([]*entity.QuizQuestion, len(questions))
	for i, q := range questions {
		entities[i] = m.QuizQuestionToEntity(q)
	}
	return entities
}
