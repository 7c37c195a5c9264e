package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserInterest struct {
	Id     uuid.UUID
	UserId uuid.UUID
	Key    string
}

type UserTrait struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Key        string
	Value      float64
	Confidence float64
}

type Rating struct {
	Id        uuid.UUID
	RaterId   uuid.UUID
	TargetId  uuid.UUID
	Value     float64
	CreatedAt time.Time
}

// RatingAggregate is the viewer-agnostic received-rating summary.
type RatingAggregate struct {
	UserId  uuid.UUID
	Average float64
	Count   int
}

type QuizResult struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	Vector        []float32
	Answers       map[string]string
	AnsweredCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type QuizQuestion struct {
	Id        uuid.UUID
	Prompt    string
	Category  string
	Active    bool
	CreatedAt time.Time
}
