package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// QuizResult holds one user's latest quiz state. The vector column is
// the normalized answer embedding used for cosine similarity; Answers
// keeps the raw per-question values for the overlap fallback.
type QuizResult struct {
	Id            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Vector        pgvector.Vector `gorm:"type:vector(32)"`
	Answers       datatypes.JSON  `gorm:"type:jsonb"`
	AnsweredCount int             `gorm:"default:0"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}

type QuizQuestion struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Prompt    string    `gorm:"type:text;not null"`
	Category  string    `gorm:"type:varchar(64);index"`
	Active    bool      `gorm:"default:true;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
