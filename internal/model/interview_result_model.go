package model

import (
	"time"

	"github.com/google/uuid"
)

// InterviewResult holds one finished mock-interview session. SessionData is the
// raw array of question/answer/score/feedback exchanges accumulated by the
// client and persisted in bulk at session end.
type InterviewResult struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       int       `gorm:"index" json:"user_id"`
	CareerIntent string    `json:"career_intent"`
	SessionData  string    `gorm:"type:jsonb" json:"session_data"`
	TotalScore   int       `json:"total_score"`
	CreatedAt    time.Time `json:"created_at"`
}

func (i *InterviewResult) TableName() string {
	return "interview_results"
}

// InterviewExchange is one question/answer/score/feedback round inside a
// session. It only exists on the wire and inside SessionData, never as a row
// of its own.
type InterviewExchange struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}
