package model

import "time"

// InterviewResponse captures one answered question inside a mock interview,
// including the score assigned by the response scorer.
type InterviewResponse struct {
	QuestionID string  `json:"question_id"`
	Response   string  `json:"response"`
	TimeSpent  float64 `json:"time_spent"` // minutes
	Confidence int     `json:"confidence"` // 1-5 scale
	Score      int     `json:"score"`      // 0-100
}

// MockInterview is an append-only record of a completed mock interview.
// Questions keeps the snapshot of what was asked, in order, so the record
// stays readable even if the catalogue changes.
type MockInterview struct {
	ID           string              `json:"id"`
	Timestamp    time.Time           `json:"timestamp"`
	Duration     float64             `json:"duration"` // minutes
	Questions    []Question          `json:"questions"`
	Responses    []InterviewResponse `json:"responses"`
	OverallScore float64             `json:"overall_score"` // mean of response scores, unrounded
	Feedback     string              `json:"feedback"`
}
