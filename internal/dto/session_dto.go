package dto

import "time"

// RecordSessionRequest creates one practice session record on completion of
// a study, quiz or mock-interview activity.
type RecordSessionRequest struct {
	QuestionsAnswered int      `json:"questions_answered" binding:"min=0"`
	TimeSpent         float64  `json:"time_spent" binding:"min=0"` // minutes
	Categories        []string `json:"categories"`
	AverageConfidence float64  `json:"average_confidence"` // 1-5, clamped server-side
	Mode              string   `json:"mode" binding:"required,oneof=study quiz mock-interview"`
}

// SessionDTO is the stored practice session served back to clients.
type SessionDTO struct {
	ID                string    `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	QuestionsAnswered int       `json:"questions_answered"`
	TimeSpent         float64   `json:"time_spent"`
	Categories        []string  `json:"categories,omitempty"`
	AverageConfidence float64   `json:"average_confidence"`
	Mode              string    `json:"mode"`
}
