package model

import "time"

// Modes a practice session can be recorded under.
const (
	ModeStudy         = "study"
	ModeQuiz          = "quiz"
	ModeMockInterview = "mock-interview"
)

// PracticeSession is one completed unit of study, quiz or interview activity.
// Records are append-only; they are never edited after creation.
type PracticeSession struct {
	ID                string    `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	QuestionsAnswered int       `json:"questions_answered"`
	TimeSpent         float64   `json:"time_spent"` // minutes, fractional allowed
	Categories        []string  `json:"categories,omitempty"`
	AverageConfidence float64   `json:"average_confidence"` // 1-5 scale
	Mode              string    `json:"mode"`
}
