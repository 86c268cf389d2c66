package model

import "time"

// StudyNote is a user-authored annotation attached to a catalogue question.
// Unlike sessions and interviews, notes are mutable.
type StudyNote struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Tags       []string  `json:"tags,omitempty"`
}
