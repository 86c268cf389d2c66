package dto

import "time"

// CreateNoteRequest attaches a new note to a catalogue question.
type CreateNoteRequest struct {
	QuestionID string   `json:"question_id" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	Tags       []string `json:"tags"`
}

// UpdateNoteRequest replaces a note's content and tags.
type UpdateNoteRequest struct {
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// NoteDTO is the stored study note.
type NoteDTO struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Tags       []string  `json:"tags,omitempty"`
}
