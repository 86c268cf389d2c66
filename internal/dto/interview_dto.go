package dto

import "time"

// InterviewAnswerDTO is one free-text response inside an interview
// submission, in the order the questions were asked.
type InterviewAnswerDTO struct {
	QuestionID string  `json:"question_id" binding:"required"`
	Response   string  `json:"response" binding:"required"`
	TimeSpent  float64 `json:"time_spent" binding:"min=0"` // minutes
	Confidence int     `json:"confidence" binding:"min=1,max=5"`
}

// SubmitInterviewRequest completes a mock interview.
type SubmitInterviewRequest struct {
	Duration float64              `json:"duration" binding:"min=0"` // minutes
	Answers  []InterviewAnswerDTO `json:"answers" binding:"required,dive"`
}

// InterviewResponseDTO is one scored response inside a stored interview.
type InterviewResponseDTO struct {
	QuestionID string  `json:"question_id"`
	Response   string  `json:"response"`
	TimeSpent  float64 `json:"time_spent"`
	Confidence int     `json:"confidence"`
	Score      int     `json:"score"`
}

// InterviewDTO is the full stored mock interview. OverallScore is rounded
// for display; the feedback tier is derived from the unrounded mean.
type InterviewDTO struct {
	ID           string                 `json:"id"`
	Timestamp    time.Time              `json:"timestamp"`
	Duration     float64                `json:"duration"`
	Questions    []QuestionDTO          `json:"questions"`
	Responses    []InterviewResponseDTO `json:"responses"`
	OverallScore int                    `json:"overall_score"`
	Feedback     string                 `json:"feedback"`
}

// InterviewSummaryDTO lists past interviews without their transcripts.
type InterviewSummaryDTO struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Duration      float64   `json:"duration"`
	QuestionCount int       `json:"question_count"`
	OverallScore  int       `json:"overall_score"`
}
