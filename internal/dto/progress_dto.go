package dto

// MarkViewedRequest records that the user has opened a question.
type MarkViewedRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
}

// ToggleBookmarkRequest flips the bookmark state of a question.
type ToggleBookmarkRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
}

// BookmarkStateDTO reports the bookmark state after a toggle.
type BookmarkStateDTO struct {
	QuestionID string `json:"question_id"`
	Bookmarked bool   `json:"bookmarked"`
}

// RecordQuizScoreRequest stores the latest quiz result for a category.
// Scores outside [0,100] are clamped at the write boundary.
type RecordQuizScoreRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	Score      int    `json:"score"`
}

// CategoryProgressEntryDTO is one row of the per-category breakdown in a
// progress snapshot, in catalogue order.
type CategoryProgressEntryDTO struct {
	CategoryID      string `json:"category_id"`
	Title           string `json:"title"`
	TotalQuestions  int    `json:"total_questions"`
	ViewedQuestions int    `json:"viewed_questions"`
	Score           int    `json:"score"`
}

// ProgressSnapshotDTO is the derived, point-in-time read of progress state.
type ProgressSnapshotDTO struct {
	TotalQuestions     int                        `json:"total_questions"`
	ViewedCount        int                        `json:"viewed_count"`
	BookmarkedCount    int                        `json:"bookmarked_count"`
	ProgressPercentage int                        `json:"progress_percentage"`
	CategoryProgress   []CategoryProgressEntryDTO `json:"category_progress"`
}
