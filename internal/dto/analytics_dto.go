package dto

// OverviewStatsDTO summarizes the user's activity across all sessions.
type OverviewStatsDTO struct {
	TotalQuestions     int     `json:"total_questions"`
	ViewedPercentage   float64 `json:"viewed_percentage"`
	TotalStudyTime     float64 `json:"total_study_time"` // minutes
	AverageSessionTime float64 `json:"average_session_time"`
	AverageConfidence  float64 `json:"average_confidence"`
	TotalSessions      int     `json:"total_sessions"`
}

// CategoryAnalyticsDTO is the per-category activity breakdown.
type CategoryAnalyticsDTO struct {
	CategoryID      string  `json:"category_id"`
	Title           string  `json:"title"`
	Icon            string  `json:"icon"`
	TotalQuestions  int     `json:"total_questions"`
	ViewedCount     int     `json:"viewed_count"`
	BookmarkedCount int     `json:"bookmarked_count"`
	Progress        float64 `json:"progress"` // percent viewed
	QuizScore       int     `json:"quiz_score"`
}

// WeeklyBucketDTO is one 7-day aggregation window, oldest first.
type WeeklyBucketDTO struct {
	Week              string  `json:"week"` // "month/day" of the bucket start
	Sessions          int     `json:"sessions"`
	QuestionsAnswered int     `json:"questions_answered"`
	TimeSpent         float64 `json:"time_spent"`
}

// AnalyticsDTO is the full dashboard payload.
type AnalyticsDTO struct {
	Overview   OverviewStatsDTO       `json:"overview"`
	Categories []CategoryAnalyticsDTO `json:"categories"`
	Weekly     []WeeklyBucketDTO      `json:"weekly"`
}
