package dto

// CategorySummaryDTO lists a category without its questions.
type CategorySummaryDTO struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Icon          string `json:"icon"`
	Description   string `json:"description"`
	QuestionCount int    `json:"question_count"`
}

// QuestionDTO is the full question representation served to clients.
type QuestionDTO struct {
	ID                string   `json:"id"`
	Question          string   `json:"question"`
	Answer            string   `json:"answer"`
	Category          string   `json:"category"`
	Difficulty        string   `json:"difficulty,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	CodeExample       string   `json:"code_example,omitempty"`
	FollowUpQuestions []string `json:"follow_up_questions,omitempty"`
	EstimatedTime     int      `json:"estimated_time,omitempty"`
	InterviewType     string   `json:"interview_type,omitempty"`
	Companies         []string `json:"companies,omitempty"`
}

// QuestionListDTO wraps a filtered question listing.
type QuestionListDTO struct {
	Questions        []QuestionDTO `json:"questions"`
	Total            int           `json:"total"`
	HasActiveFilters bool          `json:"has_active_filters"`
}
