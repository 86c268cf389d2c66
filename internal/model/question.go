package model

// Difficulty levels a catalogue question may carry. An empty difficulty means
// the question was never rated.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question is an immutable catalogue entry. Instances are created once at
// load time and never mutated afterwards.
type Question struct {
	ID                string   `json:"id"`
	Question          string   `json:"question"`
	Answer            string   `json:"answer"`
	Category          string   `json:"category"`
	Difficulty        string   `json:"difficulty,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	CodeExample       string   `json:"code_example,omitempty"`
	FollowUpQuestions []string `json:"follow_up_questions,omitempty"`
	EstimatedTime     int      `json:"estimated_time,omitempty"` // minutes
	InterviewType     string   `json:"interview_type,omitempty"` // "technical", "behavioral", "system-design"
	Companies         []string `json:"companies,omitempty"`
}

// Category groups questions in the catalogue. The question order inside a
// category is the display order.
type Category struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Icon        string     `json:"icon"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions,omitempty"`
}
