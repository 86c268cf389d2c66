package model

import "time"

// StudyPlan is the single active study goal. Saving a new plan replaces the
// previous one; streaks restart from zero.
type StudyPlan struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	TargetDate    time.Time   `json:"target_date"`
	DailyGoal     int         `json:"daily_goal"` // questions per day
	Categories    []string    `json:"categories,omitempty"`
	CurrentStreak int         `json:"current_streak"`
	LongestStreak int         `json:"longest_streak"`
	CompletedDays []time.Time `json:"completed_days,omitempty"`
}
