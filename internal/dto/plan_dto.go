package dto

import "time"

// SavePlanRequest creates or replaces the single active study plan.
type SavePlanRequest struct {
	Name       string    `json:"name" binding:"required"`
	TargetDate time.Time `json:"target_date" binding:"required"`
	DailyGoal  int       `json:"daily_goal" binding:"required,min=1"`
	Categories []string  `json:"categories"`
}

// PlanDTO is the active study plan with its streak state.
type PlanDTO struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	TargetDate    time.Time   `json:"target_date"`
	DailyGoal     int         `json:"daily_goal"`
	Categories    []string    `json:"categories,omitempty"`
	CurrentStreak int         `json:"current_streak"`
	LongestStreak int         `json:"longest_streak"`
	CompletedDays []time.Time `json:"completed_days,omitempty"`
}
