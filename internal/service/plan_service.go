package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/lshigami/Tarsius/internal/model"
	"github.com/lshigami/Tarsius/internal/store"
	"github.com/rs/zerolog/log"
)

var ErrNoActivePlan = errors.New("no active study plan")

// PlanService manages the single active study plan and its streak state.
type PlanService interface {
	Save(req dto.SavePlanRequest) (*dto.PlanDTO, error)
	Get() (*dto.PlanDTO, error)
	CompleteDay() (*dto.PlanDTO, error)
}

type planService struct {
	store store.Store
	now   func() time.Time
}

func NewPlanService(st store.Store) PlanService {
	return &planService{store: st, now: time.Now}
}

// Save replaces the active plan. Streaks and completed days restart from
// zero; a new plan is a new commitment.
func (s *planService) Save(req dto.SavePlanRequest) (*dto.PlanDTO, error) {
	plan := model.StudyPlan{
		ID:            uuid.NewString(),
		Name:          req.Name,
		TargetDate:    req.TargetDate,
		DailyGoal:     req.DailyGoal,
		Categories:    req.Categories,
		CompletedDays: []time.Time{},
	}
	s.store.Set(store.KeyStudyPlan, plan)
	log.Info().Str("planID", plan.ID).Str("name", plan.Name).Msg("Study plan saved")
	return toPlanDTO(plan)
}

func (s *planService) Get() (*dto.PlanDTO, error) {
	plan, ok := s.plan()
	if !ok {
		return nil, ErrNoActivePlan
	}
	return toPlanDTO(plan)
}

// CompleteDay marks today as done, at most once per calendar day. The
// current streak grows only when the previous completed day was yesterday;
// any gap resets it to 1.
func (s *planService) CompleteDay() (*dto.PlanDTO, error) {
	plan, ok := s.plan()
	if !ok {
		return nil, ErrNoActivePlan
	}

	today := startOfDay(s.now())
	if len(plan.CompletedDays) > 0 {
		last := startOfDay(plan.CompletedDays[len(plan.CompletedDays)-1])
		switch {
		case last.Equal(today):
			return toPlanDTO(plan)
		case last.Equal(today.AddDate(0, 0, -1)):
			plan.CurrentStreak++
		default:
			plan.CurrentStreak = 1
		}
	} else {
		plan.CurrentStreak = 1
	}
	if plan.CurrentStreak > plan.LongestStreak {
		plan.LongestStreak = plan.CurrentStreak
	}
	plan.CompletedDays = append(plan.CompletedDays, today)

	s.store.Set(store.KeyStudyPlan, plan)
	log.Info().Str("planID", plan.ID).Int("currentStreak", plan.CurrentStreak).Msg("Study day completed")
	return toPlanDTO(plan)
}

func (s *planService) plan() (model.StudyPlan, bool) {
	var plan model.StudyPlan
	if !s.store.Get(store.KeyStudyPlan, &plan) || plan.ID == "" {
		return model.StudyPlan{}, false
	}
	return plan, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func toPlanDTO(plan model.StudyPlan) (*dto.PlanDTO, error) {
	var resp dto.PlanDTO
	if err := copier.Copy(&resp, &plan); err != nil {
		return nil, fmt.Errorf("error preparing plan response: %w", err)
	}
	return &resp, nil
}
