package service

import (
	"testing"
	"time"

	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planRequest() dto.SavePlanRequest {
	return dto.SavePlanRequest{
		Name:       "Senior prep",
		TargetDate: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		DailyGoal:  5,
		Categories: []string{"fundamentals"},
	}
}

func TestPlan_GetWithoutPlan(t *testing.T) {
	svc := NewPlanService(newMemStore())

	_, err := svc.Get()

	assert.ErrorIs(t, err, ErrNoActivePlan)
}

func TestPlan_SaveReplacesAndResetsStreaks(t *testing.T) {
	svc := NewPlanService(newMemStore()).(*planService)
	svc.now = func() time.Time { return time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC) }

	_, err := svc.Save(planRequest())
	require.NoError(t, err)
	_, err = svc.CompleteDay()
	require.NoError(t, err)

	replaced, err := svc.Save(planRequest())
	require.NoError(t, err)

	assert.Equal(t, 0, replaced.CurrentStreak)
	assert.Equal(t, 0, replaced.LongestStreak)
	assert.Empty(t, replaced.CompletedDays)
}

func TestPlan_StreakGrowsOnConsecutiveDays(t *testing.T) {
	svc := NewPlanService(newMemStore()).(*planService)
	day := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }

	_, err := svc.Save(planRequest())
	require.NoError(t, err)

	plan, err := svc.CompleteDay()
	require.NoError(t, err)
	assert.Equal(t, 1, plan.CurrentStreak)

	day = day.AddDate(0, 0, 1)
	plan, err = svc.CompleteDay()
	require.NoError(t, err)
	assert.Equal(t, 2, plan.CurrentStreak)
	assert.Equal(t, 2, plan.LongestStreak)
}

func TestPlan_CompleteDayIdempotentWithinDay(t *testing.T) {
	svc := NewPlanService(newMemStore()).(*planService)
	svc.now = func() time.Time { return time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC) }

	_, err := svc.Save(planRequest())
	require.NoError(t, err)

	first, err := svc.CompleteDay()
	require.NoError(t, err)
	second, err := svc.CompleteDay()
	require.NoError(t, err)

	assert.Equal(t, first.CurrentStreak, second.CurrentStreak)
	assert.Len(t, second.CompletedDays, 1)
}

func TestPlan_GapResetsCurrentStreak(t *testing.T) {
	svc := NewPlanService(newMemStore()).(*planService)
	day := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }

	_, err := svc.Save(planRequest())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = svc.CompleteDay()
		require.NoError(t, err)
		day = day.AddDate(0, 0, 1)
	}

	// Skip two days, then complete again.
	day = day.AddDate(0, 0, 2)
	plan, err := svc.CompleteDay()
	require.NoError(t, err)

	assert.Equal(t, 1, plan.CurrentStreak)
	assert.Equal(t, 3, plan.LongestStreak)
	assert.Len(t, plan.CompletedDays, 4)
}
