package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/lshigami/Tarsius/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsFixture(t *testing.T) (*memStore, AnalyticsService, SessionService, ProgressService) {
	t.Helper()
	st := newMemStore()
	cat := testCatalog()
	progress := NewProgressService(st, cat)
	sessions := NewSessionService(st)
	analytics := NewAnalyticsService(cat, progress, sessions)
	return st, analytics, sessions, progress
}

func TestDashboard_NoSessions(t *testing.T) {
	_, analytics, _, _ := newAnalyticsFixture(t)

	dash := analytics.Dashboard()

	assert.Equal(t, 0, dash.Overview.TotalSessions)
	assert.Zero(t, dash.Overview.AverageSessionTime)
	assert.Zero(t, dash.Overview.AverageConfidence)
	assert.Zero(t, dash.Overview.TotalStudyTime)
	assert.Len(t, dash.Weekly, 7)
}

func TestDashboard_OverviewAggregation(t *testing.T) {
	_, analytics, sessions, progress := newAnalyticsFixture(t)

	require.NoError(t, progress.MarkViewed("hooks"))
	require.NoError(t, progress.MarkViewed("jsx"))

	_, err := sessions.Record(recordReq(10, 30, 4, model.ModeStudy))
	require.NoError(t, err)
	_, err = sessions.Record(recordReq(5, 10, 2, model.ModeQuiz))
	require.NoError(t, err)

	dash := analytics.Dashboard()

	assert.Equal(t, 4, dash.Overview.TotalQuestions)
	assert.InDelta(t, 50.0, dash.Overview.ViewedPercentage, 1e-9)
	assert.InDelta(t, 40.0, dash.Overview.TotalStudyTime, 1e-9)
	assert.InDelta(t, 20.0, dash.Overview.AverageSessionTime, 1e-9)
	assert.InDelta(t, 3.0, dash.Overview.AverageConfidence, 1e-9)
	assert.Equal(t, 2, dash.Overview.TotalSessions)
}

func TestDashboard_CategoryBreakdown(t *testing.T) {
	_, analytics, _, progress := newAnalyticsFixture(t)

	require.NoError(t, progress.MarkViewed("hooks"))
	_, err := progress.ToggleBookmark("virtual-dom")
	require.NoError(t, err)
	require.NoError(t, progress.RecordQuizScore("fundamentals", 70))

	dash := analytics.Dashboard()

	require.Len(t, dash.Categories, 2)
	fundamentals := dash.Categories[0]
	assert.Equal(t, "fundamentals", fundamentals.CategoryID)
	assert.Equal(t, 1, fundamentals.ViewedCount)
	assert.Equal(t, 1, fundamentals.BookmarkedCount)
	assert.InDelta(t, 100.0/3.0, fundamentals.Progress, 1e-9)
	assert.Equal(t, 70, fundamentals.QuizScore)

	performance := dash.Categories[1]
	assert.Zero(t, performance.ViewedCount)
	assert.Zero(t, performance.QuizScore)
}

func TestWeeklyBuckets_Placement(t *testing.T) {
	now := time.Date(2026, time.March, 18, 15, 30, 0, 0, time.UTC)
	history := []model.PracticeSession{
		{ID: "today", Timestamp: now, QuestionsAnswered: 3, TimeSpent: 12},
		{ID: "oldest", Timestamp: now.AddDate(0, 0, -42), QuestionsAnswered: 5, TimeSpent: 20},
		{ID: "ancient", Timestamp: now.AddDate(0, 0, -60), QuestionsAnswered: 9, TimeSpent: 40},
	}

	buckets := weeklyBuckets(history, now)

	require.Len(t, buckets, 7)
	assert.Equal(t, 1, buckets[6].Sessions)
	assert.Equal(t, 3, buckets[6].QuestionsAnswered)
	assert.InDelta(t, 12.0, buckets[6].TimeSpent, 1e-9)

	assert.Equal(t, 1, buckets[0].Sessions)
	assert.Equal(t, 5, buckets[0].QuestionsAnswered)

	// Sessions older than the 7-week window are not counted anywhere.
	total := 0
	for _, b := range buckets {
		total += b.Sessions
	}
	assert.Equal(t, 2, total)
}

func TestWeeklyBuckets_Labels(t *testing.T) {
	now := time.Date(2026, time.March, 18, 12, 0, 0, 0, time.UTC)

	buckets := weeklyBuckets(nil, now)

	require.Len(t, buckets, 7)
	assert.Equal(t, "3/18", buckets[6].Week)
	// 42 days before 3/18 is 2/4.
	assert.Equal(t, "2/4", buckets[0].Week)
}

func TestWeeklyBuckets_InclusiveBoundaries(t *testing.T) {
	now := time.Date(2026, time.March, 18, 12, 0, 0, 0, time.UTC)
	weekStart := time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond)

	history := []model.PracticeSession{
		{ID: "at-start", Timestamp: weekStart, QuestionsAnswered: 1},
		{ID: "at-end", Timestamp: weekEnd, QuestionsAnswered: 1},
	}

	buckets := weeklyBuckets(history, now)
	assert.Equal(t, 2, buckets[6].Sessions)
}

func recordReq(questions int, minutes, confidence float64, mode string) dto.RecordSessionRequest {
	return dto.RecordSessionRequest{
		QuestionsAnswered: questions,
		TimeSpent:         minutes,
		AverageConfidence: confidence,
		Mode:              mode,
		Categories:        []string{fmt.Sprintf("cat-%s", mode)},
	}
}
