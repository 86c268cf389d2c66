package service

import (
	"fmt"
	"time"

	"github.com/lshigami/Tarsius/internal/catalog"
	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/lshigami/Tarsius/internal/model"
	"github.com/montanaflynn/stats"
)

const weeklyBucketCount = 7

// AnalyticsService reduces the session history and the tracker's raw state
// into display-ready statistics. It is a pure reader: every call recomputes
// from current inputs and performs no writes.
type AnalyticsService interface {
	Dashboard() dto.AnalyticsDTO
}

type analyticsService struct {
	catalog  *catalog.Catalog
	progress ProgressService
	sessions SessionService
	now      func() time.Time
}

func NewAnalyticsService(cat *catalog.Catalog, progress ProgressService, sessions SessionService) AnalyticsService {
	return &analyticsService{catalog: cat, progress: progress, sessions: sessions, now: time.Now}
}

func (s *analyticsService) Dashboard() dto.AnalyticsDTO {
	history := s.sessions.History()
	viewed := s.progress.ViewedIDs()
	bookmarked := s.progress.BookmarkedIDs()
	scores := s.progress.QuizScores()

	return dto.AnalyticsDTO{
		Overview:   s.overview(history, len(viewed)),
		Categories: s.categoryProgress(viewed, bookmarked, scores),
		Weekly:     weeklyBuckets(history, s.now()),
	}
}

func (s *analyticsService) overview(history []model.PracticeSession, viewedCount int) dto.OverviewStatsDTO {
	overview := dto.OverviewStatsDTO{
		TotalQuestions: s.catalog.TotalQuestions(),
		TotalSessions:  len(history),
	}
	if overview.TotalQuestions > 0 {
		overview.ViewedPercentage = float64(viewedCount) / float64(overview.TotalQuestions) * 100
	}
	if len(history) == 0 {
		return overview
	}

	var confidences []float64
	for _, session := range history {
		overview.TotalStudyTime += session.TimeSpent
		confidences = append(confidences, session.AverageConfidence)
	}
	overview.AverageSessionTime = overview.TotalStudyTime / float64(len(history))
	overview.AverageConfidence, _ = stats.Mean(confidences)
	return overview
}

func (s *analyticsService) categoryProgress(viewed, bookmarked []string, scores map[string]int) []dto.CategoryAnalyticsDTO {
	viewedSet := make(map[string]struct{}, len(viewed))
	for _, id := range viewed {
		viewedSet[id] = struct{}{}
	}
	bookmarkedSet := make(map[string]struct{}, len(bookmarked))
	for _, id := range bookmarked {
		bookmarkedSet[id] = struct{}{}
	}

	var result []dto.CategoryAnalyticsDTO
	for _, cat := range s.catalog.Categories() {
		entry := dto.CategoryAnalyticsDTO{
			CategoryID:     cat.ID,
			Title:          cat.Title,
			Icon:           cat.Icon,
			TotalQuestions: len(cat.Questions),
			QuizScore:      scores[cat.ID],
		}
		for _, q := range cat.Questions {
			if _, ok := viewedSet[q.ID]; ok {
				entry.ViewedCount++
			}
			if _, ok := bookmarkedSet[q.ID]; ok {
				entry.BookmarkedCount++
			}
		}
		if entry.TotalQuestions > 0 {
			entry.Progress = float64(entry.ViewedCount) / float64(entry.TotalQuestions) * 100
		}
		result = append(result, entry)
	}
	return result
}

// weeklyBuckets produces exactly 7 non-overlapping 7-day windows ending with
// the current week, oldest first. A session belongs to bucket i iff its
// timestamp lies in [weekStart, weekEnd] inclusive, where weekStart is
// start-of-day(now - 7i days) and weekEnd is weekStart+6 days end-of-day.
func weeklyBuckets(history []model.PracticeSession, now time.Time) []dto.WeeklyBucketDTO {
	buckets := make([]dto.WeeklyBucketDTO, 0, weeklyBucketCount)
	for i := weeklyBucketCount - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -7*i)
		weekStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond)

		bucket := dto.WeeklyBucketDTO{
			Week: fmt.Sprintf("%d/%d", int(weekStart.Month()), weekStart.Day()),
		}
		for _, session := range history {
			if session.Timestamp.Before(weekStart) || session.Timestamp.After(weekEnd) {
				continue
			}
			bucket.Sessions++
			bucket.QuestionsAnswered += session.QuestionsAnswered
			bucket.TimeSpent += session.TimeSpent
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}
