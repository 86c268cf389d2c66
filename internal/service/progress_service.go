package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/lshigami/Tarsius/internal/catalog"
	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/lshigami/Tarsius/internal/store"
	"github.com/rs/zerolog/log"
)

var (
	ErrUnknownQuestion = errors.New("question not in catalogue")
	ErrUnknownCategory = errors.New("category not in catalogue")
)

// ProgressService owns the three persisted progress collections: viewed
// question ids, bookmarked question ids and per-category quiz scores. It is
// the only writer of that state.
type ProgressService interface {
	MarkViewed(questionID string) error
	ToggleBookmark(questionID string) (bool, error)
	RecordQuizScore(categoryID string, score int) error
	Snapshot() dto.ProgressSnapshotDTO

	ViewedIDs() []string
	BookmarkedIDs() []string
	QuizScores() map[string]int
}

type progressService struct {
	store   store.Store
	catalog *catalog.Catalog
}

func NewProgressService(st store.Store, cat *catalog.Catalog) ProgressService {
	return &progressService{store: st, catalog: cat}
}

// MarkViewed inserts questionID into the viewed set. Marking an already
// viewed question is a no-op, so the set never holds duplicates.
func (s *progressService) MarkViewed(questionID string) error {
	if !s.catalog.HasQuestion(questionID) {
		log.Warn().Str("questionID", questionID).Msg("MarkViewed: unknown question id rejected")
		return fmt.Errorf("%w: %q", ErrUnknownQuestion, questionID)
	}
	viewed := s.ViewedIDs()
	for _, id := range viewed {
		if id == questionID {
			return nil
		}
	}
	s.store.Set(store.KeyViewedQuestions, append(viewed, questionID))
	return nil
}

// ToggleBookmark flips the bookmark state of questionID and returns the new
// state. Applying it twice restores the original state.
func (s *progressService) ToggleBookmark(questionID string) (bool, error) {
	if !s.catalog.HasQuestion(questionID) {
		log.Warn().Str("questionID", questionID).Msg("ToggleBookmark: unknown question id rejected")
		return false, fmt.Errorf("%w: %q", ErrUnknownQuestion, questionID)
	}
	bookmarked := s.BookmarkedIDs()
	for i, id := range bookmarked {
		if id == questionID {
			s.store.Set(store.KeyBookmarkedQuestions, append(bookmarked[:i:i], bookmarked[i+1:]...))
			return false, nil
		}
	}
	s.store.Set(store.KeyBookmarkedQuestions, append(bookmarked, questionID))
	return true, nil
}

// RecordQuizScore overwrites the score for categoryID; only the last
// completed quiz per category is kept. Scores are clamped to [0,100] at this
// write boundary rather than trusting the caller.
func (s *progressService) RecordQuizScore(categoryID string, score int) error {
	if _, ok := s.catalog.CategoryByID(categoryID); !ok {
		log.Warn().Str("categoryID", categoryID).Msg("RecordQuizScore: unknown category id rejected")
		return fmt.Errorf("%w: %q", ErrUnknownCategory, categoryID)
	}
	if score < 0 {
		log.Warn().Int("score", score).Str("categoryID", categoryID).Msg("Quiz score below range, clamping")
		score = 0
	} else if score > 100 {
		log.Warn().Int("score", score).Str("categoryID", categoryID).Msg("Quiz score above range, clamping")
		score = 100
	}
	scores := s.QuizScores()
	scores[categoryID] = score
	s.store.Set(store.KeyQuizScores, scores)
	return nil
}

// Snapshot derives the display-ready progress view from persisted state plus
// the static catalogue. It performs no writes.
func (s *progressService) Snapshot() dto.ProgressSnapshotDTO {
	viewed := s.ViewedIDs()
	viewedSet := make(map[string]struct{}, len(viewed))
	for _, id := range viewed {
		viewedSet[id] = struct{}{}
	}
	scores := s.QuizScores()

	total := s.catalog.TotalQuestions()
	snapshot := dto.ProgressSnapshotDTO{
		TotalQuestions:  total,
		ViewedCount:     len(viewed),
		BookmarkedCount: len(s.BookmarkedIDs()),
	}
	if total > 0 {
		snapshot.ProgressPercentage = int(math.Round(float64(len(viewed)) / float64(total) * 100))
	}

	for _, cat := range s.catalog.Categories() {
		entry := dto.CategoryProgressEntryDTO{
			CategoryID:     cat.ID,
			Title:          cat.Title,
			TotalQuestions: len(cat.Questions),
			Score:          scores[cat.ID],
		}
		for _, q := range cat.Questions {
			if _, ok := viewedSet[q.ID]; ok {
				entry.ViewedQuestions++
			}
		}
		snapshot.CategoryProgress = append(snapshot.CategoryProgress, entry)
	}
	return snapshot
}

func (s *progressService) ViewedIDs() []string {
	var ids []string
	s.store.Get(store.KeyViewedQuestions, &ids)
	return ids
}

func (s *progressService) BookmarkedIDs() []string {
	var ids []string
	s.store.Get(store.KeyBookmarkedQuestions, &ids)
	return ids
}

func (s *progressService) QuizScores() map[string]int {
	scores := make(map[string]int)
	s.store.Get(store.KeyQuizScores, &scores)
	return scores
}
