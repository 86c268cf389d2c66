package search

import (
	"strings"

	"github.com/lshigami/Tarsius/internal/model"
)

// Filters is the compound predicate applied over the flattened question
// list. Zero values mean "no constraint" for each field.
type Filters struct {
	Query          string
	Category       string
	Difficulty     string
	BookmarkedOnly bool
}

// HasActiveFilters reports whether any field is non-default.
func (f Filters) HasActiveFilters() bool {
	return f.Query != "" || f.Category != "" || f.Difficulty != "" || f.BookmarkedOnly
}

// Apply filters questions with a full scan, preserving the original order.
// The query matches case-insensitively against question text, answer text or
// any tag. BookmarkedOnly is not applied here: bookmark state belongs to the
// progress tracker, so the consumer composes it via Bookmarked.
func Apply(questions []model.Question, f Filters) []model.Question {
	matched := make([]model.Question, 0, len(questions))
	query := strings.ToLower(f.Query)
	for _, q := range questions {
		if query != "" && !matchesQuery(q, query) {
			continue
		}
		if f.Category != "" && q.Category != f.Category {
			continue
		}
		if f.Difficulty != "" && q.Difficulty != f.Difficulty {
			continue
		}
		matched = append(matched, q)
	}
	return matched
}

// Bookmarked keeps only questions whose id is in the bookmarked set,
// preserving order.
func Bookmarked(questions []model.Question, bookmarked map[string]struct{}) []model.Question {
	matched := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := bookmarked[q.ID]; ok {
			matched = append(matched, q)
		}
	}
	return matched
}

func matchesQuery(q model.Question, query string) bool {
	if strings.Contains(strings.ToLower(q.Question), query) {
		return true
	}
	if strings.Contains(strings.ToLower(q.Answer), query) {
		return true
	}
	for _, tag := range q.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
