package service

import (
	"testing"

	"github.com/lshigami/Tarsius/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture() (CatalogService, ProgressService) {
	st := newMemStore()
	cat := testCatalog()
	progress := NewProgressService(st, cat)
	return NewCatalogService(cat, progress), progress
}

func TestListCategories_ReportsCounts(t *testing.T) {
	svc, _ := newCatalogFixture()

	categories := svc.ListCategories()

	require.Len(t, categories, 2)
	assert.Equal(t, "fundamentals", categories[0].ID)
	assert.Equal(t, 3, categories[0].QuestionCount)
	assert.Equal(t, 1, categories[1].QuestionCount)
}

func TestCategoryQuestions_UnknownCategory(t *testing.T) {
	svc, _ := newCatalogFixture()

	_, err := svc.CategoryQuestions("ghost")

	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestSearch_BookmarkedOnlyComposesWithTracker(t *testing.T) {
	svc, progress := newCatalogFixture()

	_, err := progress.ToggleBookmark("memoization")
	require.NoError(t, err)

	all, err := svc.Search(search.Filters{})
	require.NoError(t, err)
	assert.Equal(t, 4, all.Total)
	assert.False(t, all.HasActiveFilters)

	bookmarked, err := svc.Search(search.Filters{BookmarkedOnly: true})
	require.NoError(t, err)
	require.Equal(t, 1, bookmarked.Total)
	assert.Equal(t, "memoization", bookmarked.Questions[0].ID)
	assert.True(t, bookmarked.HasActiveFilters)
}
