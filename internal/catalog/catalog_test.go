package catalog

import (
	"testing"

	"github.com/lshigami/Tarsius/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsCategoryMismatch(t *testing.T) {
	_, err := New([]model.Category{{
		ID: "fundamentals",
		Questions: []model.Question{
			{ID: "stray", Category: "performance"},
		},
	}})

	assert.Error(t, err)
}

func TestNew_RejectsDuplicateQuestionIDs(t *testing.T) {
	_, err := New([]model.Category{
		{ID: "a", Questions: []model.Question{{ID: "dup", Category: "a"}}},
		{ID: "b", Questions: []model.Question{{ID: "dup", Category: "b"}}},
	})

	assert.Error(t, err)
}

func TestDefault_IsConsistent(t *testing.T) {
	c := Default()

	require.NotZero(t, c.TotalQuestions())
	assert.Len(t, c.AllQuestions(), c.TotalQuestions())

	// Every flattened question resolves back to its owning category.
	for _, q := range c.AllQuestions() {
		cat, ok := c.CategoryByID(q.Category)
		require.True(t, ok, "question %s references missing category %s", q.ID, q.Category)
		assert.Equal(t, cat.ID, q.Category)
	}

	hooks, ok := c.QuestionByID("hooks")
	require.True(t, ok)
	assert.Equal(t, "fundamentals", hooks.Category)
	assert.Equal(t, model.DifficultyEasy, hooks.Difficulty)
}

func TestCatalog_FlattenedOrderFollowsCategories(t *testing.T) {
	c, err := New([]model.Category{
		{ID: "first", Questions: []model.Question{
			{ID: "q1", Category: "first"},
			{ID: "q2", Category: "first"},
		}},
		{ID: "second", Questions: []model.Question{
			{ID: "q3", Category: "second"},
		}},
	})
	require.NoError(t, err)

	var ids []string
	for _, q := range c.AllQuestions() {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"q1", "q2", "q3"}, ids)
	assert.True(t, c.HasQuestion("q3"))
	assert.False(t, c.HasQuestion("q4"))
}
