package service

import (
	"testing"
	"time"

	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotes_CRUD(t *testing.T) {
	svc := NewNoteService(newMemStore(), testCatalog()).(*noteService)
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	created, err := svc.Create(dto.CreateNoteRequest{
		QuestionID: "hooks",
		Content:    "Revisit the rules of hooks before the on-site.",
		Tags:       []string{"revision"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	now = now.Add(time.Hour)
	updated, err := svc.Update(created.ID, dto.UpdateNoteRequest{Content: "Done.", Tags: nil})
	require.NoError(t, err)
	assert.Equal(t, "Done.", updated.Content)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	require.NoError(t, svc.Delete(created.ID))
	assert.Empty(t, svc.List(""))
}

func TestNotes_CreateRejectsUnknownQuestion(t *testing.T) {
	svc := NewNoteService(newMemStore(), testCatalog())

	_, err := svc.Create(dto.CreateNoteRequest{QuestionID: "ghost", Content: "x"})

	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestNotes_ListFiltersByQuestion(t *testing.T) {
	svc := NewNoteService(newMemStore(), testCatalog())

	_, err := svc.Create(dto.CreateNoteRequest{QuestionID: "hooks", Content: "a"})
	require.NoError(t, err)
	_, err = svc.Create(dto.CreateNoteRequest{QuestionID: "memoization", Content: "b"})
	require.NoError(t, err)

	assert.Len(t, svc.List(""), 2)
	hooks := svc.List("hooks")
	require.Len(t, hooks, 1)
	assert.Equal(t, "a", hooks[0].Content)
}

func TestNotes_UpdateMissing(t *testing.T) {
	svc := NewNoteService(newMemStore(), testCatalog())

	_, err := svc.Update("missing", dto.UpdateNoteRequest{Content: "x"})
	assert.ErrorIs(t, err, ErrNoteNotFound)

	assert.ErrorIs(t, svc.Delete("missing"), ErrNoteNotFound)
}
