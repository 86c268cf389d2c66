package service

import (
	"testing"

	"github.com/lshigami/Tarsius/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_ClampsConfidence(t *testing.T) {
	svc := NewSessionService(newMemStore())

	low, err := svc.Record(recordReq(1, 5, 0.2, model.ModeStudy))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, low.AverageConfidence, 1e-9)

	high, err := svc.Record(recordReq(1, 5, 9, model.ModeStudy))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, high.AverageConfidence, 1e-9)
}

func TestRecord_AppendsAndPersists(t *testing.T) {
	st := newMemStore()
	svc := NewSessionService(st)

	_, err := svc.Record(recordReq(3, 15, 4, model.ModeQuiz))
	require.NoError(t, err)
	_, err = svc.Record(recordReq(7, 25, 3, model.ModeStudy))
	require.NoError(t, err)

	history := svc.History()
	require.Len(t, history, 2)
	assert.Equal(t, model.ModeQuiz, history[0].Mode)
	assert.Equal(t, model.ModeStudy, history[1].Mode)
	assert.NotEqual(t, history[0].ID, history[1].ID)

	// A fresh service over the same store sees the same history.
	assert.Len(t, NewSessionService(st).History(), 2)
}
