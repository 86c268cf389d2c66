package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/lshigami/Tarsius/internal/model"
	"github.com/lshigami/Tarsius/internal/store"
	"github.com/rs/zerolog/log"
)

// SessionService owns the append-only practice session history. Sessions are
// persisted so the weekly trend survives restarts.
type SessionService interface {
	Record(req dto.RecordSessionRequest) (*dto.SessionDTO, error)
	History() []model.PracticeSession
}

type sessionService struct {
	store store.Store
	now   func() time.Time
}

func NewSessionService(st store.Store) SessionService {
	return &sessionService{store: st, now: time.Now}
}

func (s *sessionService) Record(req dto.RecordSessionRequest) (*dto.SessionDTO, error) {
	confidence := req.AverageConfidence
	if confidence < 1 {
		confidence = 1
	} else if confidence > 5 {
		confidence = 5
	}

	session := model.PracticeSession{
		ID:                uuid.NewString(),
		Timestamp:         s.now(),
		QuestionsAnswered: req.QuestionsAnswered,
		TimeSpent:         req.TimeSpent,
		Categories:        req.Categories,
		AverageConfidence: confidence,
		Mode:              req.Mode,
	}

	history := s.History()
	s.store.Set(store.KeyPracticeSessions, append(history, session))
	log.Info().Str("sessionID", session.ID).Str("mode", session.Mode).
		Int("questions", session.QuestionsAnswered).Msg("Practice session recorded")

	var resp dto.SessionDTO
	if err := copier.Copy(&resp, &session); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *sessionService) History() []model.PracticeSession {
	var sessions []model.PracticeSession
	s.store.Get(store.KeyPracticeSessions, &sessions)
	return sessions
}
