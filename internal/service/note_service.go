package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Tarsius/internal/catalog"
	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/lshigami/Tarsius/internal/model"
	"github.com/lshigami/Tarsius/internal/store"
	"github.com/rs/zerolog/log"
)

var ErrNoteNotFound = errors.New("note not found")

// NoteService manages user-authored study notes. Notes have their own
// lifecycle, independent of progress state.
type NoteService interface {
	Create(req dto.CreateNoteRequest) (*dto.NoteDTO, error)
	Update(id string, req dto.UpdateNoteRequest) (*dto.NoteDTO, error)
	Delete(id string) error
	List(questionID string) []dto.NoteDTO
}

type noteService struct {
	store   store.Store
	catalog *catalog.Catalog
	now     func() time.Time
}

func NewNoteService(st store.Store, cat *catalog.Catalog) NoteService {
	return &noteService{store: st, catalog: cat, now: time.Now}
}

func (s *noteService) Create(req dto.CreateNoteRequest) (*dto.NoteDTO, error) {
	if !s.catalog.HasQuestion(req.QuestionID) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuestion, req.QuestionID)
	}
	now := s.now()
	note := model.StudyNote{
		ID:         uuid.NewString(),
		QuestionID: req.QuestionID,
		Content:    req.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
		Tags:       req.Tags,
	}
	s.store.Set(store.KeyStudyNotes, append(s.notes(), note))
	log.Info().Str("noteID", note.ID).Str("questionID", note.QuestionID).Msg("Study note created")
	return toNoteDTO(note)
}

func (s *noteService) Update(id string, req dto.UpdateNoteRequest) (*dto.NoteDTO, error) {
	notes := s.notes()
	for i := range notes {
		if notes[i].ID != id {
			continue
		}
		notes[i].Content = req.Content
		notes[i].Tags = req.Tags
		notes[i].UpdatedAt = s.now()
		s.store.Set(store.KeyStudyNotes, notes)
		return toNoteDTO(notes[i])
	}
	return nil, fmt.Errorf("%w: %q", ErrNoteNotFound, id)
}

func (s *noteService) Delete(id string) error {
	notes := s.notes()
	for i := range notes {
		if notes[i].ID == id {
			s.store.Set(store.KeyStudyNotes, append(notes[:i:i], notes[i+1:]...))
			log.Info().Str("noteID", id).Msg("Study note deleted")
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNoteNotFound, id)
}

// List returns all notes, or only those for questionID when it is non-empty.
func (s *noteService) List(questionID string) []dto.NoteDTO {
	result := make([]dto.NoteDTO, 0)
	for _, note := range s.notes() {
		if questionID != "" && note.QuestionID != questionID {
			continue
		}
		d, err := toNoteDTO(note)
		if err != nil {
			continue
		}
		result = append(result, *d)
	}
	return result
}

func (s *noteService) notes() []model.StudyNote {
	var notes []model.StudyNote
	s.store.Get(store.KeyStudyNotes, &notes)
	return notes
}

func toNoteDTO(note model.StudyNote) (*dto.NoteDTO, error) {
	var resp dto.NoteDTO
	if err := copier.Copy(&resp, &note); err != nil {
		return nil, fmt.Errorf("error preparing note response: %w", err)
	}
	return &resp, nil
}
