package service

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Tarsius/internal/catalog"
	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/lshigami/Tarsius/internal/model"
	"github.com/lshigami/Tarsius/internal/store"
	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog/log"
)

var ErrInterviewNotFound = errors.New("interview not found")

// Feedback tier thresholds on the unrounded overall score.
const (
	tierExcellent        = 85
	tierGood             = 75
	tierNeedsImprovement = 65
)

// ResponseScorer grades one free-text interview response on a 0-100 scale.
// The default implementation is a placeholder returning a bounded random
// score; swap in a real rubric here when one exists.
type ResponseScorer interface {
	Score(question model.Question, response string, timeSpent float64, confidence int) int
}

type randomScorer struct {
	rng *rand.Rand
}

// NewRandomScorer returns the placeholder scorer producing uniform scores
// in [60,100].
func NewRandomScorer() ResponseScorer {
	return &randomScorer{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *randomScorer) Score(model.Question, string, float64, int) int {
	return s.rng.Intn(41) + 60
}

// InterviewService owns the append-only mock interview history: it scores
// submissions, persists them, and mirrors each one into the practice session
// history.
type InterviewService interface {
	Submit(req dto.SubmitInterviewRequest) (*dto.InterviewDTO, error)
	List() []dto.InterviewSummaryDTO
	Get(id string) (*dto.InterviewDTO, error)
}

type interviewService struct {
	store    store.Store
	catalog  *catalog.Catalog
	scorer   ResponseScorer
	sessions SessionService
	now      func() time.Time
}

func NewInterviewService(st store.Store, cat *catalog.Catalog, scorer ResponseScorer, sessions SessionService) InterviewService {
	return &interviewService{store: st, catalog: cat, scorer: scorer, sessions: sessions, now: time.Now}
}

func (s *interviewService) Submit(req dto.SubmitInterviewRequest) (*dto.InterviewDTO, error) {
	if len(req.Answers) == 0 {
		return nil, fmt.Errorf("interview submission must contain at least one answer")
	}

	interview := model.MockInterview{
		ID:        uuid.NewString(),
		Timestamp: s.now(),
		Duration:  req.Duration,
	}

	var confidences []float64
	categorySet := make(map[string]struct{})
	for _, answer := range req.Answers {
		question, ok := s.catalog.QuestionByID(answer.QuestionID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownQuestion, answer.QuestionID)
		}
		score := s.scorer.Score(question, answer.Response, answer.TimeSpent, answer.Confidence)
		interview.Questions = append(interview.Questions, question)
		interview.Responses = append(interview.Responses, model.InterviewResponse{
			QuestionID: question.ID,
			Response:   answer.Response,
			TimeSpent:  answer.TimeSpent,
			Confidence: answer.Confidence,
			Score:      score,
		})
		confidences = append(confidences, float64(answer.Confidence))
		categorySet[question.Category] = struct{}{}
	}

	interview.OverallScore = overallScore(interview.Responses)
	interview.Feedback = feedbackFor(interview.OverallScore)

	history := s.interviews()
	s.store.Set(store.KeyMockInterviews, append(history, interview))

	categories := make([]string, 0, len(categorySet))
	for _, cat := range s.catalog.Categories() {
		if _, ok := categorySet[cat.ID]; ok {
			categories = append(categories, cat.ID)
		}
	}
	avgConfidence, _ := stats.Mean(confidences)
	if _, err := s.sessions.Record(dto.RecordSessionRequest{
		QuestionsAnswered: len(interview.Responses),
		TimeSpent:         req.Duration,
		Categories:        categories,
		AverageConfidence: avgConfidence,
		Mode:              model.ModeMockInterview,
	}); err != nil {
		// The interview record itself is already persisted.
		log.Error().Err(err).Str("interviewID", interview.ID).Msg("Failed to mirror interview into session history")
	}

	log.Info().Str("interviewID", interview.ID).Float64("overallScore", interview.OverallScore).
		Int("responses", len(interview.Responses)).Msg("Mock interview completed")
	return toInterviewDTO(interview)
}

func (s *interviewService) List() []dto.InterviewSummaryDTO {
	interviews := s.interviews()
	summaries := make([]dto.InterviewSummaryDTO, 0, len(interviews))
	for _, iv := range interviews {
		summaries = append(summaries, dto.InterviewSummaryDTO{
			ID:            iv.ID,
			Timestamp:     iv.Timestamp,
			Duration:      iv.Duration,
			QuestionCount: len(iv.Questions),
			OverallScore:  int(math.Round(iv.OverallScore)),
		})
	}
	return summaries
}

func (s *interviewService) Get(id string) (*dto.InterviewDTO, error) {
	for _, iv := range s.interviews() {
		if iv.ID == id {
			return toInterviewDTO(iv)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInterviewNotFound, id)
}

func (s *interviewService) interviews() []model.MockInterview {
	var interviews []model.MockInterview
	s.store.Get(store.KeyMockInterviews, &interviews)
	return interviews
}

// overallScore is the arithmetic mean of the response scores, unrounded.
func overallScore(responses []model.InterviewResponse) float64 {
	scores := make([]float64, 0, len(responses))
	for _, r := range responses {
		scores = append(scores, float64(r.Score))
	}
	mean, err := stats.Mean(scores)
	if err != nil {
		return 0
	}
	return mean
}

// feedbackFor selects one of four fixed feedback tiers. The 85/75/65
// thresholds are inclusive lower bounds.
func feedbackFor(score float64) string {
	switch {
	case score >= tierExcellent:
		return "Excellent performance! You demonstrated strong technical knowledge and communication skills. You're well-prepared for senior-level interviews."
	case score >= tierGood:
		return "Good performance overall. Focus on providing more detailed examples and improving confidence in your responses."
	case score >= tierNeedsImprovement:
		return "Decent performance with room for improvement. Consider reviewing fundamental concepts and practicing more behavioral questions."
	default:
		return "Needs improvement. Focus on strengthening your technical foundation and practice explaining concepts clearly."
	}
}

func toInterviewDTO(interview model.MockInterview) (*dto.InterviewDTO, error) {
	var resp dto.InterviewDTO
	if err := copier.Copy(&resp, &interview); err != nil {
		return nil, fmt.Errorf("error preparing interview response: %w", err)
	}
	resp.OverallScore = int(math.Round(interview.OverallScore))
	return &resp, nil
}
