package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/lshigami/Tarsius/internal/model"
	"github.com/rs/zerolog/log"
)

// Fetch failures are surfaced as distinct errors so the caller can tell a
// broken category listing from a broken question listing.
var (
	ErrCategoriesFetch = errors.New("categories fetch failed")
	ErrQuestionsFetch  = errors.New("questions fetch failed")
)

// Source provides catalogue data from somewhere other than the embedded
// dataset.
type Source interface {
	FetchCategories() ([]model.Category, error)
	FetchQuestionsByCategory(categoryID string) ([]model.Question, error)
}

type httpSource struct {
	client *resty.Client
}

// NewHTTPSource builds a Source over a remote catalogue API exposing
// GET /categories and GET /categories/{id}/questions. Requests are retried
// with backoff before a failure is surfaced.
func NewHTTPSource(baseURL string) Source {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)
	return &httpSource{client: client}
}

func (s *httpSource) FetchCategories() ([]model.Category, error) {
	var categories []model.Category
	resp, err := s.client.R().SetResult(&categories).Get("/categories")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCategoriesFetch, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status %s", ErrCategoriesFetch, resp.Status())
	}
	return categories, nil
}

func (s *httpSource) FetchQuestionsByCategory(categoryID string) ([]model.Question, error) {
	var questions []model.Question
	resp, err := s.client.R().
		SetResult(&questions).
		SetPathParam("category_id", categoryID).
		Get("/categories/{category_id}/questions")
	if err != nil {
		return nil, fmt.Errorf("%w for category %q: %v", ErrQuestionsFetch, categoryID, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w for category %q: status %s", ErrQuestionsFetch, categoryID, resp.Status())
	}
	return questions, nil
}

// Load assembles a catalogue by fetching every category and its questions
// from src. No partial result is kept: any fetch failure fails the load.
func Load(src Source) (*Catalog, error) {
	categories, err := src.FetchCategories()
	if err != nil {
		return nil, err
	}
	for i := range categories {
		questions, err := src.FetchQuestionsByCategory(categories[i].ID)
		if err != nil {
			return nil, err
		}
		categories[i].Questions = questions
	}
	log.Info().Int("categories", len(categories)).Msg("Catalogue loaded from remote source")
	return New(categories)
}
