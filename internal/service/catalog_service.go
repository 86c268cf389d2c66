package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Tarsius/internal/catalog"
	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/lshigami/Tarsius/internal/model"
	"github.com/lshigami/Tarsius/internal/search"
)

// CatalogService serves read-only catalogue views and composes the search
// engine with the tracker's bookmark state for bookmarked-only filtering.
type CatalogService interface {
	ListCategories() []dto.CategorySummaryDTO
	CategoryQuestions(categoryID string) ([]dto.QuestionDTO, error)
	Search(filters search.Filters) (*dto.QuestionListDTO, error)
}

type catalogService struct {
	catalog  *catalog.Catalog
	progress ProgressService
}

func NewCatalogService(cat *catalog.Catalog, progress ProgressService) CatalogService {
	return &catalogService{catalog: cat, progress: progress}
}

func (s *catalogService) ListCategories() []dto.CategorySummaryDTO {
	categories := s.catalog.Categories()
	summaries := make([]dto.CategorySummaryDTO, 0, len(categories))
	for _, cat := range categories {
		summaries = append(summaries, dto.CategorySummaryDTO{
			ID:            cat.ID,
			Title:         cat.Title,
			Icon:          cat.Icon,
			Description:   cat.Description,
			QuestionCount: len(cat.Questions),
		})
	}
	return summaries
}

func (s *catalogService) CategoryQuestions(categoryID string) ([]dto.QuestionDTO, error) {
	cat, ok := s.catalog.CategoryByID(categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryID)
	}
	return toQuestionDTOs(cat.Questions)
}

func (s *catalogService) Search(filters search.Filters) (*dto.QuestionListDTO, error) {
	matched := search.Apply(s.catalog.AllQuestions(), filters)
	if filters.BookmarkedOnly {
		bookmarked := make(map[string]struct{})
		for _, id := range s.progress.BookmarkedIDs() {
			bookmarked[id] = struct{}{}
		}
		matched = search.Bookmarked(matched, bookmarked)
	}

	questions, err := toQuestionDTOs(matched)
	if err != nil {
		return nil, err
	}
	return &dto.QuestionListDTO{
		Questions:        questions,
		Total:            len(questions),
		HasActiveFilters: filters.HasActiveFilters(),
	}, nil
}

func toQuestionDTOs(questions []model.Question) ([]dto.QuestionDTO, error) {
	result := make([]dto.QuestionDTO, 0, len(questions))
	if err := copier.Copy(&result, &questions); err != nil {
		return nil, fmt.Errorf("error preparing question list: %w", err)
	}
	return result, nil
}
