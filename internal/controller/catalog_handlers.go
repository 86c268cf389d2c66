package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/lshigami/Tarsius/internal/search"
	"github.com/lshigami/Tarsius/internal/service"
	"github.com/rs/zerolog/log"
)

// ListCategoriesHandler godoc
// @Summary List catalogue categories
// @Description Get all categories with their question counts, in catalogue order.
// @Tags Catalogue
// @Produce json
// @Success 200 {array} dto.CategorySummaryDTO
// @Router /categories [get]
func (ctrl *Controller) ListCategoriesHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, ctrl.catalogSvc.ListCategories())
}

// CategoryQuestionsHandler godoc
// @Summary List the questions of one category
// @Tags Catalogue
// @Produce json
// @Param category_id path string true "Category ID"
// @Success 200 {array} dto.QuestionDTO
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /categories/{category_id}/questions [get]
func (ctrl *Controller) CategoryQuestionsHandler(ctx *gin.Context) {
	categoryID := ctx.Param("category_id")
	questions, err := ctrl.catalogSvc.CategoryQuestions(categoryID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Str("categoryID", categoryID).Msg("CategoryQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list category questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// SearchQuestionsHandler godoc
// @Summary Search the flattened question list
// @Description Filter questions by free-text query, category, difficulty and bookmark state. All filters combine with AND; the original catalogue order is preserved.
// @Tags Catalogue
// @Produce json
// @Param q query string false "Case-insensitive substring matched against question, answer or tags"
// @Param category query string false "Exact category id"
// @Param difficulty query string false "easy, medium or hard"
// @Param bookmarked_only query bool false "Keep only bookmarked questions"
// @Success 200 {object} dto.QuestionListDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (ctrl *Controller) SearchQuestionsHandler(ctx *gin.Context) {
	filters := search.Filters{
		Query:          ctx.Query("q"),
		Category:       ctx.Query("category"),
		Difficulty:     ctx.Query("difficulty"),
		BookmarkedOnly: ctx.Query("bookmarked_only") == "true",
	}
	result, err := ctrl.catalogSvc.Search(filters)
	if err != nil {
		log.Error().Err(err).Msg("SearchQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to search questions"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
