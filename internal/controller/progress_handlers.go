package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/lshigami/Tarsius/internal/service"
	"github.com/rs/zerolog/log"
)

// ProgressSnapshotHandler godoc
// @Summary Get the derived progress snapshot
// @Description Totals, viewed percentage and the per-category breakdown, computed from persisted state plus the catalogue.
// @Tags Progress
// @Produce json
// @Success 200 {object} dto.ProgressSnapshotDTO
// @Router /progress [get]
func (ctrl *Controller) ProgressSnapshotHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, ctrl.progressSvc.Snapshot())
}

// MarkViewedHandler godoc
// @Summary Mark a question as viewed
// @Description Idempotent: marking an already viewed question changes nothing.
// @Tags Progress
// @Accept json
// @Produce json
// @Param request body dto.MarkViewedRequest true "Question to mark"
// @Success 200 {object} dto.ProgressSnapshotDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Unknown question id"
// @Router /progress/viewed [post]
func (ctrl *Controller) MarkViewedHandler(ctx *gin.Context) {
	var req dto.MarkViewedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := ctrl.progressSvc.MarkViewed(req.QuestionID); err != nil {
		ctrl.progressError(ctx, err, "MarkViewed")
		return
	}
	ctx.JSON(http.StatusOK, ctrl.progressSvc.Snapshot())
}

// ToggleBookmarkHandler godoc
// @Summary Toggle the bookmark state of a question
// @Tags Progress
// @Accept json
// @Produce json
// @Param request body dto.ToggleBookmarkRequest true "Question to toggle"
// @Success 200 {object} dto.BookmarkStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Unknown question id"
// @Router /progress/bookmarks/toggle [post]
func (ctrl *Controller) ToggleBookmarkHandler(ctx *gin.Context) {
	var req dto.ToggleBookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	bookmarked, err := ctrl.progressSvc.ToggleBookmark(req.QuestionID)
	if err != nil {
		ctrl.progressError(ctx, err, "ToggleBookmark")
		return
	}
	ctx.JSON(http.StatusOK, dto.BookmarkStateDTO{QuestionID: req.QuestionID, Bookmarked: bookmarked})
}

// RecordQuizScoreHandler godoc
// @Summary Record a quiz score for a category
// @Description Overwrites the previous score; only the latest quiz per category is kept. Scores are clamped to [0,100].
// @Tags Progress
// @Accept json
// @Produce json
// @Param request body dto.RecordQuizScoreRequest true "Category and score"
// @Success 200 {object} dto.ProgressSnapshotDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Unknown category id"
// @Router /progress/quiz-scores [post]
func (ctrl *Controller) RecordQuizScoreHandler(ctx *gin.Context) {
	var req dto.RecordQuizScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := ctrl.progressSvc.RecordQuizScore(req.CategoryID, req.Score); err != nil {
		ctrl.progressError(ctx, err, "RecordQuizScore")
		return
	}
	ctx.JSON(http.StatusOK, ctrl.progressSvc.Snapshot())
}

func (ctrl *Controller) progressError(ctx *gin.Context, err error, op string) {
	if errors.Is(err, service.ErrUnknownQuestion) || errors.Is(err, service.ErrUnknownCategory) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	log.Error().Err(err).Str("op", op).Msg("Progress operation failed")
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Progress operation failed", Details: []string{err.Error()}})
}
