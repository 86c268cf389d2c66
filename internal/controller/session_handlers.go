package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/rs/zerolog/log"
)

// RecordSessionHandler godoc
// @Summary Record a completed practice session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body dto.RecordSessionRequest true "Session data"
// @Success 201 {object} dto.SessionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions [post]
func (ctrl *Controller) RecordSessionHandler(ctx *gin.Context) {
	var req dto.RecordSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	session, err := ctrl.sessionSvc.Record(req)
	if err != nil {
		log.Error().Err(err).Msg("RecordSession: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to record session"})
		return
	}
	ctx.JSON(http.StatusCreated, session)
}

// ListSessionsHandler godoc
// @Summary List the practice session history
// @Tags Sessions
// @Produce json
// @Success 200 {array} dto.SessionDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions [get]
func (ctrl *Controller) ListSessionsHandler(ctx *gin.Context) {
	history := ctrl.sessionSvc.History()
	result := make([]dto.SessionDTO, 0, len(history))
	if err := copier.Copy(&result, &history); err != nil {
		log.Error().Err(err).Msg("ListSessions: failed to map session history")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list sessions"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// AnalyticsHandler godoc
// @Summary Get the analytics dashboard
// @Description Overview statistics, per-category progress and the 7-week activity trend, oldest week first.
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsDTO
// @Router /analytics [get]
func (ctrl *Controller) AnalyticsHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, ctrl.analyticsSvc.Dashboard())
}
