package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/lshigami/Tarsius/internal/service"
	"github.com/rs/zerolog/log"
)

// GetPlanHandler godoc
// @Summary Get the active study plan
// @Tags Study Plan
// @Produce json
// @Success 200 {object} dto.PlanDTO
// @Failure 404 {object} dto.ErrorResponse "No active plan"
// @Router /study-plan [get]
func (ctrl *Controller) GetPlanHandler(ctx *gin.Context) {
	plan, err := ctrl.planSvc.Get()
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, plan)
}

// SavePlanHandler godoc
// @Summary Create or replace the active study plan
// @Description At most one plan is active; saving replaces it and resets streaks.
// @Tags Study Plan
// @Accept json
// @Produce json
// @Param request body dto.SavePlanRequest true "Plan definition"
// @Success 200 {object} dto.PlanDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse
// @Router /study-plan [put]
func (ctrl *Controller) SavePlanHandler(ctx *gin.Context) {
	var req dto.SavePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	plan, err := ctrl.planSvc.Save(req)
	if err != nil {
		log.Error().Err(err).Msg("SavePlan: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save study plan"})
		return
	}
	ctx.JSON(http.StatusOK, plan)
}

// CompleteDayHandler godoc
// @Summary Mark today's study goal as completed
// @Description Idempotent within a calendar day; updates current and longest streaks.
// @Tags Study Plan
// @Produce json
// @Success 200 {object} dto.PlanDTO
// @Failure 404 {object} dto.ErrorResponse "No active plan"
// @Router /study-plan/complete-day [post]
func (ctrl *Controller) CompleteDayHandler(ctx *gin.Context) {
	plan, err := ctrl.planSvc.CompleteDay()
	if err != nil {
		if errors.Is(err, service.ErrNoActivePlan) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("CompleteDay: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to complete study day"})
		return
	}
	ctx.JSON(http.StatusOK, plan)
}
