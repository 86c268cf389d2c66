package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/lshigami/Tarsius/internal/service"
	"github.com/rs/zerolog/log"
)

// SubmitInterviewHandler godoc
// @Summary Complete a mock interview
// @Description Submit the ordered responses of a finished mock interview. Each response is scored, the overall score is the mean of the response scores, and a feedback tier is attached.
// @Tags Mock Interviews
// @Accept json
// @Produce json
// @Param request body dto.SubmitInterviewRequest true "Interview duration and responses"
// @Success 201 {object} dto.InterviewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Unknown question id"
// @Failure 500 {object} dto.ErrorResponse
// @Router /interviews [post]
func (ctrl *Controller) SubmitInterviewHandler(ctx *gin.Context) {
	var req dto.SubmitInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	interview, err := ctrl.interviewSvc.Submit(req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownQuestion) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("SubmitInterview: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit interview", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, interview)
}

// ListInterviewsHandler godoc
// @Summary List past mock interviews
// @Tags Mock Interviews
// @Produce json
// @Success 200 {array} dto.InterviewSummaryDTO
// @Router /interviews [get]
func (ctrl *Controller) ListInterviewsHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, ctrl.interviewSvc.List())
}

// GetInterviewHandler godoc
// @Summary Get one mock interview with its transcript
// @Tags Mock Interviews
// @Produce json
// @Param interview_id path string true "Interview ID"
// @Success 200 {object} dto.InterviewDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{interview_id} [get]
func (ctrl *Controller) GetInterviewHandler(ctx *gin.Context) {
	interview, err := ctrl.interviewSvc.Get(ctx.Param("interview_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, interview)
}
