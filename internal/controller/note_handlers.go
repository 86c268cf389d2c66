package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tarsius/internal/dto"
	"github.com/lshigami/Tarsius/internal/service"
	"github.com/rs/zerolog/log"
)

// ListNotesHandler godoc
// @Summary List study notes
// @Tags Study Notes
// @Produce json
// @Param question_id query string false "Only notes attached to this question"
// @Success 200 {array} dto.NoteDTO
// @Router /notes [get]
func (ctrl *Controller) ListNotesHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, ctrl.noteSvc.List(ctx.Query("question_id")))
}

// CreateNoteHandler godoc
// @Summary Create a study note on a question
// @Tags Study Notes
// @Accept json
// @Produce json
// @Param request body dto.CreateNoteRequest true "Note content"
// @Success 201 {object} dto.NoteDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Unknown question id"
// @Router /notes [post]
func (ctrl *Controller) CreateNoteHandler(ctx *gin.Context) {
	var req dto.CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	note, err := ctrl.noteSvc.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownQuestion) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("CreateNote: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create note"})
		return
	}
	ctx.JSON(http.StatusCreated, note)
}

// UpdateNoteHandler godoc
// @Summary Update a study note
// @Tags Study Notes
// @Accept json
// @Produce json
// @Param note_id path string true "Note ID"
// @Param request body dto.UpdateNoteRequest true "New content"
// @Success 200 {object} dto.NoteDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /notes/{note_id} [put]
func (ctrl *Controller) UpdateNoteHandler(ctx *gin.Context) {
	var req dto.UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	note, err := ctrl.noteSvc.Update(ctx.Param("note_id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("UpdateNote: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update note"})
		return
	}
	ctx.JSON(http.StatusOK, note)
}

// DeleteNoteHandler godoc
// @Summary Delete a study note
// @Tags Study Notes
// @Produce json
// @Param note_id path string true "Note ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /notes/{note_id} [delete]
func (ctrl *Controller) DeleteNoteHandler(ctx *gin.Context) {
	if err := ctrl.noteSvc.Delete(ctx.Param("note_id")); err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}
