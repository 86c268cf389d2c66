package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tarsius/internal/service"
)

type Controller struct {
	catalogSvc   service.CatalogService
	progressSvc  service.ProgressService
	sessionSvc   service.SessionService
	analyticsSvc service.AnalyticsService
	interviewSvc service.InterviewService
	noteSvc      service.NoteService
	planSvc      service.PlanService
}

func NewController(
	catalogSvc service.CatalogService,
	progressSvc service.ProgressService,
	sessionSvc service.SessionService,
	analyticsSvc service.AnalyticsService,
	interviewSvc service.InterviewService,
	noteSvc service.NoteService,
	planSvc service.PlanService,
) *Controller {
	return &Controller{
		catalogSvc:   catalogSvc,
		progressSvc:  progressSvc,
		sessionSvc:   sessionSvc,
		analyticsSvc: analyticsSvc,
		interviewSvc: interviewSvc,
		noteSvc:      noteSvc,
		planSvc:      planSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1")
	{
		// Catalogue routes
		apiV1.GET("/categories", ctrl.ListCategoriesHandler)
		apiV1.GET("/categories/:category_id/questions", ctrl.CategoryQuestionsHandler)
		apiV1.GET("/questions", ctrl.SearchQuestionsHandler)

		// Progress routes
		progress := apiV1.Group("/progress")
		progress.GET("", ctrl.ProgressSnapshotHandler)
		progress.POST("/viewed", ctrl.MarkViewedHandler)
		progress.POST("/bookmarks/toggle", ctrl.ToggleBookmarkHandler)
		progress.POST("/quiz-scores", ctrl.RecordQuizScoreHandler)

		// Practice session routes
		sessions := apiV1.Group("/sessions")
		sessions.GET("", ctrl.ListSessionsHandler)
		sessions.POST("", ctrl.RecordSessionHandler)

		// Analytics
		apiV1.GET("/analytics", ctrl.AnalyticsHandler)

		// Mock interview routes
		interviews := apiV1.Group("/interviews")
		interviews.GET("", ctrl.ListInterviewsHandler)
		interviews.POST("", ctrl.SubmitInterviewHandler)
		interviews.GET("/:interview_id", ctrl.GetInterviewHandler)

		// Study note routes
		notes := apiV1.Group("/notes")
		notes.GET("", ctrl.ListNotesHandler)
		notes.POST("", ctrl.CreateNoteHandler)
		notes.PUT("/:note_id", ctrl.UpdateNoteHandler)
		notes.DELETE("/:note_id", ctrl.DeleteNoteHandler)

		// Study plan routes
		plan := apiV1.Group("/study-plan")
		plan.GET("", ctrl.GetPlanHandler)
		plan.PUT("", ctrl.SavePlanHandler)
		plan.POST("/complete-day", ctrl.CompleteDayHandler)
	}
}
