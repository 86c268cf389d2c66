package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tarsius/config"
	"github.com/lshigami/Tarsius/database"
	"github.com/lshigami/Tarsius/internal/catalog"
	"github.com/lshigami/Tarsius/internal/controller"
	"github.com/lshigami/Tarsius/internal/logger"
	"github.com/lshigami/Tarsius/internal/service"
	"github.com/lshigami/Tarsius/internal/store"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Interview Prep Progress API
// @version 1.0
// @description Study catalogue, progress tracking, practice analytics and mock interviews for interview preparation.
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			store.NewStore,
			NewCatalog,
		),

		// Services layer
		fx.Provide(
			service.NewProgressService,
			service.NewCatalogService,
			service.NewSessionService,
			service.NewAnalyticsService,
			service.NewRandomScorer,
			service.NewInterviewService,
			service.NewNoteService,
			service.NewPlanService,
		),

		// API controller layer
		fx.Provide(
			controller.NewController,
		),

		fx.Invoke(ApplyLogLevel),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	return r
}

// NewCatalog builds the question catalogue: from the remote source when one
// is configured, otherwise from the embedded dataset.
func NewCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.SourceURL != "" {
		return catalog.Load(catalog.NewHTTPSource(cfg.Catalog.SourceURL))
	}
	return catalog.Default(), nil
}

func ApplyLogLevel(cfg *config.Config) {
	logger.SetLevel(cfg.LogLevel)
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle through fx hooks.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	ctrl *controller.Controller,
) {
	ctrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interview prep API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migration for the key-value store...")
	if err := db.AutoMigrate(&store.Entry{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
