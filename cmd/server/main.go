package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/crewmatch/internal/ai/gemini"
	"github.com/alimgiray/crewmatch/internal/handlers"
	"github.com/alimgiray/crewmatch/internal/repositories"
	"github.com/alimgiray/crewmatch/internal/seed"
	"github.com/alimgiray/crewmatch/internal/services"
	"github.com/alimgiray/crewmatch/pkg/config"
	"github.com/alimgiray/crewmatch/pkg/database"
	"github.com/alimgiray/crewmatch/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	logger.Init()

	if err := config.Load(); err != nil {
		logger.WithError(err).Error("Failed to load config")
		os.Exit(1)
	}
	cfg := config.AppConfig

	gin.SetMode(cfg.Server.Mode)

	collaboratorRepo, projectRepo, requestRepo, cleanup, err := buildRepositories(cfg)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize record store")
		os.Exit(1)
	}
	defer cleanup()

	// The generative matcher is optional: without an API key every
	// generation path falls back to the local template policy.
	var proposer services.MatchProposer
	var recommender services.Recommender
	if cfg.Gemini.APIKey != "" {
		generator, err := gemini.NewGenerator(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.WithError(err).Warn("Failed to initialize generative client, using template fallback only")
		} else {
			matcher := gemini.NewMatcher(generator)
			proposer = matcher
			recommender = matcher
			logger.WithField("model", generator.Model()).Info("Generative matching enabled")
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, using template fallback only")
	}

	generationTimeout := time.Duration(cfg.Gemini.Timeout) * time.Second
	rng := services.NewRand(time.Now().UnixNano())

	matchService := services.NewMatchService(services.DefaultSeniorExperienceLevels)
	requestGenerator := services.NewRequestGeneratorService(
		collaboratorRepo, requestRepo, projectRepo, matchService, proposer, rng, generationTimeout,
	)
	projectService := services.NewProjectService(projectRepo, collaboratorRepo, matchService, requestGenerator)
	requestService := services.NewRequestService(requestRepo, projectRepo, collaboratorRepo)
	collaboratorService := services.NewCollaboratorService(collaboratorRepo, projectRepo, matchService, rng)
	recommendationService := services.NewRecommendationService(
		projectRepo, collaboratorRepo, matchService, recommender, rng, generationTimeout,
	)

	collaboratorHandler := handlers.NewCollaboratorHandler(collaboratorService)
	projectHandler := handlers.NewProjectHandler(projectService)
	requestHandler := handlers.NewCollaborationRequestHandler(requestService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	setupRoutes(router, collaboratorHandler, projectHandler, requestHandler, recommendationHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Server failed to start")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	logger.Info("Server stopped")
}

// buildRepositories wires the configured store backend. The memory backend
// starts pre-seeded; the sqlite backend is seeded only when empty.
func buildRepositories(cfg *config.Config) (
	repositories.CollaboratorRepository,
	repositories.ProjectRepository,
	repositories.CollaborationRequestRepository,
	func(),
	error,
) {
	if cfg.Store.Backend != "sqlite" {
		return repositories.NewMemoryCollaboratorRepository(seed.Collaborators()),
			repositories.NewMemoryProjectRepository(seed.Projects()),
			repositories.NewMemoryCollaborationRequestRepository(seed.Requests()),
			func() {},
			nil
	}

	if err := database.Init(cfg.Store.Path); err != nil {
		return nil, nil, nil, nil, err
	}

	collaboratorRepo := repositories.NewSQLiteCollaboratorRepository(database.DB)
	projectRepo := repositories.NewSQLiteProjectRepository(database.DB)
	requestRepo := repositories.NewSQLiteCollaborationRequestRepository(database.DB)

	if err := seedIfEmpty(collaboratorRepo, projectRepo, requestRepo); err != nil {
		database.Close()
		return nil, nil, nil, nil, err
	}

	cleanup := func() {
		if err := database.Close(); err != nil {
			logger.WithError(err).Error("Failed to close database")
		}
	}
	return collaboratorRepo, projectRepo, requestRepo, cleanup, nil
}

func seedIfEmpty(
	collaboratorRepo repositories.CollaboratorRepository,
	projectRepo repositories.ProjectRepository,
	requestRepo repositories.CollaborationRequestRepository,
) error {
	existing, err := collaboratorRepo.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, c := range seed.Collaborators() {
		if err := collaboratorRepo.Insert(c); err != nil {
			return err
		}
	}
	for _, p := range seed.Projects() {
		if err := projectRepo.Insert(p); err != nil {
			return err
		}
	}
	for _, r := range seed.Requests() {
		if err := requestRepo.Insert(r); err != nil {
			return err
		}
	}
	logger.Info("Seeded empty store with demo data")
	return nil
}

func setupRoutes(
	router *gin.Engine,
	collaboratorHandler *handlers.CollaboratorHandler,
	projectHandler *handlers.ProjectHandler,
	requestHandler *handlers.CollaborationRequestHandler,
	recommendationHandler *handlers.RecommendationHandler,
) {
	router.GET("/health", handlers.Health)

	api := router.Group("/api")
	{
		api.GET("/collaborators", collaboratorHandler.List)
		api.GET("/collaborators/export", collaboratorHandler.Export)
		api.GET("/collaborators/:id/profile", collaboratorHandler.Profile)
		api.POST("/collaborators/ai-recommend", recommendationHandler.Recommend)

		api.GET("/projects", projectHandler.List)
		api.POST("/projects", projectHandler.Create)
		api.GET("/projects/:id", projectHandler.Get)
		api.DELETE("/projects/:id/collaborators/:collaboratorId", projectHandler.RemoveCollaborator)

		api.GET("/collaboration-requests", requestHandler.List)
		api.POST("/collaboration-requests", requestHandler.Create)
		api.POST("/collaboration-requests/:id/accept", requestHandler.Accept)
		api.POST("/collaboration-requests/:id/decline", requestHandler.Decline)

		api.GET("/ai-recommendations", recommendationHandler.ForProject)
	}
}
