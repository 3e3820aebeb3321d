package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rajan16703/gitcompare/internal/github"
	"github.com/Rajan16703/gitcompare/internal/handlers"
	"github.com/Rajan16703/gitcompare/internal/middleware"
	"github.com/Rajan16703/gitcompare/internal/repositories"
	"github.com/Rajan16703/gitcompare/internal/services"
	"github.com/Rajan16703/gitcompare/internal/workers"
	"github.com/Rajan16703/gitcompare/pkg/config"
	"github.com/Rajan16703/gitcompare/pkg/database"
	"github.com/Rajan16703/gitcompare/pkg/logger"
	"github.com/gin-gonic/gin"
	gogithub "github.com/google/go-github/v57/github"
)

func main() {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	// Initialize database
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// GitHub clients: the raw client drives the core fetches, the go-github
	// client only serves the rate limit readout
	githubClient := github.NewClient(
		config.AppConfig.GitHub.APIBaseURL,
		time.Duration(config.AppConfig.GitHub.RequestTimeout)*time.Second,
	)
	rateLimitClient := gogithub.NewClient(nil)

	// Initialize dependencies
	comparisonRepo := repositories.NewComparisonRepository(database.DB)
	shareLinkRepo := repositories.NewShareLinkRepository(database.DB)

	profileService := services.NewProfileService(githubClient)
	healthService := services.NewHealthService(githubClient)
	comparisonService := services.NewComparisonService(comparisonRepo, shareLinkRepo)
	exportService := services.NewExportService()
	rateLimitService := services.NewRateLimitService(rateLimitClient)

	// Initialize worker manager
	workerManager := workers.NewWorkerManager(comparisonRepo, shareLinkRepo)

	// Initialize router
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.SessionMiddleware())

	// Setup routes
	setupRoutes(router, profileService, healthService, comparisonService, exportService, rateLimitService)

	// Start workers
	if err := workerManager.StartAll(); err != nil {
		log.Fatalf("Failed to start workers: %v", err)
	}
	defer workerManager.StopAll()

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}

func setupRoutes(router *gin.Engine, profileService *services.ProfileService, healthService *services.HealthService, comparisonService *services.ComparisonService, exportService *services.ExportService, rateLimitService *services.RateLimitService) {
	// Initialize handlers
	compareHandler := handlers.NewCompareHandler(profileService)
	healthReportHandler := handlers.NewHealthReportHandler(healthService)
	comparisonHandler := handlers.NewComparisonHandler(profileService, comparisonService, exportService)
	statusHandler := handlers.NewStatusHandler(rateLimitService)

	api := router.Group("/api")
	{
		api.POST("/compare", compareHandler.Compare)
		api.GET("/users/:username", compareHandler.GetProfile)

		api.GET("/repos/health", healthReportHandler.AnalyzeReference)
		api.GET("/repos/:owner/:repo/health", healthReportHandler.AnalyzeRepository)

		api.POST("/comparisons", comparisonHandler.SaveComparison)

		api.GET("/ratelimit", statusHandler.RateLimit)
	}

	// Owner-scoped routes; saved comparisons are only readable by their owner,
	// public reads go through share tokens
	owned := router.Group("/api")
	owned.Use(middleware.AuthRequired())
	{
		owned.GET("/comparisons", comparisonHandler.ListComparisons)
		owned.GET("/comparisons/:id", comparisonHandler.GetComparison)
		owned.DELETE("/comparisons/:id", comparisonHandler.DeleteComparison)
		owned.POST("/comparisons/:id/share", comparisonHandler.CreateShareLink)
		owned.GET("/comparisons/:id/export", comparisonHandler.ExportComparison)
	}

	// Public share link resolution
	router.GET("/share/:token", comparisonHandler.ResolveShareLink)

	// Health check endpoint
	router.GET("/health", statusHandler.HealthCheck)
}
