package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/monjournal/journal-api/internal/config"
	"github.com/monjournal/journal-api/internal/database"
	"github.com/monjournal/journal-api/internal/handlers"
	"github.com/monjournal/journal-api/internal/logger"
	"github.com/monjournal/journal-api/internal/middleware"
	"github.com/monjournal/journal-api/internal/repository"
	"github.com/monjournal/journal-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(cfg.GinMode); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	entryRepo := repository.NewEntryRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	writingRepo := repository.NewWritingRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	// Services
	userService := services.NewUserService(userRepo)
	tagService := services.NewTagService(tagRepo)
	entryService := services.NewEntryService(entryRepo)
	goalService := services.NewGoalService(goalRepo)
	writingService := services.NewWritingService(writingRepo)
	projectService := services.NewProjectService(projectRepo)
	statsService := services.NewStatsService(entryRepo)
	settingsService := services.NewSettingsService(userRepo)

	// Handlers
	entryHandler := handlers.NewEntryHandler(entryService)
	tagHandler := handlers.NewTagHandler(tagService)
	goalHandler := handlers.NewGoalHandler(goalService)
	writingHandler := handlers.NewWritingHandler(writingService)
	projectHandler := handlers.NewProjectHandler(projectService)
	statsHandler := handlers.NewStatsHandler(statsService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	// Session middleware: the cookie only caches the resolved user id.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("journal_session", store))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Journal API is running",
		})
	})

	// API routes: everything runs as the single implicit user.
	api := r.Group("/api")
	api.Use(middleware.ResolveUser(userService))
	{
		entries := api.Group("/entries")
		{
			entries.GET("", entryHandler.ListEntries)
			entries.POST("", entryHandler.CreateEntry)
			entries.PATCH("/:id", entryHandler.UpdateEntry)
			entries.DELETE("/:id", entryHandler.DeleteEntry)
			entries.POST("/:id/unlock", entryHandler.UnlockEntry)
		}

		tags := api.Group("/tags")
		{
			tags.GET("", tagHandler.ListTags)
			tags.POST("", tagHandler.CreateTag)
		}

		goals := api.Group("/goals")
		{
			goals.GET("", goalHandler.ListGoals)
			goals.POST("", goalHandler.CreateGoal)
			goals.POST("/:id/toggle", goalHandler.ToggleCompletion)
			goals.PUT("/:id/remark", goalHandler.SetRemark)
		}

		writings := api.Group("/writings")
		{
			writings.GET("", writingHandler.ListWritings)
			writings.POST("", writingHandler.CreateWriting)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.PATCH("/:id/status", projectHandler.UpdateStatus)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/entries", statsHandler.StatsRows)
			stats.GET("/sleep", statsHandler.SleepSeries)
			stats.GET("/screen-time", statsHandler.ScreenTimeWeekly)
			stats.GET("/entry-dates", statsHandler.EntryDates)
		}

		api.GET("/settings", settingsHandler.GetSettings)
		api.PUT("/settings", settingsHandler.UpdateSettings)
		api.GET("/counter", settingsHandler.GetCounter)
		api.POST("/counter", settingsHandler.UpdateCounter)
	}

	// Start server
	logger.L().Info("server starting", zap.String("addr", cfg.ServerAddr))
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
