package main

import (
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hazuki/health-log-api/internal/config"
	"github.com/hazuki/health-log-api/internal/constants"
	"github.com/hazuki/health-log-api/internal/database"
	"github.com/hazuki/health-log-api/internal/handlers"
	"github.com/hazuki/health-log-api/internal/middleware"
	"github.com/hazuki/health-log-api/internal/repository"
	"github.com/hazuki/health-log-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Configure logging
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations and seed the default principal
	if err := database.Migrate(); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.EnsureDefaultUser(cfg.DefaultUserID, cfg.DefaultUserEmail); err != nil {
		logrus.Fatalf("Failed to seed default user: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		logrus.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Wire repositories, services, handlers
	db := database.GetDB()
	entryRepo := repository.NewEntryRepository(db)
	fieldTypeRepo := repository.NewFieldTypeRepository(db)

	entryService := services.NewEntryService(entryRepo)
	fieldTypeService := services.NewFieldTypeService(fieldTypeRepo)

	entryHandler := handlers.NewEntryHandler(entryService)
	fieldTypeHandler := handlers.NewFieldTypeHandler(fieldTypeService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Health Log API is running",
		})
	})

	// API routes; every request runs as a resolved user
	api := r.Group("/api")
	api.Use(middleware.Identity(cfg.DefaultUserID))
	{
		entries := api.Group("/entries")
		{
			entries.POST("", entryHandler.CreateEntry)
			entries.GET("", entryHandler.ListEntries)
		}

		fieldTypes := api.Group("/field-types")
		{
			fieldTypes.GET("", fieldTypeHandler.ListFieldTypes)
			fieldTypes.PATCH("", fieldTypeHandler.UpdateFieldType)
			fieldTypes.DELETE("", fieldTypeHandler.DeleteFieldType)
		}
	}

	// Start server
	logrus.Infof("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
