package main

import (
	"careerboost-api/internal/handler"
	"careerboost-api/internal/middleware"
	"careerboost-api/internal/storage"
	"careerboost-api/pkg/config"
	"careerboost-api/pkg/logger"
	"careerboost-api/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting CareerBoost API...", zap.String("environment", cfg.Server.Env))

	// Select the storage backend: Postgres when DATABASE_URL is set,
	// in-memory otherwise
	store, err := storage.New(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	backend := "memory"
	if cfg.Database.Configured() {
		backend = "postgres"
	}
	prometheus.SetStorageInfo(backend)

	// Wire handlers to the selected backend and the AI provider
	handler.Init(store, cfg)

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/api/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))

	// API routes; token validation only applies when SUPABASE_JWT_SECRET is set
	api := e.Group("/api", middleware.AuthMiddleware(&cfg.Auth))

	// Users
	api.GET("/users/:id", handler.GetUser)
	api.POST("/users", handler.CreateUser)
	api.GET("/users/email/:email", handler.GetUserByEmail)
	api.GET("/users/supabase/:supabaseId", handler.GetUserBySupabaseID)

	// Resumes
	api.GET("/users/:id/resumes", handler.GetUserResumes)
	api.POST("/resumes", handler.CreateResume)
	api.PUT("/resumes/:id", handler.UpdateResume)
	api.DELETE("/resumes/:id", handler.DeleteResume)

	// Applications
	api.GET("/users/:id/applications", handler.GetUserApplications)
	api.POST("/applications", handler.CreateApplication)
	api.PUT("/applications/:id", handler.UpdateApplication)

	// Profiles
	api.GET("/users/:id/profile", handler.GetUserProfile)
	api.POST("/profiles", handler.UpsertProfile)

	// Dashboard aggregation
	api.GET("/users/:id/dashboard", handler.GetDashboard)

	// AI proxy
	api.POST("/ai/generate", handler.GenerateText)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port), zap.String("storage", backend))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
