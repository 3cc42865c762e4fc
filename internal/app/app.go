package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stagelink_backend/internal/auth"
	"stagelink_backend/internal/config"
	"stagelink_backend/internal/database"
	"stagelink_backend/internal/geocode"
	"stagelink_backend/internal/handlers"
	"stagelink_backend/internal/logger"
	"stagelink_backend/internal/repositories"
	"stagelink_backend/internal/routes"
	"stagelink_backend/internal/services"
	"stagelink_backend/internal/validator"
	"stagelink_backend/internal/workers"
)

// Run starts the full backend: config, database, workers and the HTTP
// server.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	auth.Init(cfg.JWT.Secret)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleanup := workers.NewCleanupWorker(
		db,
		time.Duration(cfg.Cleanup.IntervalMinutes)*time.Minute,
		cfg.Cleanup.RetentionDays,
	)
	cleanup.Start(ctx)

	router := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin
// engine. Shared with the test server.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	geocoder := geocode.New(geocode.Config{
		BaseURL:     cfg.Geocoding.BaseURL,
		UserAgent:   cfg.Geocoding.UserAgent,
		Timeout:     time.Duration(cfg.Geocoding.TimeoutSeconds) * time.Second,
		MinInterval: time.Duration(cfg.Geocoding.MinIntervalSeconds) * time.Second,
	})

	userRepo := repositories.NewUserRepository(db)
	internshipRepo := repositories.NewInternshipRepository(db, geocoder)
	applicationRepo := repositories.NewApplicationRepository(db)
	forumRepo := repositories.NewForumRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	internshipService := services.NewInternshipService(internshipRepo, userRepo)
	applicationService := services.NewApplicationService(applicationRepo, internshipRepo, userRepo)
	forumService := services.NewForumService(forumRepo, userRepo)
	reportService := services.NewReportService(reportRepo, internshipRepo, forumRepo, userRepo)
	statsService := services.NewStatsService(statsRepo)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		InternshipHandler:  handlers.NewInternshipHandler(base, internshipService),
		ApplicationHandler: handlers.NewApplicationHandler(base, applicationService),
		ForumHandler:       handlers.NewForumHandler(base, forumService),
		ReportHandler:      handlers.NewReportHandler(base, reportService),
		StatsHandler:       handlers.NewStatsHandler(base, statsService),
	}

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	routes.RegisterRoutes(router, appHandlers)

	return router
}
