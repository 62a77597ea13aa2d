package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	configs "github.com/Aaron-Ontoyin/enerlytics-backend/config"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/dto"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/handler"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/middleware"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/repository"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/router"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/service"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/database"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/logger"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/redis"
)

const version = "1.0.0"

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if err := logger.InitLogger(config); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
		zap.String("version", version),
	)

	db, err := database.NewPostgresDB(config)
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}

	// The readings table is partitioned and managed with raw DDL outside
	// of AutoMigrate.
	if err := database.MigrateReadings(db); err != nil {
		logger.GetLogger().Fatal("Failed to migrate readings table", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	if err := database.Seed(db); err != nil {
		// Seed data may already exist
		logger.GetLogger().Error("Failed to seed database", zap.Error(err))
	} else {
		logger.GetLogger().Info("Database seeded successfully")
	}

	// Redis backs the token deny cache. The database stays the source of
	// truth, so the service runs without it.
	cache, err := redis.NewClient(config)
	if err != nil {
		logger.GetLogger().Warn("Redis unavailable, token revocation checks fall back to the database",
			zap.Error(err))
		cache = nil
	} else {
		defer cache.Close()
	}

	if err := dto.RegisterValidations(); err != nil {
		logger.GetLogger().Fatal("Failed to register request validations", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	blacklistRepo := repository.NewTokenBlacklistRepository(db)
	areaRepo := repository.NewCoverageAreaRepository(db)
	transformerRepo := repository.NewTransformerRepository(db)
	meterRepo := repository.NewMeterRepository(db)
	readingRepo := repository.NewReadingRepository(db)
	alertRepo := repository.NewAlertRepository(db)

	// Services
	jwtService := service.NewJWTService(config.JWT)
	blacklistService := service.NewBlacklistService(blacklistRepo, cache)
	authService := service.NewAuthService(userRepo, jwtService, blacklistService)
	infraService := service.NewInfrastructureService(areaRepo, transformerRepo, meterRepo)
	readingService := service.NewReadingService(readingRepo)
	alertService := service.NewAlertService(alertRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, config.Pagination)
	areaHandler := handler.NewCoverageAreaHandler(infraService, config.Pagination)
	transformerHandler := handler.NewTransformerHandler(infraService, config.Pagination)
	meterHandler := handler.NewMeterHandler(infraService, config.Pagination)
	readingHandler := handler.NewReadingHandler(readingService, config.Pagination)
	alertHandler := handler.NewAlertHandler(alertService, config.Pagination)
	healthHandler := handler.NewHealthHandler(db, cache, version)

	jwtMiddleware := middleware.NewJWTMiddleware(authService)

	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go blacklistService.CleanupLoop(cleanupCtx, time.Hour)

	r := router.NewRouter(
		authHandler,
		areaHandler,
		transformerHandler,
		meterHandler,
		readingHandler,
		alertHandler,
		healthHandler,
		jwtMiddleware,
		config,
	).SetupRoutes()

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
			zap.String("host", "0.0.0.0"),
		)
		if err := r.Run(":" + config.App.Port); err != nil {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")
}
