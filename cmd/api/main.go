package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobdesk-backend/config"
	v1 "jobdesk-backend/internal/delivery/http/v1"
	"jobdesk-backend/internal/repository/postgres"
	"jobdesk-backend/internal/usecase"
	"jobdesk-backend/pkg/database"
	"jobdesk-backend/pkg/logger"
	"jobdesk-backend/pkg/redis"
	"jobdesk-backend/pkg/token"
)

// @title           Jobdesk Backend API
// @version         1.0
// @description     Job board backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting jobdesk backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresPool(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Rate limiting degrades to the in-process store when Redis is absent.
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	cvRepo := postgres.NewCVRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	appRepo := postgres.NewApplicationRepository(dbPool)
	portfolioRepo := postgres.NewPortfolioRepository(dbPool)

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	cvUC := usecase.NewCVUsecase(cvRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, profileRepo)
	appUC := usecase.NewApplicationUsecase(appRepo, jobRepo, profileRepo)
	portfolioUC := usecase.NewPortfolioUsecase(portfolioRepo)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		ProfileUC:   profileUC,
		CVUC:        cvUC,
		SkillUC:     skillUC,
		JobUC:       jobUC,
		AppUC:       appUC,
		PortfolioUC: portfolioUC,
		Tokens:      tokens,
		Config:      cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
