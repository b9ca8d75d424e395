package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prolinked-backend/config"
	_ "prolinked-backend/docs" // swagger spec registration
	"prolinked-backend/internal/cv"
	v1 "prolinked-backend/internal/delivery/http/v1"
	"prolinked-backend/internal/repository/postgres"
	"prolinked-backend/internal/usecase"
	"prolinked-backend/pkg/auth"
	"prolinked-backend/pkg/database"
	"prolinked-backend/pkg/logger"
	"prolinked-backend/pkg/pdf"
	"prolinked-backend/pkg/redis"
	"prolinked-backend/pkg/security"
	"prolinked-backend/pkg/security/antivirus"
	"prolinked-backend/pkg/storage"
	"prolinked-backend/pkg/validation"
)

// @title           PROLINKED Backend API
// @version         1.0
// @description     Candidate profiles, documents, CV generation, jobs and admin review.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting prolinked backend", slog.String("port", cfg.Port))

	ctx := context.Background()

	// 3. Setup Database
	if cfg.RunMigrations {
		if err := database.RunMigrations(ctx, cfg.DBUrl, postgres.Migrations, postgres.MigrationsDir); err != nil {
			logger.Log.Error("Migrations failed", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Log.Info("Migrations applied")
	}

	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Redis is optional; limiters fall back to memory or fail open
	var redisCheck func(context.Context) error
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable", slog.Any("error", err))
		}
		redisCheck = redis.HealthCheck
		defer redis.Close()
	}

	// 5. Files, scanning and PDF rendering
	files, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logger.Log.Error("Failed to set up document storage", slog.Any("error", err))
		os.Exit(1)
	}

	scanner := antivirus.New(cfg.ClamdAddress)
	if !scanner.Available(ctx) {
		logger.Log.Warn("Antivirus scanner not reachable, uploads will be refused", slog.String("scanner", scanner.Name()))
	}

	browser := pdf.NewRenderer(cfg.ChromeBin, time.Duration(cfg.PDFTimeoutSeconds)*time.Second)
	defer browser.Close()
	cvRenderer, err := cv.NewRenderer(browser)
	if err != nil {
		logger.Log.Error("Failed to load CV layouts", slog.Any("error", err))
		os.Exit(1)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)
	documentRepo := postgres.NewDocumentRepository(dbPool)
	templateRepo := postgres.NewCvTemplateRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)

	// 7. Setup UseCases
	validate := validation.New()
	tokens := auth.NewJWTIssuer(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)

	authUC := usecase.NewAuthUsecase(userRepo, candidateRepo, employerRepo, tokens, validate)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)
	documentUC := usecase.NewDocumentUsecase(documentRepo, files, scanner, usecase.DocumentConfig{
		MaxUploadBytes: cfg.MaxUploadBytes,
		CompressImages: cfg.CompressImages,
	})
	templateUC := usecase.NewTemplateUsecase(templateRepo)
	cvUC := usecase.NewCVUsecase(templateRepo, candidateRepo, userRepo, cvRenderer, documentRepo, files, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, employerRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, employerRepo)
	adminUC := usecase.NewAdminUsecase(adminRepo, userRepo, validate)
	healthUC := usecase.NewHealthUsecase(dbPool, redisCheck)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		CandidateUC:   candidateUC,
		DocumentUC:    documentUC,
		TemplateUC:    templateUC,
		CVUC:          cvUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		AdminUC:       adminUC,
		HealthUC:      healthUC,
		UploadQuota:   security.NewUploadLimiter(cfg.UploadPerMinute, cfg.UploadPerDay),
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", slog.Any("error", err))
	}

	logger.Log.Info("Server exiting")
}
