package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/zenpixdev/meet-task-tracker/pkg/validator"

	"github.com/zenpixdev/meet-task-tracker/internal/adapter/handler"
	"github.com/zenpixdev/meet-task-tracker/internal/adapter/repository"
	"github.com/zenpixdev/meet-task-tracker/internal/infrastructure/database"
	"github.com/zenpixdev/meet-task-tracker/internal/usecase/extraction"
	transcriptuse "github.com/zenpixdev/meet-task-tracker/internal/usecase/transcript"
	pkgai "github.com/zenpixdev/meet-task-tracker/pkg/ai"
	"github.com/zenpixdev/meet-task-tracker/pkg/config"
	"github.com/zenpixdev/meet-task-tracker/pkg/mail"
)

// @title           Meet Task Tracker API
// @version         1.0
// @description     Extracts action items from pasted meeting transcripts and manages them

// @host      meeting.zenpix.shop
// @BasePath  /api

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))

	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("DB_AUTO_MIGRATE is enabled in production. Disable it and run sql-migrate from the pipeline.")
		}
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema changes in CI/CD/production")
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	transcriptRepo := repository.NewTranscriptRepository(db)

	// Initialize AI extraction
	log.Println("🤖 Initializing extraction components...")
	openaiClient := pkgai.NewOpenAIClient(&cfg.OpenAI)
	extractor := extraction.NewExtractor(openaiClient, logger)

	// Initialize transcript service
	transcriptService := transcriptuse.NewService(transcriptRepo, extractor, logger)
	transcriptController := handler.NewTranscriptController(transcriptService, logger)

	// Initialize mail delivery
	log.Println("✉️  Initializing mail client...")
	resendClient := mail.NewResendClient(&cfg.Mail)
	mailController := handler.NewMailController(resendClient, logger)

	// Initialize status probes
	statusHandler := handler.NewStatusHandler(db, openaiClient, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, transcriptController, mailController, statusHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/api/status", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
