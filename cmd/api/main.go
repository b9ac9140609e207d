package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/ats-resume-analyzer/internal/config"
	"alfredoptarigan/ats-resume-analyzer/internal/handlers"
	"alfredoptarigan/ats-resume-analyzer/internal/repositories"
	"alfredoptarigan/ats-resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	ctx := context.Background()

	// Initialize workspace
	workspaceRepo := repositories.NewWorkspaceRepository(cfg.Generation.Params())
	log.Println("✅ Workspace initialized successfully")

	// Initialize services
	extractor := services.NewDocumentExtractor()

	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Printf("✅ Gemini AI initialized successfully (model: %s)\n", geminiService.Model())

	var storageService services.StorageService
	if cfg.R2.Enabled() {
		storageService, err = services.NewR2StorageService(ctx,
			cfg.R2.AccountID,
			cfg.R2.Bucket,
			cfg.R2.AccessKey,
			cfg.R2.SecretKey,
		)
		if err != nil {
			log.Fatalf("❌ Failed to initialize R2 storage: %v", err)
		}
		log.Printf("✅ R2 import enabled for bucket '%s'\n", storageService.Bucket())
	} else {
		log.Println("ℹ️  R2 import disabled")
	}

	publisher := services.NewNoopPublisher()
	if cfg.RabbitMQ.Enabled() {
		publisher, err = services.NewEventPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("❌ Failed to initialize RabbitMQ: %v", err)
		}
	} else {
		log.Println("ℹ️  Workspace events disabled")
	}

	analyzerService := services.NewAnalyzerService(extractor, geminiService, publisher)
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	uploadHandler := handlers.NewUploadHandler(
		analyzerService,
		workspaceRepo,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzerService,
		workspaceRepo,
		cfg.Gemini.Timeout,
	)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ATS Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Gemini.Timeout + 10*time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1024*1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	handlers.RegisterRoutes(app.Group("/api/v1"), uploadHandler, analyzeHandler, workspaceHandler)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ATS Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/resume",
				"POST /api/v1/resume/import",
				"POST /api/v1/analyze",
				"POST /api/v1/rephrase",
				"GET /api/v1/workspace",
				"DELETE /api/v1/workspace",
				"GET /api/v1/settings",
				"PUT /api/v1/settings",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
		if err := publisher.Close(); err != nil {
			log.Printf("⚠️  Failed to close event publisher: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s (%s)\n", addr, cfg.Server.Env)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
