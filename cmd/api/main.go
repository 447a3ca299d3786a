package main

import (
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

	"github.com/devfolio/devfolio/internal/apperror"
	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/handlers"
	"github.com/devfolio/devfolio/internal/repositories"
	"github.com/devfolio/devfolio/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	credRepo := repositories.NewCredentialRepository(db)
	portfolioRepo := repositories.NewPortfolioRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize services
	pdfExtractor := services.NewPDFExtractorService()
	extractionService := services.NewExtractionService(geminiService)
	ingestService := services.NewIngestService(
		userRepo,
		pdfExtractor,
		extractionService,
		cfg.Upload.MaxFileSize,
		cfg.Gemini.RequestTimeout,
		cfg.Gemini.RetryMaxAttempts,
		cfg.Gemini.RetryInitialDelay,
	)
	portfolioService := services.NewPortfolioService(portfolioRepo, userRepo)
	tokenService := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := services.NewAuthService(
		credRepo,
		userRepo,
		tokenService,
		cfg.OAuth.GoogleClientID,
		cfg.OAuth.GoogleClientSecret,
		cfg.OAuth.RedirectURL,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userRepo, cfg.OAuth.FrontendURL)
	resumeHandler := handlers.NewResumeHandler(ingestService, portfolioService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app. Body limit leaves headroom over the 5MB resume cap
	// for multipart framing; the ingest service enforces the cap itself. The
	// write timeout covers the worst-case ingest (every model attempt plus
	// backoff) so a slow upload still gets its response.
	app := fiber.New(fiber.Config{
		AppName:      "DevFolio API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Gemini.IngestBudget() + 30*time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize) + 1024*1024,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.OAuth.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// OAuth routes
	app.Get("/auth/login/google", authHandler.HandleGoogleLogin)
	app.Get("/oauth2/redirect/google", authHandler.HandleGoogleCallback)

	// API routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Public share links
	api.Get("/public/portfolios/:token", portfolioHandler.HandleGetPublicPortfolio)

	// Authenticated endpoints
	auth := api.Use(handlers.RequireAuth(tokenService))
	auth.Get("/auth/me", authHandler.HandleMe)
	auth.Post("/resume", resumeHandler.HandleUploadResume)
	auth.Get("/resume/:userId", resumeHandler.HandleGetResumeData)
	auth.Post("/portfolios", portfolioHandler.HandleCreatePortfolio)
	auth.Get("/portfolios", portfolioHandler.HandleListPortfolios)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "DevFolio API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /auth/login/google",
				"POST /api/v1/resume",
				"GET /api/v1/resume/:userId",
				"POST /api/v1/portfolios",
				"GET /api/v1/portfolios",
				"GET /api/v1/public/portfolios/:token",
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
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	} else {
		code = apperror.ToHTTPStatus(err)
	}

	return c.Status(code).JSON(fiber.Map{
		"error": apperror.Message(err),
		"code":  apperror.Code(err),
	})
}
