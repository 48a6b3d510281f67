package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"votehub/internal/adapters/http/middleware"
	"votehub/internal/adapters/http/routes"
	"votehub/internal/adapters/persistence/models"
	"votehub/internal/adapters/persistence/repositories"
	"votehub/internal/config"
	"votehub/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "votehub/docs" // Swagger docs
)

// @title VoteHub API
// @version 1.0
// @description Election backend: signup, candidacy applications and one-vote ballots.

// @host localhost:3000
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase(db)

	// Auto migrate
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	log.Println("Database migration completed")

	// Bootstrap the admin account when configured
	if err := config.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	// Daily turnout report
	reportService := services.NewReportService(
		repositories.NewUserRepository(db),
		repositories.NewCandidateRepository(db),
	)
	reportService.Start()
	defer reportService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "VoteHub API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
