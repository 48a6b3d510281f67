package routes

import (
	"time"

	"votehub/internal/adapters/http/handlers"
	"votehub/internal/adapters/http/middleware"
	"votehub/internal/adapters/persistence/repositories"
	"votehub/internal/config"
	"votehub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	voteRepo := repositories.NewVoteRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg)
	candidacyService := services.NewCandidacyService(userRepo)
	votingService := services.NewVotingService(userRepo, candidateRepo, voteRepo)
	candidateService := services.NewCandidateService(candidateRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	candidateHandler := handlers.NewCandidateHandler(candidateService)
	candidacyHandler := handlers.NewCandidacyHandler(candidacyService)
	voteHandler := handlers.NewVoteHandler(votingService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Everything below /api/v1 that is not listed as public goes through the
	// access guard; the guard resolves the identity, the admin gate narrows it.
	apiV1 := app.Group("/api/v1")
	authGuard := middleware.AuthMiddleware(authService, cfg)
	adminGate := middleware.AdminOnly()

	// User routes
	userRoutes := apiV1.Group("/user")
	userRoutes.Post("/signup", middleware.AuthRateLimiter(), authHandler.Signup)
	userRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	userRoutes.Get("/profile", authGuard, userHandler.Profile)
	userRoutes.Put("/profile/password", authGuard, userHandler.ChangePassword)

	// Candidate routes
	candidateRoutes := apiV1.Group("/candidate")

	// Public reads
	candidateRoutes.Get("/", middleware.CacheControl(30*time.Second), candidateHandler.List)
	candidateRoutes.Get("/vote/count", middleware.NoCacheHeaders(), voteHandler.Count)

	// Authenticated voter operations
	candidateRoutes.Post("/apply", authGuard, candidacyHandler.Apply)
	candidateRoutes.Post("/vote/:candidateId", authGuard, voteHandler.Cast)

	// Admin operations
	candidateRoutes.Post("/", authGuard, adminGate, candidateHandler.Create)
	candidateRoutes.Put("/applications/:applicationId", authGuard, adminGate, candidacyHandler.Decide)
	candidateRoutes.Get("/applications", authGuard, adminGate, candidacyHandler.ListApplications)
	candidateRoutes.Put("/:candidateId", authGuard, adminGate, candidateHandler.Update)
	candidateRoutes.Delete("/:candidateId", authGuard, adminGate, candidateHandler.Delete)
}
