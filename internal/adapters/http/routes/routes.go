package routes

import (
	"bps-peka/internal/adapters/http/handlers"
	"bps-peka/internal/adapters/http/middleware"
	"bps-peka/internal/adapters/persistence/repositories"
	"bps-peka/internal/adapters/realtime"
	"bps-peka/internal/config"
	"bps-peka/internal/core/services"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, hub *realtime.Hub, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	entryRepo := repositories.NewWorkEntryRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, profileRepo, cfg)
	profileService := services.NewProfileService(profileRepo)
	entryService := services.NewEntryService(entryRepo)
	approvalService := services.NewApprovalService(entryRepo, profileRepo, hub)
	dashboardService := services.NewDashboardService(entryRepo, profileRepo)
	recapService := services.NewRecapService(entryRepo, profileRepo)
	navService := services.NewNavigationService(userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	profileHandler := handlers.NewProfileHandler(profileService)
	entryHandler := handlers.NewEntryHandler(entryService)
	approvalHandler := handlers.NewApprovalHandler(approvalService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	recapHandler := handlers.NewRecapHandler(recapService)
	navHandler := handlers.NewNavigationHandler(navService, authService)
	realtimeHandler := handlers.NewRealtimeHandler(hub)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Websocket change feed (authenticated)
	app.Use("/ws/entries", middleware.AuthMiddleware(cfg), realtimeHandler.Upgrade)
	app.Get("/ws/entries", websocket.New(realtimeHandler.Feed))

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, healthHandler, authHandler, profileHandler, entryHandler,
		approvalHandler, dashboardHandler, recapHandler, navHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	entryHandler *handlers.EntryHandler,
	approvalHandler *handlers.ApprovalHandler,
	dashboardHandler *handlers.DashboardHandler,
	recapHandler *handlers.RecapHandler,
	navHandler *handlers.NavigationHandler,
	cfg *config.Config,
) {
	// API Info
	router.Get("/", healthHandler.APIInfo)

	// Auth routes (public)
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Navigation guard routes (session optional)
	navRoutes := router.Group("/navigation")
	setupNavigationRoutes(navRoutes, navHandler, cfg)

	// Profile routes (Authenticated users)
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	setupProfileRoutes(profileRoutes, profileHandler)

	// Work entry routes (Authenticated users)
	entryRoutes := router.Group("/entries")
	entryRoutes.Use(middleware.AuthMiddleware(cfg))
	setupEntryRoutes(entryRoutes, entryHandler)

	// Approval routes (Kepala satker only)
	approvalRoutes := router.Group("/approvals")
	approvalRoutes.Use(middleware.AuthMiddleware(cfg))
	approvalRoutes.Use(middleware.KepalaOnly())
	setupApprovalRoutes(approvalRoutes, approvalHandler)

	// Dashboard routes (Authenticated users)
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Get("/", dashboardHandler.Get)

	// Recap routes (Authenticated users; satker-wide recaps restricted below)
	recapRoutes := router.Group("/recaps")
	recapRoutes.Use(middleware.AuthMiddleware(cfg))
	setupRecapRoutes(recapRoutes, recapHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (rate limited against brute force)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Session bootstrap resolves to "no session" without a valid token
	router.Get("/session", middleware.OptionalAuth(cfg), handler.Session)

	// Protected routes
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupNavigationRoutes configures the route guard endpoints
func setupNavigationRoutes(router fiber.Router, handler *handlers.NavigationHandler, cfg *config.Config) {
	router.Get("/resolve", middleware.OptionalAuth(cfg), handler.Resolve)
	router.Put("/last-path", middleware.AuthMiddleware(cfg), handler.RememberPath)
}

// setupProfileRoutes configures profile routes (Authenticated)
func setupProfileRoutes(router fiber.Router, handler *handlers.ProfileHandler) {
	router.Get("/", handler.Get)
	router.Put("/", handler.Save)
}

// setupEntryRoutes configures work entry routes (Authenticated)
func setupEntryRoutes(router fiber.Router, handler *handlers.EntryHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}

// setupApprovalRoutes configures review queue routes (Kepala satker only)
func setupApprovalRoutes(router fiber.Router, handler *handlers.ApprovalHandler) {
	router.Get("/pending", handler.ListPending)
	router.Post("/:id", handler.Decide)
}

// setupRecapRoutes configures monthly recap routes
func setupRecapRoutes(router fiber.Router, handler *handlers.RecapHandler) {
	// Month options barely change; let clients cache them
	router.Get("/months", middleware.MonthOptionsCache(), handler.MonthOptions)
	router.Get("/own", handler.Own)

	// Satker-wide recaps (Kepala satker only)
	router.Get("/all", middleware.KepalaOnly(), handler.AllEmployees)
	router.Get("/all/export", middleware.KepalaOnly(), handler.Export)
}
