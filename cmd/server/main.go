package main

import (
	"os"
	"os/signal"
	"syscall"

	"bps-peka/internal/adapters/http/middleware"
	"bps-peka/internal/adapters/http/routes"
	"bps-peka/internal/adapters/persistence/models"
	"bps-peka/internal/adapters/persistence/repositories"
	"bps-peka/internal/adapters/realtime"
	"bps-peka/internal/config"
	"bps-peka/internal/core/services"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	_ "bps-peka/docs" // Swagger docs
)

// @title PEKA API
// @version 1.0
// @description Aplikasi Pencatatan Kinerja Harian Pegawai BPS Kabupaten Buru
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email ipds.8104@bps.go.id

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host peka.bps.go.id
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed the kepala satker account
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	// Start Cron Service for refresh token cleanup (03:00 daily)
	cronService := services.NewCronService(repositories.NewRefreshTokenRepository(db))
	cronService.Start()
	defer cronService.Stop()

	// Entry change feed hub
	hub := realtime.NewHub()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "PEKA API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db, hub, and cfg for dependency injection)
	routes.Setup(app, db, hub, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
