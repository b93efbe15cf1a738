package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/xgyuan/cookshare/backend/internal/router"
	"github.com/xgyuan/cookshare/backend/pkg/config"
	"github.com/xgyuan/cookshare/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, db, cfg.UploadDir)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
