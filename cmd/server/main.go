package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/proconnect-app/backend/internal/metrics"
	"github.com/proconnect-app/backend/internal/router"
	"github.com/proconnect-app/backend/pkg/config"
	"github.com/proconnect-app/backend/pkg/firebase"
	"github.com/proconnect-app/backend/validators"

	firebaseauth "firebase.google.com/go/v4/auth"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Firebase login is optional; enabled only when credentials are configured
	var authClient *firebaseauth.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		authClient = firebaseApp.AuthClient
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, authClient, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Metrics listener
	go metrics.Serve(cfg.MetricsPort)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
