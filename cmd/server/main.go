package main

import (
	"context"
	"log"

	"firebase.google.com/go/v4/messaging"
	"github.com/labstack/echo/v4"
	"github.com/pawradius/backend/internal/router"
	"github.com/pawradius/backend/pkg/config"
	"github.com/pawradius/backend/pkg/firebase"
	"github.com/pawradius/backend/validators"
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

	// Initialize Firebase. Missing credentials leave push unconfigured; the
	// dispatcher still runs and records every attempt.
	ctx := context.Background()
	var messagingClient *messaging.Client
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Printf("Firebase unavailable, push dispatches will be recorded as no-ops: %v", err)
	} else {
		messagingClient = firebaseApp.MessagingClient
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	config.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, cfg, db.Postgres, db.Mongo, messagingClient)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
