package router

import (
	"log"

	"firebase.google.com/go/v4/messaging"
	"github.com/labstack/echo/v4"
	"github.com/pawradius/backend/internal/handlers"
	"github.com/pawradius/backend/internal/middleware"
	"github.com/pawradius/backend/internal/models"
	"github.com/pawradius/backend/internal/repositories"
	"github.com/pawradius/backend/internal/services"
	"github.com/pawradius/backend/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes and injects dependencies.
// messagingClient may be nil when Firebase credentials are absent; dispatches
// then run as recorded no-ops.
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, mgClient *mongo.Client, messagingClient *messaging.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.BroadcastAlert{},
		&models.BroadcastCredit{},
		&models.Interaction{},
		&models.NotificationDispatchRecord{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	alertRepo := repositories.NewPostgresAlertRepository(pgdb)
	creditRepo := repositories.NewPostgresCreditRepository(pgdb)
	interactionRepo := repositories.NewPostgresInteractionRepository(pgdb)
	dispatchRecordRepo := repositories.NewPostgresDispatchRecordRepository(pgdb)
	communityPostRepo := repositories.NewMongoCommunityPostRepository(mgClient.Database("pawradius"))

	// --- Initialize Services ---
	entitlementService := services.NewEntitlementService(userRepo, creditRepo)
	broadcastService := services.NewBroadcastService(alertRepo, communityPostRepo, entitlementService)
	interactionService := services.NewInteractionService(interactionRepo, alertRepo)

	var sender services.PushSender
	if messagingClient != nil {
		sender = services.NewFCMSender(messagingClient)
	}
	dispatchService := services.NewDispatchService(alertRepo, userRepo, dispatchRecordRepo, entitlementService, sender, services.DispatcherConfig{
		Enabled:       cfg.NotificationsEnabled,
		BatchSize:     cfg.PushBatchSize,
		BatchPause:    cfg.PushBatchPause,
		MinVouchScore: cfg.MinVouchScore,
	})

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User routes (push token, location, entitlement)
	userHandler := handlers.NewUserHandler(userRepo, entitlementService)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	// Broadcast routes
	broadcastHandler := handlers.NewBroadcastHandler(broadcastService, dispatchService)
	broadcastHandler.RegisterBroadcastRoutes(api)
	log.Println("Broadcast routes configured.")

	// Interaction routes
	interactionHandler := handlers.NewInteractionHandler(interactionService)
	interactionHandler.RegisterInteractionRoutes(api)
	log.Println("Interaction routes configured.")

	// Dispatch routes
	dispatchHandler := handlers.NewDispatchHandler(dispatchService, dispatchRecordRepo)
	dispatchHandler.RegisterDispatchRoutes(api)
	log.Println("Dispatch routes configured.")

	log.Println("All routes configured.")
}
