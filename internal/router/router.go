package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/proconnect-app/backend/internal/handlers"
	"github.com/proconnect-app/backend/internal/interactions"
	"github.com/proconnect-app/backend/internal/middleware"
	"github.com/proconnect-app/backend/internal/models"
	"github.com/proconnect-app/backend/internal/repositories"
	"github.com/proconnect-app/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	if err := pgdb.AutoMigrate(&models.Account{}); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	mongoDB := mgClient.Database(cfg.MongoDBName)
	accountRepo := repositories.NewPostgresAccountRepository(pgdb)
	userRepo := repositories.NewMongoUserRepository(mongoDB)
	postRepo := repositories.NewMongoPostRepository(mongoDB)
	interactionRepo := repositories.NewMongoInteractionRepository(mongoDB)

	// --- Interaction service ---
	service := interactions.NewService(postRepo, userRepo, interactionRepo)

	authMW := middleware.JWTAuth(cfg.JWTSecret)

	// Auth, directory and profile routes
	authGroup := e.Group("/auth")
	authHandler := handlers.NewAuthHandler(accountRepo, userRepo, firebaseAuthClient, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup, authMW)
	userHandler := handlers.NewUserHandler(userRepo, service)
	userHandler.RegisterUserRoutes(authGroup, authMW)
	log.Println("Auth and user routes configured.")

	// Post routes
	postGroup := e.Group("/posts")
	postHandler := handlers.NewPostHandler(service)
	postHandler.RegisterPostRoutes(postGroup, authMW)
	log.Println("Post routes configured.")

	log.Println("All routes configured.")
}
