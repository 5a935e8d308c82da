package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/wuddevdet/platform-api/internal/handler/http"
	redisclient "github.com/wuddevdet/platform-api/internal/infrastructure/cache"
	"github.com/wuddevdet/platform-api/internal/infrastructure/config"
	"github.com/wuddevdet/platform-api/internal/infrastructure/database"
	"github.com/wuddevdet/platform-api/internal/infrastructure/jwt"
	"github.com/wuddevdet/platform-api/internal/infrastructure/logger"
	passwordservice "github.com/wuddevdet/platform-api/internal/infrastructure/password_service"
	"github.com/wuddevdet/platform-api/internal/infrastructure/repository/mongodb"
	"github.com/wuddevdet/platform-api/internal/infrastructure/store"
	"github.com/wuddevdet/platform-api/internal/infrastructure/uuidgen"
	"github.com/wuddevdet/platform-api/internal/infrastructure/validator"
	"github.com/wuddevdet/platform-api/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Register custom validators
	validator.RegisterCustomValidators()

	router := gin.Default()

	appConfig := config.NewConfig()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userCollection := db.Collection("users")
	userRepo := mongodb.NewMongoUserRepository(userCollection)
	postRepo := mongodb.NewPostRepository(db, userCollection)
	projectRepo := mongodb.NewProjectRepository(db)
	contactRepo := mongodb.NewContactRepository(db)
	visitRepo := mongodb.NewVisitRepository(db)

	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetJWTExpiry())
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	authUsecase := usecase.NewAuthUsecase(userRepo, hasher, jwtManager, appLogger, appValidator, uuidGenerator)
	postUsecase := usecase.NewPostUsecase(postRepo, uuidGenerator, appLogger)
	projectUsecase := usecase.NewProjectUsecase(projectRepo, uuidGenerator, appLogger)
	contactUsecase := usecase.NewContactUsecase(contactRepo, uuidGenerator, appValidator, appLogger)
	adminUsecase := usecase.NewAdminUsecase(userRepo, appLogger)
	contentUsecase := usecase.NewContentUsecase(postRepo, projectRepo, appLogger)
	analyticsUsecase := usecase.NewAnalyticsUsecase(visitRepo, userRepo, postRepo, projectRepo, contactRepo, appLogger)

	// Optional Dependency Injection: Redis feed cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if rdb != nil {
			defer redisclient.Close(rdb)
			postUsecase.SetFeedCache(store.NewFeedCacheStore(rdb))
		}
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		authUsecase, postUsecase, projectUsecase, contactUsecase,
		adminUsecase, contentUsecase, analyticsUsecase,
		jwtManager, userRepo, postRepo, appConfig,
	)
	appRouter.SetupRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
