package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/xgyuan/cookshare/backend/internal/gamification"
	"github.com/xgyuan/cookshare/backend/internal/handlers"
	"github.com/xgyuan/cookshare/backend/internal/middleware"
	"github.com/xgyuan/cookshare/backend/internal/models"
	"github.com/xgyuan/cookshare/backend/internal/repositories"
	"github.com/xgyuan/cookshare/backend/internal/seed"
	"github.com/xgyuan/cookshare/backend/pkg/storage"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, uploadDir string) {
	// AutoMigrate models
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Recipe{},
		&models.Comment{},
		&models.Favorite{},
		&models.CookRecord{},
		&models.Post{},
		&models.PostLike{},
		&models.PostComment{},
		&models.Follow{},
		&models.Message{},
		&models.Notification{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.Badge{},
		&models.UserBadge{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Seed the fixed catalogs (idempotent)
	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed catalogs: %v", err)
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "Welcome to Cookshare!"})
	})

	// Uploaded media mirrored into the served asset tree
	store, err := storage.NewLocalStore(uploadDir)
	if err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}
	e.Static("/uploads", uploadDir)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	recipeRepo := repositories.NewPostgresRecipeRepository(db)
	categoryRepo := repositories.NewPostgresCategoryRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	favoriteRepo := repositories.NewPostgresFavoriteRepository(db)
	cookRecordRepo := repositories.NewPostgresCookRecordRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	postLikeRepo := repositories.NewPostgresPostLikeRepository(db)
	postCommentRepo := repositories.NewPostgresPostCommentRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	messageRepo := repositories.NewPostgresMessageRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	gamificationRepo := repositories.NewPostgresGamificationRepository(db)

	gamificationSvc := gamification.NewService(db)

	// --- Unprotected routes ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// Anonymous browsing, but claims are parsed when a token is sent
	// so viewer-specific fields come back filled in
	public := e.Group("/api/v1", middleware.OptionalJWTAuth())

	recipeHandler := handlers.NewRecipeHandler(recipeRepo, categoryRepo, commentRepo, favoriteRepo, gamificationSvc)
	recipeHandler.RegisterPublicRoutes(public)

	userHandler := handlers.NewUserHandler(userRepo, recipeRepo, favoriteRepo, followRepo, gamificationRepo, commentRepo, cookRecordRepo, postRepo)
	userHandler.RegisterPublicRoutes(public)

	activityHandler := handlers.NewActivityHandler(userRepo, recipeRepo, cookRecordRepo, commentRepo, postRepo)
	activityHandler.RegisterActivityRoutes(public)
	log.Println("Public browse routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to protected routes.")

	userHandler.RegisterProfileRoutes(api)
	recipeHandler.RegisterRecipeRoutes(api)

	commentHandler := handlers.NewCommentHandler(commentRepo, recipeRepo, gamificationSvc)
	commentHandler.RegisterCommentRoutes(api)

	favoriteHandler := handlers.NewFavoriteHandler(favoriteRepo, recipeRepo)
	favoriteHandler.RegisterFavoriteRoutes(api)

	cookRecordHandler := handlers.NewCookRecordHandler(cookRecordRepo, recipeRepo, gamificationSvc)
	cookRecordHandler.RegisterCookRecordRoutes(api)

	followHandler := handlers.NewFollowHandler(followRepo, userRepo, notificationRepo)
	followHandler.RegisterFollowRoutes(api)

	postHandler := handlers.NewPostHandler(postRepo, postLikeRepo, postCommentRepo, userRepo, gamificationSvc)
	postHandler.RegisterPostRoutes(api)

	messageHandler := handlers.NewMessageHandler(messageRepo, userRepo, notificationRepo)
	messageHandler.RegisterMessageRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	uploadHandler := handlers.NewUploadHandler(store)
	uploadHandler.RegisterUploadRoutes(api)

	log.Println("All routes configured.")
}
