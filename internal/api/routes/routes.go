package routes

import (
	"fmt"
	"net/http"

	"sheet-music-backend/internal/api/handlers"
	"sheet-music-backend/internal/api/middleware"
	"sheet-music-backend/internal/auth"
	"sheet-music-backend/internal/config"
	"sheet-music-backend/internal/repository"
	"sheet-music-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	var metrics *middleware.Metrics
	if cfg.MetricsEnabled {
		metrics = middleware.NewMetrics()
		router.Use(metrics.Middleware())
	}

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	repos := repository.NewRepositories(db)
	txManager := repository.NewTransactionManager(db)

	// Initialize services
	groupService := service.NewGroupService(repos.Groups, txManager, validator)
	sheetMusicService := service.NewSheetMusicService(repos.SheetMusic, repos.Groups, txManager, validator)

	// Initialize auth configuration and services
	authConfig := auth.NewAuthConfig(cfg)
	authService, err := auth.NewAuthService(authConfig, repos.Users, repos.Sessions)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService, authConfig)
	authMiddleware := auth.NewAuthMiddleware(authService, authConfig)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg.DatabaseDriver)
	groupHandler := handlers.NewGroupHandler(groupService)
	sheetMusicHandler := handlers.NewSheetMusicHandler(sheetMusicService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if metrics != nil {
		router.GET("/metrics", metrics.Handler())
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.GET("/login", authMiddleware.OptionalAuth(), authHandler.LoginPage)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
			authRoutes.PUT("/users/:email/active", authMiddleware.RequireAuth(), authMiddleware.RequireStaff(), authHandler.SetUserActive)
		}

		// Listing and reading are public; mutations need a session
		groups := v1.Group("/groups")
		{
			groups.GET("", groupHandler.ListGroups)
			groups.GET("/:key", groupHandler.GetGroup)
			groups.POST("", authMiddleware.RequireAuth(), groupHandler.CreateGroup)
			groups.PUT("/:key", authMiddleware.RequireAuth(), groupHandler.UpdateGroup)
			groups.DELETE("/:key", authMiddleware.RequireAuth(), groupHandler.DeleteGroup)
		}

		sheetMusic := v1.Group("/sheet-music")
		{
			sheetMusic.GET("", sheetMusicHandler.ListSheetMusic)
			sheetMusic.GET("/:key", sheetMusicHandler.GetSheetMusic)
			sheetMusic.POST("", authMiddleware.RequireAuth(), sheetMusicHandler.CreateSheetMusic)
			sheetMusic.PUT("/:key", authMiddleware.RequireAuth(), sheetMusicHandler.UpdateSheetMusic)
			sheetMusic.DELETE("/:key", authMiddleware.RequireAuth(), sheetMusicHandler.DeleteSheetMusic)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(middleware.ContextKeyRequestID),
		})
	})

	return router, nil
}
