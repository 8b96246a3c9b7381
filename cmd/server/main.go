package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crestview/estates-api/internal/config"
	"github.com/crestview/estates-api/internal/database"
	"github.com/crestview/estates-api/internal/handlers"
	"github.com/crestview/estates-api/internal/logger"
	"github.com/crestview/estates-api/internal/middleware"
	"github.com/crestview/estates-api/internal/repository"
	"github.com/crestview/estates-api/internal/services"
	"github.com/crestview/estates-api/internal/upload"
	"github.com/crestview/estates-api/internal/validation"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting Estates API", map[string]interface{}{
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Create database connection pool
	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Register domain validation tags (slug, inmobile, videourl, resumelink)
	if err := validation.RegisterCustomTags(); err != nil {
		log.Fatal("Failed to register validation tags", err, nil)
	}

	// Prepare the public upload store
	store, err := upload.NewStore(cfg.Upload)
	if err != nil {
		log.Fatal("Failed to initialize upload store", err, map[string]interface{}{
			"dir": cfg.Upload.Dir,
		})
	}

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Serve uploaded images
	router.Static("/uploads", cfg.Upload.Dir)

	// Initialize repository and service layers
	propertyService := services.NewPropertyService(repository.NewPropertyRepository(db), log)
	blogService := services.NewBlogService(repository.NewBlogRepository(db), log)
	videoService := services.NewVideoService(repository.NewVideoRepository(db), log)
	builderService := services.NewBuilderService(repository.NewBuilderRepository(db), log)
	enquiryService := services.NewEnquiryService(repository.NewEnquiryRepository(db), log)
	careerService := services.NewCareerService(repository.NewCareerRepository(db), log)
	tacService := services.NewTACService(repository.NewTACRepository(db), log)
	subscriptionService := services.NewSubscriptionService(repository.NewSubscriptionRepository(db), log)
	statsService := services.NewStatsService(repository.NewStatsRepository(db), log)
	authService := services.NewAuthService(repository.NewAdminRepository(db), cfg.Auth, log)

	// Initialize handlers
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	blogHandler := handlers.NewBlogHandler(blogService)
	videoHandler := handlers.NewVideoHandler(videoService)
	builderHandler := handlers.NewBuilderHandler(builderService)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService)
	careerHandler := handlers.NewCareerHandler(careerService)
	tacHandler := handlers.NewTACHandler(tacService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	statsHandler := handlers.NewStatsHandler(statsService)
	authHandler := handlers.NewAuthHandler(authService)
	uploadHandler := handlers.NewUploadHandler(store)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/properties", propertyHandler.List)
		v1.GET("/properties/:slug", propertyHandler.GetBySlug)
		v1.GET("/blogs", blogHandler.List)
		v1.GET("/blogs/:slug", blogHandler.GetBySlug)
		v1.GET("/videos", videoHandler.List)
		v1.GET("/builders", builderHandler.List)

		v1.POST("/auth/login", authHandler.Login)
		v1.POST("/stats/track", statsHandler.Track)

		// Lead capture forms run through the HTML sanitizer
		leads := v1.Group("", middleware.Sanitize())
		{
			leads.POST("/enquiries", enquiryHandler.Create)
			leads.POST("/career", careerHandler.Create)
			leads.POST("/tac-registration", tacHandler.Create)
			leads.POST("/email-subscription", subscriptionHandler.Subscribe)
		}

		admin := v1.Group("/admin", middleware.AdminAuth(cfg.Auth.JWTSecret))
		{
			admin.GET("/properties", propertyHandler.List)
			admin.POST("/properties", propertyHandler.Create)
			admin.PUT("/properties/:id", propertyHandler.Update)
			admin.DELETE("/properties/:id", propertyHandler.Delete)

			admin.GET("/blogs", blogHandler.List)
			admin.POST("/blogs", blogHandler.Create)
			admin.PUT("/blogs/:id", blogHandler.Update)
			admin.DELETE("/blogs/:id", blogHandler.Delete)

			admin.GET("/videos", videoHandler.List)
			admin.POST("/videos", videoHandler.Create)
			admin.PUT("/videos/:id", videoHandler.Update)
			admin.DELETE("/videos/:id", videoHandler.Delete)

			admin.GET("/builders", builderHandler.List)
			admin.POST("/builders", builderHandler.Create)
			admin.PUT("/builders/:id", builderHandler.Update)
			admin.DELETE("/builders/:id", builderHandler.Delete)

			admin.GET("/enquiries", enquiryHandler.List)
			admin.DELETE("/enquiries/:id", enquiryHandler.Delete)

			admin.GET("/career", careerHandler.List)
			admin.DELETE("/career/:id", careerHandler.Delete)

			admin.GET("/tac-registrations", tacHandler.List)
			admin.DELETE("/tac-registrations/:id", tacHandler.Delete)

			admin.GET("/subscriptions", subscriptionHandler.List)
			admin.GET("/stats", statsHandler.List)
			admin.POST("/upload", uploadHandler.Upload)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
