package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/taskhive/taskhive-api/internal/api"
	"github.com/taskhive/taskhive-api/internal/auth"
	"github.com/taskhive/taskhive-api/internal/config"
	"github.com/taskhive/taskhive-api/internal/middleware"
	"github.com/taskhive/taskhive-api/internal/repository/postgres"
	"github.com/taskhive/taskhive-api/internal/service"
	"github.com/taskhive/taskhive-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	db, err := config.NewDatabase()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer config.CloseDatabase(db)

	appLogger.Info("Database connection established")

	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	repo := postgres.NewRepository(db)
	tokens := auth.NewTokenService(cfg.JWTSecretKey, cfg.JWTExpiration)
	audit := service.NewAuditRecorder(repo, appLogger)

	authService := service.NewAuthService(repo, tokens, audit, appLogger)
	tenantService := service.NewTenantService(repo, audit, appLogger)
	userService := service.NewUserService(repo, audit, appLogger)
	projectService := service.NewProjectService(repo, audit, appLogger)
	taskService := service.NewTaskService(repo, audit, appLogger)
	dashboardService := service.NewDashboardService(repo, appLogger)
	auditLogService := service.NewAuditLogService(repo)

	authMiddleware := middleware.NewAuthMiddleware(tokens)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, tenantService, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	server := api.NewServer(
		authService,
		tenantService,
		userService,
		projectService,
		taskService,
		dashboardService,
		auditLogService,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		cfg,
	)

	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
