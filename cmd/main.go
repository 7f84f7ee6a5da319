package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/config"
	"fintrack/internal/apis/middlewares"
	"fintrack/internal/apis/routes"
	"fintrack/internal/di"
	"fintrack/pkg/logger"
	"fintrack/pkg/mongodb"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Exit code when the document store cannot be reached at startup.
const exitStoreUnavailable = 2

func main() {
	// Load environment variables
	err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to load environment variables: %v", err)
	}

	zapLogger, err := logger.NewLogger(config.Env.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	// Initialize dependencies
	if err := di.Initialize(zapLogger); err != nil {
		zapLogger.Error("❌ Failed to initialize dependencies", zap.Error(err))
		_ = di.Shutdown(context.Background())
		_ = zapLogger.Sync()
		if errors.Is(err, mongodb.ErrConnectionFailed) {
			os.Exit(exitStoreUnavailable)
		}
		os.Exit(1)
	}

	// Setup Gin
	gin.SetMode(config.Env.GinMode)
	ginApp := gin.New()

	ginApp.Use(middlewares.CustomRecoveryMiddleware(zapLogger))
	ginApp.Use(middlewares.RequestIDMiddleware())
	ginApp.Use(ginzap.GinzapWithConfig(zapLogger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/metrics"},
		Context:    middlewares.RequestIDFields,
	}))

	metrics, err := di.GetMetrics()
	if err != nil {
		zapLogger.Fatal("Failed to get metrics middleware", zap.Error(err))
	}
	ginApp.Use(metrics.Middleware())

	ginApp.Use(cors.New(cors.Config{
		AllowOrigins: config.Env.CorsAllowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			middlewares.RequestIDHeader,
		},
		ExposeHeaders: []string{"Content-Length", "Content-Type", middlewares.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	// Setup routes
	if err := routes.SetupDefaultRoutes(ginApp); err != nil {
		zapLogger.Fatal("Failed to setup routes", zap.Error(err))
	}

	// Create server
	srv := &http.Server{
		Addr:    ":" + config.Env.Port,
		Handler: ginApp,
	}

	// Start server in a goroutine
	go func() {
		zapLogger.Info("🚀 Starting server", zap.String("port", config.Env.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.Env.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := di.Shutdown(ctx); err != nil {
		zapLogger.Error("Failed to close connections", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}
