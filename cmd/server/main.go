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

	"github.com/agentgenesis/api/internal/agentgen"
	"github.com/agentgenesis/api/internal/config"
	"github.com/agentgenesis/api/internal/eventbus"
	"github.com/agentgenesis/api/internal/models"
	"github.com/agentgenesis/api/internal/telemetry"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Agent Genesis API
// @version 0.1.0
// @description Generates starter JavaScript code for AI agents from natural-language task descriptions.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	ctx := context.Background()

	// Initialize logger with stdout sync
	zapConfig := zap.NewProductionConfig()
	zapConfig.OutputPaths = []string{"stdout"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	logger, err := zapConfig.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	logger.Info("agentgen API starting...",
		zap.String("version", models.Version),
		zap.String("environment", cfg.Environment),
		zap.String("model", cfg.GeminiModel),
	)

	shutdownTelemetry, err := telemetry.InitTracer(ctx, "agentgen-api", cfg.OTLPEndpoint)
	if err != nil {
		// Log but don't fail, as collector might be down
		logger.Error("failed to initialize telemetry", zap.Error(err))
	} else {
		defer func() {
			if err := shutdownTelemetry(ctx); err != nil {
				logger.Error("failed to shutdown telemetry", zap.Error(err))
			}
		}()
	}

	bus, err := eventbus.Connect(cfg.NATSURL, logger)
	if err != nil {
		logger.Error("failed to connect to NATS", zap.Error(err))
	} else if bus != nil {
		defer bus.Close()
		logger.Info("connected to NATS")
	}

	backend, err := agentgen.NewGeminiBackend(ctx, agentgen.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal("failed to initialize generation backend", zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := newRouter(routerDeps{
		generator:      agentgen.NewGenerator(backend, logger),
		pinger:         backend,
		bus:            bus,
		metrics:        telemetry.NewMetrics(),
		logger:         logger,
		allowedOrigins: cfg.CORSAllowedOrigins,
		timeout:        cfg.GenerationTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.GenerationTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("server exited gracefully")
}
