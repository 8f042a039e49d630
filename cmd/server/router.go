package main

import (
	"time"

	"github.com/agentgenesis/api/internal/eventbus"
	"github.com/agentgenesis/api/internal/handlers"
	"github.com/agentgenesis/api/internal/middleware"
	"github.com/agentgenesis/api/internal/telemetry"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/agentgenesis/api/docs" // Swagger docs
)

// routerDeps carries everything the HTTP surface needs
type routerDeps struct {
	generator      handlers.AgentGenerator
	pinger         handlers.Pinger
	bus            *eventbus.Bus
	metrics        *telemetry.Metrics
	logger         *zap.Logger
	allowedOrigins []string
	timeout        time.Duration
}

func newRouter(d routerDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(d.logger))
	router.Use(middleware.CORS(d.allowedOrigins))
	router.Use(middleware.Metrics(d.metrics))

	// Swagger documentation
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check handlers
	healthHandler := handlers.NewHealthHandler(d.pinger, d.bus)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/deep", healthHandler.DeepHealth)

	router.GET("/metrics", gin.WrapH(d.metrics.Handler()))

	generationHandler := handlers.NewGenerationHandler(d.generator, d.timeout, d.bus, d.metrics, d.logger)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		agents := v1.Group("/agents")
		agents.POST("/generate", generationHandler.GenerateAgent)
	}

	router.NoRoute(func(c *gin.Context) {
		middleware.NotFound(c, "route not found")
	})

	return router
}
