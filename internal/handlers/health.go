package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/agentgenesis/api/internal/eventbus"
	"github.com/agentgenesis/api/internal/models"
	"github.com/gin-gonic/gin"
)

const serviceName = "agentgen-api"

// Pinger checks connectivity to the generation backend
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	backend Pinger
	bus     *eventbus.Bus
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(backend Pinger, bus *eventbus.Bus) *HealthHandler {
	return &HealthHandler{
		backend: backend,
		bus:     bus,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string            `json:"status"`
	Service      string            `json:"service"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// Health returns basic health status
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: models.Version,
	})
}

// DeepHealth returns health status with dependency checks
// @Summary Dependency health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health/deep [get]
func (h *HealthHandler) DeepHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	deps := make(map[string]string)
	allHealthy := true

	// Check generation backend
	if h.backend != nil {
		if err := h.backend.Ping(ctx); err != nil {
			deps["generation_backend"] = "unhealthy: " + err.Error()
			allHealthy = false
		} else {
			deps["generation_backend"] = "healthy"
		}
	} else {
		deps["generation_backend"] = "not configured"
		allHealthy = false
	}

	// Event bus is optional; only a configured but broken bus degrades health
	busStatus := h.bus.Status()
	deps["eventbus"] = busStatus
	if busStatus != "healthy" && busStatus != "not configured" {
		allHealthy = false
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !allHealthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthResponse{
		Status:       status,
		Service:      serviceName,
		Version:      models.Version,
		Dependencies: deps,
	})
}
