package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/agentgenesis/api/internal/agentgen"
	"github.com/agentgenesis/api/internal/eventbus"
	"github.com/agentgenesis/api/internal/middleware"
	"github.com/agentgenesis/api/internal/models"
	"github.com/agentgenesis/api/internal/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/agentgenesis/api/internal/handlers")

// maxRequestBytes bounds the JSON body of a generation request
const maxRequestBytes = 64 << 10

// AgentGenerator produces agent code for a task description
type AgentGenerator interface {
	GenerateAgentCode(ctx context.Context, taskDescription string) (string, error)
	Model() string
}

// GenerationHandler handles agent code generation endpoints
type GenerationHandler struct {
	generator AgentGenerator
	timeout   time.Duration
	bus       *eventbus.Bus
	metrics   *telemetry.Metrics
	logger    *zap.Logger
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(generator AgentGenerator, timeout time.Duration, bus *eventbus.Bus, metrics *telemetry.Metrics, logger *zap.Logger) *GenerationHandler {
	return &GenerationHandler{
		generator: generator,
		timeout:   timeout,
		bus:       bus,
		metrics:   metrics,
		logger:    logger,
	}
}

// GenerateAgent generates starter JavaScript code for an AI agent
// @Summary Generate agent code
// @Description Sends the task description to the generation backend and returns the extracted JavaScript code.
// @Tags agents
// @Accept json
// @Produce json
// @Param request body models.GenerateAgentRequest true "Task description"
// @Success 200 {object} models.GenerateAgentResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /api/v1/agents/generate [post]
func (h *GenerationHandler) GenerateAgent(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "GenerateAgent")
	defer span.End()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)

	var req models.GenerateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	generationID := uuid.New()
	span.SetAttributes(
		attribute.String("generation_id", generationID.String()),
		attribute.Int("task_chars", len(req.TaskDescription)),
	)

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	code, err := h.generator.GenerateAgentCode(ctx, req.TaskDescription)
	latency := time.Since(start)

	event := models.GenerationEvent{
		ID:        generationID,
		Model:     h.generator.Model(),
		LatencyMs: latency.Milliseconds(),
		TaskChars: len(req.TaskDescription),
		Timestamp: time.Now().UTC(),
	}

	if err != nil {
		kind := agentgen.KindOf(err).String()
		event.Outcome = models.GenerationOutcomeFailed
		event.ErrorKind = kind
		h.metrics.ObserveGeneration(string(event.Outcome), kind, latency)
		h.bus.PublishGeneration(event)

		h.logger.Warn("agent generation failed",
			zap.String("generation_id", generationID.String()),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("error_kind", kind),
			zap.Error(err),
		)
		middleware.RespondGenerationError(c, err)
		return
	}

	event.Outcome = models.GenerationOutcomeSucceeded
	event.CodeChars = len(code)
	h.metrics.ObserveGeneration(string(event.Outcome), "", latency)
	h.bus.PublishGeneration(event)

	c.JSON(http.StatusOK, models.GenerateAgentResponse{
		GenerationID: generationID,
		Code:         code,
		Language:     models.Language,
		Model:        event.Model,
		LatencyMs:    event.LatencyMs,
	})
}
