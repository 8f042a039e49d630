package agentgen

import (
	"context"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/agentgenesis/api/internal/agentgen")

// rawPreviewLen bounds how much of an unusable reply is logged.
const rawPreviewLen = 200

// Generator turns task descriptions into agent code.
// It holds no per-request state and is safe for concurrent use.
type Generator struct {
	backend Backend
	logger  *zap.Logger
}

// NewGenerator creates a generator over the given backend
func NewGenerator(backend Backend, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{backend: backend, logger: logger}
}

// Model returns the backend's model identifier.
func (g *Generator) Model() string {
	return g.backend.Model()
}

// GenerateAgentCode builds the request, invokes the backend once and
// extracts the code payload from the reply.
func (g *Generator) GenerateAgentCode(ctx context.Context, taskDescription string) (string, error) {
	ctx, span := tracer.Start(ctx, "GenerateAgentCode")
	defer span.End()

	code, err := g.generate(ctx, taskDescription)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, KindOf(err).String())
		return "", err
	}
	span.SetAttributes(attribute.Int("code_chars", len(code)))
	return code, nil
}

func (g *Generator) generate(ctx context.Context, taskDescription string) (string, error) {
	payload, err := BuildRequest(taskDescription)
	if err != nil {
		return "", err
	}

	start := time.Now()
	reply, err := g.backend.Invoke(ctx, payload)
	if err != nil {
		if KindOf(err) == KindUnknown {
			err = newError(KindTransport, "an error occurred while communicating with the AI", err)
		}
		g.logger.Error("generation backend call failed",
			zap.String("model", g.backend.Model()),
			zap.String("error_kind", KindOf(err).String()),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return "", err
	}

	code, err := ExtractCode(reply.Text)
	if err != nil {
		g.logger.Warn("backend returned an empty or unparseable code block",
			zap.String("model", g.backend.Model()),
			zap.String("raw_preview", preview(reply.Text)),
		)
		return "", err
	}

	g.logger.Info("agent code generated",
		zap.String("model", g.backend.Model()),
		zap.Int("task_chars", len(taskDescription)),
		zap.Int("code_chars", len(code)),
		zap.Duration("latency", time.Since(start)),
	)
	return code, nil
}

// preview keeps at most rawPreviewLen bytes without splitting a UTF-8 sequence.
func preview(s string) string {
	if len(s) <= rawPreviewLen {
		return s
	}
	cut := rawPreviewLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
