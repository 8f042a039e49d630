package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestObserveGeneration(t *testing.T) {
	m := NewMetrics()

	m.ObserveGeneration("succeeded", "", 2*time.Second)
	m.ObserveGeneration("failed", "transport", time.Second)
	m.ObserveGeneration("failed", "transport", time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues("succeeded", "")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.generations.WithLabelValues("failed", "transport")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.generationDuration))
}

func TestObserveRequestAndHandler(t *testing.T) {
	m := NewMetrics()
	m.ObserveRequest(http.MethodPost, "/api/v1/agents/generate", http.StatusOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `agentgen_http_requests_total{method="POST",route="/api/v1/agents/generate",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveGeneration("failed", "transport", time.Second)
		m.ObserveRequest(http.MethodGet, "/health", http.StatusOK, time.Millisecond)
	})
}

func TestInitTracerWithoutEndpoint(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), "agentgen-test", "")
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, shutdown(context.Background()))
}

func TestExporterOptions(t *testing.T) {
	assert.Len(t, exporterOptions("localhost:4317"), 2)
	assert.Len(t, exporterOptions("http://collector:4317"), 2)
	assert.Len(t, exporterOptions("https://collector:4317"), 1)
}
