package eventbus

import (
	"encoding/json"
	"time"

	"github.com/agentgenesis/api/internal/models"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Bus publishes generation lifecycle events to NATS.
// A nil *Bus is valid and publishes nothing.
type Bus struct {
	conn   *nats.Conn
	logger *zap.Logger
}

// Connect dials NATS. An empty URL disables the bus.
func Connect(natsURL string, logger *zap.Logger) (*Bus, error) {
	if natsURL == "" {
		return nil, nil
	}

	nc, err := nats.Connect(natsURL,
		nats.Name("agentgen-api"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(3),
	)
	if err != nil {
		return nil, err
	}

	return &Bus{conn: nc, logger: logger}, nil
}

// Status reports the connection state for health checks
func (b *Bus) Status() string {
	if b == nil || b.conn == nil {
		return "not configured"
	}
	if b.conn.IsConnected() {
		return "healthy"
	}
	return "unhealthy: " + b.conn.Status().String()
}

// Publish sends raw data on a subject
func (b *Bus) Publish(subject string, data []byte) error {
	if b == nil || b.conn == nil {
		return nil
	}
	return b.conn.Publish(subject, data)
}

// PublishGeneration emits a generation event. Failures are logged, not
// returned: observers never affect the outcome of a generation.
func (b *Bus) PublishGeneration(event models.GenerationEvent) {
	if b == nil || b.conn == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("failed to encode generation event", zap.Error(err))
		return
	}
	if err := b.Publish(event.Subject(), payload); err != nil {
		b.logger.Warn("failed to publish generation event",
			zap.String("subject", event.Subject()),
			zap.Error(err),
		)
	}
}

// Close drains and closes the connection
func (b *Bus) Close() {
	if b == nil || b.conn == nil {
		return
	}
	if err := b.conn.Drain(); err != nil {
		b.conn.Close()
	}
}
