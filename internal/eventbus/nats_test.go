package eventbus

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/agentgenesis/api/internal/models"
	"github.com/google/uuid"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnectDisabled(t *testing.T) {
	bus, err := Connect("", zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, bus)

	// A disabled bus is safe to use.
	assert.Equal(t, "not configured", bus.Status())
	assert.NoError(t, bus.Publish("agentgen.test", []byte("x")))
	bus.PublishGeneration(models.GenerationEvent{Outcome: models.GenerationOutcomeSucceeded})
	bus.Close()
}

func TestConnectUnreachable(t *testing.T) {
	_, err := Connect("nats://127.0.0.1:1", zap.NewNop())
	assert.Error(t, err)
}

func TestPublishGeneration(t *testing.T) {
	srv := natsserver.RunRandClientPortServer()
	defer srv.Shutdown()

	bus, err := Connect(srv.ClientURL(), zap.NewNop())
	require.NoError(t, err)
	defer bus.Close()
	assert.Equal(t, "healthy", bus.Status())

	sub, err := nats.Connect(srv.ClientURL())
	require.NoError(t, err)
	defer sub.Close()

	msgs := make(chan *nats.Msg, 4)
	_, err = sub.ChanSubscribe("agentgen.generation.*", msgs)
	require.NoError(t, err)
	require.NoError(t, sub.Flush())

	event := models.GenerationEvent{
		ID:        uuid.New(),
		Outcome:   models.GenerationOutcomeFailed,
		ErrorKind: "transport",
		Model:     "gemini-2.5-flash",
		LatencyMs: 42,
		TaskChars: 12,
		Timestamp: time.Now().UTC(),
	}
	bus.PublishGeneration(event)

	select {
	case msg := <-msgs:
		assert.Equal(t, "agentgen.generation.failed", msg.Subject)

		var got models.GenerationEvent
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		assert.Equal(t, event.ID, got.ID)
		assert.Equal(t, "transport", got.ErrorKind)
		assert.Equal(t, int64(42), got.LatencyMs)
	case <-time.After(2 * time.Second):
		t.Fatal("generation event was not delivered")
	}
}
