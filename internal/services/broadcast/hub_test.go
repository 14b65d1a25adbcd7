package broadcast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/internal/middleware/logging"
)

func newHub() *Hub {
	return NewHub(logging.NewLogger(&logging.Config{Enabled: false}, ""))
}

func TestHub_FanOut(t *testing.T) {
	h := newHub()
	idA, a, cancelA := h.Subscribe()
	idB, b, cancelB := h.Subscribe()
	defer cancelA()
	defer cancelB()

	assert.NotEqual(t, idA, idB)
	assert.Equal(t, 2, h.Subscribers())

	frame := []models.MachineSnapshot{{ID: "haas_vf2"}}
	require.NoError(t, h.Publish(context.Background(), frame))

	assert.Equal(t, frame, <-a)
	assert.Equal(t, frame, <-b)
}

func TestHub_SlowSubscriberDropsFrames(t *testing.T) {
	h := newHub()
	_, updates, cancel := h.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer+3; i++ {
		require.NoError(t, h.Publish(context.Background(), []models.MachineSnapshot{{PartCount: int64(i)}}))
	}

	assert.Len(t, updates, subscriberBuffer)
	first := <-updates
	assert.Equal(t, int64(0), first[0].PartCount, "сохраняются самые ранние кадры")
}

func TestHub_CancelClosesChannel(t *testing.T) {
	h := newHub()
	_, updates, cancel := h.Subscribe()

	cancel()
	cancel()
	_, open := <-updates
	assert.False(t, open)
	assert.Equal(t, 0, h.Subscribers())

	require.NoError(t, h.Publish(context.Background(), nil))
}

func TestHub_Close(t *testing.T) {
	h := newHub()
	_, updates, cancel := h.Subscribe()

	require.NoError(t, h.Close())
	_, open := <-updates
	assert.False(t, open)

	cancel()
}
