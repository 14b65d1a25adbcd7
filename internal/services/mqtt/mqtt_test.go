package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/internal/middleware/logging"
)

type doneToken struct {
	err error
}

func (t doneToken) Wait() bool                     { return true }
func (t doneToken) WaitTimeout(time.Duration) bool { return true }
func (t doneToken) Error() error                   { return t.err }

func (t doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type published struct {
	topic   string
	payload []byte
}

// fakeClient реализует только то, что вызывает издатель.
type fakeClient struct {
	paho.Client
	err          error
	messages     []published
	disconnected bool
}

func (c *fakeClient) Publish(topic string, _ byte, _ bool, payload interface{}) paho.Token {
	c.messages = append(c.messages, published{topic: topic, payload: payload.([]byte)})
	return doneToken{err: c.err}
}

func (c *fakeClient) Disconnect(uint) {
	c.disconnected = true
}

func quiet() *logging.Logger {
	return logging.NewLogger(&logging.Config{Enabled: false}, "")
}

func TestMqttPublisher_TopicPerMachine(t *testing.T) {
	client := &fakeClient{}
	p := newPublisher(client, "plant1", quiet())

	err := p.Publish(context.Background(), []models.MachineSnapshot{
		{ID: "haas_vf2", Execution: models.ExecutionRunning},
		{ID: "fiber_laser", Execution: models.ExecutionIdle},
	})
	require.NoError(t, err)
	require.Len(t, client.messages, 2)

	assert.Equal(t, "plant1/haas_vf2/telemetry", client.messages[0].topic)
	assert.Equal(t, "plant1/fiber_laser/telemetry", client.messages[1].topic)

	var snap models.MachineSnapshot
	require.NoError(t, json.Unmarshal(client.messages[0].payload, &snap))
	assert.Equal(t, models.ExecutionRunning, snap.Execution)
}

func TestMqttPublisher_StopsOnError(t *testing.T) {
	client := &fakeClient{err: errors.New("not connected")}
	p := newPublisher(client, "cnc", quiet())

	err := p.Publish(context.Background(), []models.MachineSnapshot{{ID: "a"}, {ID: "b"}})
	assert.ErrorContains(t, err, "not connected")
	assert.Len(t, client.messages, 1)

	require.NoError(t, p.Close())
	assert.True(t, client.disconnected)
}
