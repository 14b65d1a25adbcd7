package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaProducer_PublishKeysByMachine(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "cnc_telemetry")
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	err := p.Publish(context.Background(), []models.MachineSnapshot{
		{ID: "haas_vf2", Kind: models.KindMill, Timestamp: ts},
		{ID: "durma_press", Kind: models.KindPressBrake, Timestamp: ts},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 2)

	assert.Equal(t, "haas_vf2", string(w.msgs[0].Key))
	assert.Equal(t, ts, w.msgs[0].Time)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(w.msgs[1].Value, &decoded))
	assert.Equal(t, "PRESS_BRAKE", decoded["type"])
	assert.Equal(t, "kafka:cnc_telemetry", p.Name())
}

func TestKafkaProducer_PublishEmptyAndErrors(t *testing.T) {
	w := &fakeWriter{err: errors.New("leader not available")}
	p := newProducer(w, "t")

	require.NoError(t, p.Publish(context.Background(), nil))
	assert.Empty(t, w.msgs)

	err := p.Publish(context.Background(), []models.MachineSnapshot{{ID: "a"}})
	assert.ErrorContains(t, err, "leader not available")

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}
