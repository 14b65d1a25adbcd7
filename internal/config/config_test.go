package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfiguration_Defaults(t *testing.T) {
	cfg, err := LoadConfiguration()
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Simulation.TickInterval)
	assert.Equal(t, FleetSourceDefault, cfg.Fleet.Source)
	assert.Equal(t, "cnc_telemetry", cfg.Kafka.Topic)
	assert.False(t, cfg.Kafka.Enable)
	assert.False(t, cfg.Mqtt.Enable)
}

func TestLoadConfiguration_FromEnv(t *testing.T) {
	t.Setenv("TICK_INTERVAL_MS", "250")
	t.Setenv("SIM_SEED", "42")
	t.Setenv("FLEET_SOURCE", "file")
	t.Setenv("FLEET_FILE", "/etc/cnc/fleet.yaml")
	t.Setenv("MQTT_ENABLE", "true")
	t.Setenv("KAFKA_ENABLE", "not-a-bool")

	cfg, err := LoadConfiguration()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Simulation.TickInterval)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, FleetSourceFile, cfg.Fleet.Source)
	assert.Equal(t, "/etc/cnc/fleet.yaml", cfg.Fleet.File)
	assert.True(t, cfg.Mqtt.Enable)
	assert.False(t, cfg.Kafka.Enable)
}

func TestLoadConfiguration_Rejects(t *testing.T) {
	t.Setenv("TICK_INTERVAL_MS", "0")
	_, err := LoadConfiguration()
	assert.Error(t, err)

	t.Setenv("TICK_INTERVAL_MS", "1000")
	t.Setenv("FLEET_SOURCE", "redis")
	_, err = LoadConfiguration()
	assert.Error(t, err)
}
