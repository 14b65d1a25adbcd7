package app

import (
	"bufio"
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwtcode/cncSimulator/internal/adapters/repositories/builtin"
	"github.com/iwtcode/cncSimulator/internal/config"
	"github.com/iwtcode/cncSimulator/internal/middleware/logging"
	"github.com/iwtcode/cncSimulator/internal/services/fleet_service"
	apperrors "github.com/iwtcode/cncSimulator/pkg/errors"
)

func seededRegistry(t *testing.T) *fleet_service.Registry {
	t.Helper()
	cfg := &config.AppConfig{Simulation: config.SimulationConfig{Seed: 7}}
	logger := logging.NewLogger(&logging.Config{Enabled: false}, "")
	registry, err := BuildRegistry(builtin.NewSource(), cfg, logger)
	require.NoError(t, err)
	return registry
}

func decodeFrames(t *testing.T, out *bytes.Buffer) []tickFrame {
	t.Helper()
	var frames []tickFrame
	sc := bufio.NewScanner(out)
	sc.Buffer(make([]byte, 0, 1<<20), 1<<22)
	for sc.Scan() {
		var f tickFrame
		require.NoError(t, json.Unmarshal(sc.Bytes(), &f))
		frames = append(frames, f)
	}
	require.NoError(t, sc.Err())
	return frames
}

func TestSimulate_WholeFleetLastFrame(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Simulate(&out, seededRegistry(t), SimulateOptions{Ticks: 30, Dt: 1}))

	frames := decodeFrames(t, &out)
	require.Len(t, frames, 1)
	assert.Equal(t, 30, frames[0].Tick)
	assert.Len(t, frames[0].Machines, 6)
	assert.InDelta(t, 30.0/3600.0, frames[0].Machines[0].MachineOnHours, 1e-9)
}

func TestSimulate_SingleMachineEvery(t *testing.T) {
	var out bytes.Buffer
	err := Simulate(&out, seededRegistry(t), SimulateOptions{Ticks: 10, Dt: 1, MachineID: "cnc_lathe", Every: 5})
	require.NoError(t, err)

	frames := decodeFrames(t, &out)
	require.Len(t, frames, 2)
	assert.Equal(t, 5, frames[0].Tick)
	assert.Equal(t, "cnc_lathe", frames[1].Machines[0].ID)
}

func TestSimulate_Rejects(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, Simulate(&out, seededRegistry(t), SimulateOptions{Ticks: 0, Dt: 1}))

	err := Simulate(&out, seededRegistry(t), SimulateOptions{Ticks: 1, Dt: 1, MachineID: "ghost"})
	assert.ErrorIs(t, err, apperrors.ErrMachineNotFound)

	err = Simulate(&out, seededRegistry(t), SimulateOptions{Ticks: 1, Dt: math.NaN()})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTick)
}
