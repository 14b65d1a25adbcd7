package fleet_service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwtcode/cncSimulator/internal/domain/entities"
	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/internal/interfaces"
	"github.com/iwtcode/cncSimulator/internal/middleware/logging"
	"github.com/iwtcode/cncSimulator/internal/simulator"
	apperrors "github.com/iwtcode/cncSimulator/pkg/errors"
)

func quietLogger() *logging.Logger {
	return logging.NewLogger(&logging.Config{Enabled: false}, "")
}

func newMachine(t *testing.T, id string, kind models.Kind) simulator.Machine {
	t.Helper()
	m, err := simulator.NewMachine(simulator.Config{
		ID:   id,
		Name: id,
		Kind: kind,
		Rand: simulator.Randomness{
			Cycle:  simulator.FixedSource(0),
			Faults: simulator.FixedSource(0.999),
			Noise:  simulator.FixedSource(0.5),
		},
	})
	require.NoError(t, err)
	return m
}

// brokenMachine всегда отклоняет тик.
type brokenMachine struct {
	simulator.Machine
}

func (brokenMachine) Advance(float64) error { return apperrors.ErrInvariant }

func TestNewRegistryFromDefinitions_DefaultFleet(t *testing.T) {
	r, err := NewRegistryFromDefinitions(entities.DefaultFleet(), 42)
	require.NoError(t, err)

	list := r.List()
	require.Len(t, list, 6)
	assert.Equal(t, "haas_vf2", list[0].ID)
	assert.Equal(t, "fiber_laser", list[5].ID)
	assert.Equal(t, 1270.0, list[1].AxisLimits.X.Max)
	assert.Equal(t, 3100.0, list[4].AxisLimits.X.Max, "нулевые лимиты заменяются лимитами типа")
}

func TestNewRegistryFromDefinitions_PartialLimits(t *testing.T) {
	r, err := NewRegistryFromDefinitions([]entities.MachineDefinition{
		{ID: "m", Kind: models.KindMill, XMax: 1000},
		{ID: "l", Kind: models.KindLathe, ZMin: 50, ZMax: 450},
	}, 1)
	require.NoError(t, err)

	mill, err := r.Get("m")
	require.NoError(t, err)
	assert.Equal(t, models.Range{Min: 0, Max: 1000}, mill.AxisLimits.X)
	assert.Equal(t, models.Range{Min: 0, Max: 406}, mill.AxisLimits.Y)
	assert.Equal(t, models.Range{Min: 0, Max: 508}, mill.AxisLimits.Z)

	lathe, err := r.Get("l")
	require.NoError(t, err)
	assert.Equal(t, models.Range{Min: 0, Max: 300}, lathe.AxisLimits.X)
	assert.Equal(t, models.Range{Min: 50, Max: 450}, lathe.AxisLimits.Z)
}

func TestNewRegistryFromDefinitions_Rejects(t *testing.T) {
	cases := map[string]struct {
		defs []entities.MachineDefinition
		want error
	}{
		"duplicate": {
			defs: []entities.MachineDefinition{
				{ID: "a", Kind: models.KindMill},
				{ID: "a", Kind: models.KindLathe},
			},
			want: apperrors.ErrDuplicateID,
		},
		"unknown kind": {
			defs: []entities.MachineDefinition{{ID: "a", Kind: "ROBOT"}},
			want: apperrors.ErrUnknownKind,
		},
		"inverted limits": {
			defs: []entities.MachineDefinition{{ID: "a", Kind: models.KindMill, XMin: 10, XMax: 5, YMax: 1, ZMax: 1}},
			want: apperrors.ErrInvalidLimits,
		},
		"empty id": {
			defs: []entities.MachineDefinition{{Kind: models.KindMill}},
			want: apperrors.ErrInvalidMachine,
		},
		"all disabled": {
			defs: []entities.MachineDefinition{{ID: "a", Kind: models.KindMill, Disabled: true}},
			want: apperrors.ErrEmptyFleet,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewRegistryFromDefinitions(tc.defs, 1)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRegistry_SkipsDisabled(t *testing.T) {
	r, err := NewRegistryFromDefinitions([]entities.MachineDefinition{
		{ID: "a", Kind: models.KindMill},
		{ID: "b", Kind: models.KindLaser, Disabled: true},
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	_, err = r.Get("b")
	assert.ErrorIs(t, err, apperrors.ErrMachineNotFound)
}

func TestRegistry_GetAndAlarms(t *testing.T) {
	r, err := NewRegistry(newMachine(t, "mill", models.KindMill), newMachine(t, "press", models.KindPressBrake))
	require.NoError(t, err)

	snap, err := r.Get("press")
	require.NoError(t, err)
	assert.Equal(t, models.KindPressBrake, snap.Kind)

	_, err = r.Get("nope")
	assert.ErrorIs(t, err, apperrors.ErrMachineNotFound)

	assert.Empty(t, r.Alarms())

	m, err := r.Machine("mill")
	require.NoError(t, err)
	m.InjectAlarm("E-STOP")

	alarms := r.Alarms()
	require.Len(t, alarms, 1)
	assert.Equal(t, "mill", alarms[0].ID)
	assert.Equal(t, "E-STOP", alarms[0].Alarm)
	assert.Equal(t, models.ExecutionAlarm, alarms[0].Execution)
}

func TestRegistry_AdvanceContinuesPastFailures(t *testing.T) {
	good := newMachine(t, "good", models.KindPressBrake)
	bad := brokenMachine{newMachine(t, "bad", models.KindMill)}
	r, err := NewRegistry(bad, good)
	require.NoError(t, err)

	err = r.Advance(1)
	assert.ErrorIs(t, err, apperrors.ErrInvariant)

	snap, _ := r.Get("good")
	assert.Equal(t, models.PhaseRunning, snap.CyclePhase, "исправный станок продвигается")
}

type recordingPublisher struct {
	mu    sync.Mutex
	name  string
	err   error
	calls [][]models.MachineSnapshot
}

func (p *recordingPublisher) Name() string { return p.name }
func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Publish(_ context.Context, snaps []models.MachineSnapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, snaps)
	return p.err
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

func TestTicker_TickOncePublishesToAll(t *testing.T) {
	r, err := NewRegistry(newMachine(t, "press", models.KindPressBrake))
	require.NoError(t, err)

	failing := &recordingPublisher{name: "failing", err: errors.New("broker down")}
	ok := &recordingPublisher{name: "ok"}
	ticker := NewTicker(r, []interfaces.SnapshotPublisher{failing, ok}, time.Second, quietLogger())

	snaps := ticker.TickOnce(context.Background())
	require.Len(t, snaps, 1)
	assert.Equal(t, models.PhaseRunning, snaps[0].CyclePhase)
	assert.Equal(t, 1, failing.count())
	assert.Equal(t, 1, ok.count())
	assert.InDelta(t, 1.0/3600.0, snaps[0].MachineOnHours, 1e-12)
}

func TestTicker_StartStop(t *testing.T) {
	r, err := NewRegistry(newMachine(t, "mill", models.KindMill))
	require.NoError(t, err)

	pub := &recordingPublisher{name: "rec"}
	ticker := NewTicker(r, []interfaces.SnapshotPublisher{pub}, 5*time.Millisecond, quietLogger())

	require.NoError(t, ticker.Start(context.Background()))
	assert.True(t, ticker.IsRunning())
	assert.ErrorIs(t, ticker.Start(context.Background()), apperrors.ErrTickerRunning)

	require.Eventually(t, func() bool { return pub.count() >= 3 }, time.Second, 5*time.Millisecond)

	ticker.Stop()
	assert.False(t, ticker.IsRunning())
	stopped := pub.count()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, pub.count(), "после Stop тиков нет")

	ticker.Stop()
}

func TestTicker_StopsWithContext(t *testing.T) {
	r, err := NewRegistry(newMachine(t, "mill", models.KindMill))
	require.NoError(t, err)
	ticker := NewTicker(r, nil, 5*time.Millisecond, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, ticker.Start(ctx))
	cancel()

	require.Eventually(t, func() bool { return !ticker.IsRunning() }, time.Second, 5*time.Millisecond)
	require.NoError(t, ticker.Start(context.Background()))
	ticker.Stop()
}
