package simulator

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/pkg/errors"
)

// Machine - общий интерфейс станка парка. Поведение конкретного типа
// определяется фазовой машиной, выбранной при создании.
type Machine interface {
	ID() string
	Name() string
	Kind() models.Kind

	// Advance продвигает модель на dt секунд. Вызывается только тикером.
	Advance(dt float64) error
	SetPower(on bool)
	TogglePower()
	InjectAlarm(code string)
	ClearAlarm()
	ReplaceTool(number int) error

	// Snapshot возвращает копию состояния, не связанную с внутренними структурами.
	Snapshot() models.MachineSnapshot
}

type machine struct {
	id     string
	name   string
	kind   models.Kind
	limits models.AxisLimits
	engine cycleEngine
	rnd    Randomness
	clock  func() time.Time

	ampsScale float64

	mu    sync.RWMutex
	st    state
	stamp time.Time
}

// Убедимся, что machine удовлетворяет интерфейсу Machine.
var _ Machine = (*machine)(nil)

func (m *machine) ID() string        { return m.id }
func (m *machine) Name() string      { return m.name }
func (m *machine) Kind() models.Kind { return m.kind }

// Advance выполняет один тик над копией состояния. Если копия нарушает
// инварианты, тик отклоняется и предыдущее состояние остается в силе.
func (m *machine) Advance(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return fmt.Errorf("%w: dt=%v", errors.ErrInvalidTick, dt)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.st.clone()
	m.step(&next, dt)
	if err := next.validate(m.limits, m.engine.bounds()); err != nil {
		return fmt.Errorf("machine %s: %w", m.id, err)
	}

	m.st = next
	m.stamp = m.clock()
	return nil
}

func (m *machine) step(s *state, dt float64) {
	if !s.power {
		s.powerDown()
		return
	}

	s.onHours += dt / 3600.0
	t := tick{dt: dt, rnd: m.rnd, limits: m.limits}

	if s.alarm != "" {
		holdAlarm(s, t.rnd.Faults)
		s.temperature = nextTemperature(s.temperature, false, 0, t.rnd.Noise)
		s.currentAmps = m.idleAmps()
		return
	}

	m.engine.step(s, t)
	s.temperature = nextTemperature(s.temperature, s.execution == models.ExecutionRunning, s.spindleLoad, t.rnd.Noise)
	evaluateAlarms(m.engine.rules(), s, t.rnd.Faults)

	base, perLoad := m.engine.amps()
	s.currentAmps = base + s.spindleLoad*perLoad*m.ampsScale
}

func (m *machine) idleAmps() float64 {
	base, _ := m.engine.amps()
	return base
}

// SetPower включает или выключает питание. После включения станок
// начинает со свободной фазы IDLE на следующем тике.
func (m *machine) SetPower(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.power = on
	m.stamp = m.clock()
}

func (m *machine) TogglePower() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.power = !m.st.power
	m.stamp = m.clock()
}

// InjectAlarm принудительно защелкивает аварию независимо от текущего состояния.
func (m *machine) InjectAlarm(code string) {
	if code == "" {
		code = AlarmTest
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.latch(code)
	m.stamp = m.clock()
}

func (m *machine) ClearAlarm() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.alarm = ""
	m.st.execution = models.ExecutionIdle
	m.st.enter(models.PhaseIdle)
	m.stamp = m.clock()
}

// ReplaceTool восстанавливает ресурс инструмента. Инструмент в работе менять нельзя.
func (m *machine) ReplaceTool(number int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.st.magazine.replace(number); err != nil {
		return fmt.Errorf("machine %s: %w", m.id, err)
	}
	if number == m.st.magazine.active {
		m.st.toolWear = 0
	}
	m.stamp = m.clock()
	return nil
}

func (m *machine) Snapshot() models.MachineSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := m.st
	snap := models.MachineSnapshot{
		ID:                 m.id,
		Name:               m.name,
		Kind:               m.kind,
		Power:              s.power,
		Execution:          s.execution,
		CyclePhase:         s.phase,
		TimeInPhase:        s.timeInPhase,
		SpindleSpeed:       s.spindleSpeed,
		TargetSpindleSpeed: s.targetSpindle,
		SpindleLoad:        s.spindleLoad,
		FeedRate:           s.feedRate,
		TargetFeedRate:     s.targetFeed,
		AxisPositions:      s.pos,
		AxisLimits:         m.limits,
		MachineOnHours:     s.onHours,
		SpindleHours:       s.spindleHours,
		TotalCycles:        s.totalCycles,
		PartCount:          s.partCount,
		Temperature:        s.temperature,
		ToolWear:           s.toolWear,
		Vibration:          s.vibration,
		CurrentAmps:        s.currentAmps,
		Tools:              s.magazine.snapshot(),
		Coolant:            s.coolant.snapshot(),
		ProgramRunning:     s.program,
		Timestamp:          m.stamp,
	}
	if s.alarm != "" {
		alarm := s.alarm
		snap.Alarm = &alarm
	}
	if s.magazine != nil {
		snap.CurrentTool = s.magazine.active
	}
	return snap
}
