package simulator

import (
	"fmt"
	"math"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/pkg/errors"
)

// state - изменяемое состояние станка. Тик работает над копией (clone),
// поэтому читатели никогда не видят частично обновленные значения.
type state struct {
	power       bool
	execution   models.Execution
	phase       models.Phase
	timeInPhase float64
	cycleTarget float64

	spindleSpeed  float64
	targetSpindle float64
	spindleLoad   float64
	feedRate      float64
	targetFeed    float64
	pos           models.AxisPositions

	onHours      float64
	spindleHours float64
	totalCycles  int64
	partCount    int64
	temperature  float64
	alarm        string

	toolWear    float64
	vibration   float64
	currentAmps float64
	program     string

	magazine *magazine
	coolant  *coolant
}

func (s state) clone() state {
	s.magazine = s.magazine.clone()
	s.coolant = s.coolant.clone()
	return s
}

func (s *state) enter(p models.Phase) {
	s.phase = p
	s.timeInPhase = 0
}

func (s *state) zeroMotion() {
	s.spindleSpeed = 0
	s.feedRate = 0
	s.spindleLoad = 0
}

// latch защелкивает аварию: исполнение ALARM, фаза IDLE, движение остановлено.
func (s *state) latch(code string) {
	s.alarm = code
	s.execution = models.ExecutionAlarm
	s.enter(models.PhaseIdle)
	s.zeroMotion()
	s.magazine.release()
}

// powerDown полностью переопределяет состояние: авария не переживает выключение.
func (s *state) powerDown() {
	s.execution = models.ExecutionStopped
	s.enter(models.PhaseIdle)
	s.zeroMotion()
	s.targetSpindle = 0
	s.targetFeed = 0
	s.alarm = ""
	s.program = ""
	s.currentAmps = 0
	s.magazine.release()
}

// bounds - верхние пределы выходов, зависящие от типа станка.
type bounds struct {
	spindle float64
	feed    float64
}

type boundCheck struct {
	name   string
	v      float64
	lo, hi float64
}

// validate проверяет инварианты после тика. NaN не проходит ни одно сравнение
// и поэтому тоже отклоняется.
func (s *state) validate(l models.AxisLimits, b bounds) error {
	checks := []boundCheck{
		{"spindleSpeed", s.spindleSpeed, 0, b.spindle},
		{"feedRate", s.feedRate, 0, b.feed},
		{"spindleLoad", s.spindleLoad, 0, 100},
		{"temperature", s.temperature, ambientTempF, maxTempF},
		{"axis.X", s.pos.X, l.X.Min, l.X.Max},
		{"axis.Y", s.pos.Y, l.Y.Min, l.Y.Max},
		{"axis.Z", s.pos.Z, l.Z.Min, l.Z.Max},
		{"toolWear", s.toolWear, 0, 1},
		{"vibration", s.vibration, 0, math.MaxFloat64},
		{"timeInPhase", s.timeInPhase, 0, math.MaxFloat64},
		{"machineOnHours", s.onHours, 0, math.MaxFloat64},
		{"spindleHours", s.spindleHours, 0, math.MaxFloat64},
		{"currentAmps", s.currentAmps, 0, math.MaxFloat64},
	}
	if s.coolant != nil {
		checks = append(checks, boundCheck{"coolant.level", s.coolant.level, 0, 100})
	}
	if s.magazine != nil {
		for _, t := range s.magazine.tools {
			if !(t.currentLife >= 0 && t.currentLife <= t.maxLife) {
				return fmt.Errorf("%w: T%d life=%v", errors.ErrInvariant, t.number, t.currentLife)
			}
		}
	}

	for _, c := range checks {
		if !(c.v >= c.lo && c.v <= c.hi) {
			return fmt.Errorf("%w: %s=%v outside [%v, %v]", errors.ErrInvariant, c.name, c.v, c.lo, c.hi)
		}
	}
	return nil
}
