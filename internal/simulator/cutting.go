package simulator

import (
	"fmt"
	"math"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
)

const (
	cycleStartProbability = 0.05

	spindleDecayRate  = 500.0  // об/мин в секунду
	feedDecayRate     = 500.0  // ед./мин в секунду
	loadDecayRate     = 5.0    // % в секунду
	spindleRampRate   = 1750.0 // об/мин в секунду
	cutFeedRampRate   = 200.0
	cutDescentRate    = 1.0
	retractRate       = 4.0
	idleDrift         = 0.01
	rapidDwellSeconds = 3.0
	dwellSeconds      = 2.0
	cutFraction       = 0.6
	retractClearance  = 10.0
	cutFloorOffset    = 5.0
	retractLoadFloor  = 5.0
	finishLoadFactor  = 0.7

	minTargetSpindle = 4000
	maxTargetSpindle = 9000
	minTargetFeed    = 300
	maxTargetFeed    = 1800
	minCycleSeconds  = 20
	maxCycleSeconds  = 45

	toolWearPerTick    = 0.02
	spindleHoursMinRPM = 300.0
)

// cuttingEngine - цикл фрезерного станка и токарного станка:
// IDLE -> SPINDLE_RAMP -> RAPID -> CUTTING -> RETRACT -> DWELL -> FINISH -> IDLE.
type cuttingEngine struct{}

func (cuttingEngine) bounds() bounds {
	return bounds{spindle: maxTargetSpindle, feed: maxTargetFeed}
}

func (cuttingEngine) amps() (float64, float64) { return 7.0, 0.12 }

func (e cuttingEngine) step(s *state, t tick) {
	s.timeInPhase += t.dt
	if s.spindleSpeed > spindleHoursMinRPM {
		s.spindleHours += t.dt / 3600.0
	}

	switch s.phase {
	case models.PhaseSpindleRamp:
		e.spindleRamp(s, t)
	case models.PhaseRapid:
		e.rapid(s, t)
	case models.PhaseCutting:
		e.cutting(s, t)
	case models.PhaseRetract:
		e.retract(s, t)
	case models.PhaseDwell:
		e.dwell(s, t)
	case models.PhaseFinish:
		e.finish(s)
	default:
		e.idle(s, t)
	}
}

func (e cuttingEngine) idle(s *state, t tick) {
	s.phase = models.PhaseIdle
	s.execution = models.ExecutionIdle
	s.spindleSpeed = math.Max(0, s.spindleSpeed-spindleDecayRate*t.dt)
	s.feedRate = math.Max(0, s.feedRate-feedDecayRate*t.dt)
	s.spindleLoad = math.Max(0, s.spindleLoad-loadDecayRate*t.dt)

	s.pos.X = t.limits.X.Clamp(s.pos.X + uniform(t.rnd.Noise, -idleDrift, idleDrift))
	s.pos.Y = t.limits.Y.Clamp(s.pos.Y + uniform(t.rnd.Noise, -idleDrift, idleDrift))
	s.pos.Z = t.limits.Z.Clamp(s.pos.Z + uniform(t.rnd.Noise, -idleDrift, idleDrift))

	if s.coolant != nil {
		s.coolant.recover()
	}

	if chance(t.rnd.Cycle, cycleStartProbability) {
		e.startCycle(s, t)
	}
}

// startCycle - "в станок загружена программа": новые цели, новый инструмент.
func (cuttingEngine) startCycle(s *state, t tick) {
	s.targetSpindle = float64(randInt(t.rnd.Noise, minTargetSpindle, maxTargetSpindle))
	s.targetFeed = float64(randInt(t.rnd.Noise, minTargetFeed, maxTargetFeed))
	s.cycleTarget = float64(randInt(t.rnd.Noise, minCycleSeconds, maxCycleSeconds))
	s.program = fmt.Sprintf("O%04d", randInt(t.rnd.Noise, 1000, 9999))
	if s.magazine != nil {
		s.magazine.load(randInt(t.rnd.Noise, 1, s.magazine.size()))
	}
	s.execution = models.ExecutionRunning
	s.enter(models.PhaseSpindleRamp)
}

func (cuttingEngine) spindleRamp(s *state, t tick) {
	s.execution = models.ExecutionRunning
	if s.spindleSpeed < s.targetSpindle {
		s.spindleSpeed = math.Min(s.targetSpindle, s.spindleSpeed+spindleRampRate*t.dt)
	}
	if s.targetSpindle > 0 {
		s.spindleLoad = clamp(20*s.spindleSpeed/s.targetSpindle, 0, 20)
	}
	if s.spindleSpeed >= s.targetSpindle {
		s.spindleSpeed = s.targetSpindle
		s.enter(models.PhaseRapid)
	}
}

// rapid - G0: XY в случайную точку рабочей зоны, Z на безопасную высоту.
func (cuttingEngine) rapid(s *state, t tick) {
	s.execution = models.ExecutionRunning
	s.pos.X = uniform(t.rnd.Noise, t.limits.X.Min, t.limits.X.Max)
	s.pos.Y = uniform(t.rnd.Noise, t.limits.Y.Min, t.limits.Y.Max)
	s.pos.Z = t.limits.Z.Max
	s.feedRate = 0

	if s.timeInPhase >= rapidDwellSeconds {
		s.enter(models.PhaseCutting)
	}
}

func (cuttingEngine) cutting(s *state, t tick) {
	s.execution = models.ExecutionRunning

	if s.feedRate < s.targetFeed {
		s.feedRate = math.Min(s.targetFeed, s.feedRate+cutFeedRampRate*t.dt)
	}

	ratio := s.feedRate / math.Max(s.targetFeed, 1)
	z := s.pos.Z - cutDescentRate*t.dt*ratio
	s.pos.Z = t.limits.Z.Clamp(math.Max(z, t.limits.Z.Min+cutFloorOffset))

	base := s.feedRate / maxTargetFeed * 35
	noise := uniform(t.rnd.Noise, -2.0, 2.5)
	s.spindleLoad = clamp(base+s.toolWear*50+s.vibration*8+noise, 0, 100)

	s.toolWear = math.Min(1, s.toolWear+s.spindleLoad/250000)
	s.vibration = s.toolWear*3 + uniform(t.rnd.Noise, 0, 0.4)

	if s.magazine != nil && s.spindleSpeed > 0 {
		s.magazine.wear(t.rnd.Noise.Float64() * toolWearPerTick)
	}
	if s.coolant != nil {
		s.coolant.drain(t.rnd.Noise)
		s.coolant.resample(t.rnd.Noise)
	}

	if s.timeInPhase >= s.cycleTarget*cutFraction {
		s.enter(models.PhaseRetract)
	}
}

func (cuttingEngine) retract(s *state, t tick) {
	s.execution = models.ExecutionRunning
	target := math.Max(t.limits.Z.Max-retractClearance, t.limits.Z.Min)

	s.pos.Z += retractRate * t.dt
	if s.spindleLoad > retractLoadFloor {
		s.spindleLoad = math.Max(retractLoadFloor, s.spindleLoad-loadDecayRate*t.dt)
	}
	if s.pos.Z >= target {
		s.pos.Z = target
		s.enter(models.PhaseDwell)
	}
}

func (cuttingEngine) dwell(s *state, t tick) {
	s.execution = models.ExecutionRunning
	s.feedRate = 0
	s.spindleLoad = math.Max(0, s.spindleLoad-loadDecayRate*t.dt)

	if s.timeInPhase >= dwellSeconds {
		s.enter(models.PhaseFinish)
	}
}

func (cuttingEngine) finish(s *state) {
	s.partCount++
	s.totalCycles++
	s.spindleLoad *= finishLoadFactor
	s.feedRate = 0
	s.magazine.release()
	s.execution = models.ExecutionIdle
	s.enter(models.PhaseIdle)
}

func (cuttingEngine) rules() []alarmRule {
	return []alarmRule{
		{code: AlarmSpindleOverload, p: 0.05, when: func(s *state) bool { return s.spindleLoad > 95 }},
		{code: AlarmAxisFollowingError, p: 0.01},
		{code: AlarmLowCoolant, p: 0.1, when: func(s *state) bool { return s.coolant != nil && s.coolant.level < 10 }},
		{code: AlarmHighTemperature, p: 0.1, when: func(s *state) bool { return s.temperature > 110 }},
		{code: AlarmToolLifeExpired, p: 0.15, when: func(s *state) bool {
			t := s.magazine.activeTool()
			return t != nil && t.currentLife < 5
		}},
		{code: AlarmHighVibration, p: 0.08, when: func(s *state) bool { return s.vibration > 5.0 }},
	}
}
