package simulator

import (
	"math"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
)

// strokeProfile описывает упрощенный цикл IDLE <-> RUNNING.
type strokeProfile struct {
	startProbability float64
	cycleSeconds     float64
	maxFeed          float64
	ampsBase         float64
	ampsPerLoad      float64
	idleLoadDecay    float64 // % в секунду
	idleFeedDecay    float64 // ед. подачи в секунду
	start            func(s *state, t tick)
	run              func(s *state, t tick)
	rule             alarmRule
}

// strokeEngine - цикл листогиба и лазера: ход фиксированной длительности,
// по завершении которого засчитывается деталь.
type strokeEngine struct {
	profile strokeProfile
}

func (e strokeEngine) bounds() bounds {
	return bounds{spindle: 0, feed: e.profile.maxFeed}
}

func (e strokeEngine) amps() (float64, float64) {
	return e.profile.ampsBase, e.profile.ampsPerLoad
}

func (e strokeEngine) rules() []alarmRule {
	return []alarmRule{e.profile.rule}
}

func (e strokeEngine) step(s *state, t tick) {
	s.timeInPhase += t.dt
	s.spindleSpeed = 0

	if s.phase != models.PhaseRunning {
		s.phase = models.PhaseIdle
		s.execution = models.ExecutionIdle
		s.spindleLoad = math.Max(0, s.spindleLoad-e.profile.idleLoadDecay*t.dt)
		s.feedRate = math.Max(0, s.feedRate-e.profile.idleFeedDecay*t.dt)
		if chance(t.rnd.Cycle, e.profile.startProbability) {
			if e.profile.start != nil {
				e.profile.start(s, t)
			}
			s.execution = models.ExecutionRunning
			s.enter(models.PhaseRunning)
		}
		return
	}

	s.execution = models.ExecutionRunning
	s.spindleHours += t.dt / 3600.0
	e.profile.run(s, t)

	if s.timeInPhase >= e.profile.cycleSeconds {
		s.partCount++
		s.totalCycles++
		s.execution = models.ExecutionIdle
		s.enter(models.PhaseIdle)
	}
}

func pressBrakeProfile() strokeProfile {
	return strokeProfile{
		startProbability: 0.05,
		cycleSeconds:     5,
		maxFeed:          80,
		ampsBase:         10,
		ampsPerLoad:      0.1,
		idleLoadDecay:    20,
		idleFeedDecay:    80,
		run: func(s *state, t tick) {
			// нагрузка - тоннаж в процентах, подача - ходов в минуту
			s.spindleLoad = uniform(t.rnd.Noise, 20, 95)
			s.feedRate = float64(randInt(t.rnd.Noise, 20, 80))
			s.pos.Y = t.limits.Y.Clamp(s.pos.Y + uniform(t.rnd.Noise, -1, 1))
		},
		rule: alarmRule{code: AlarmOverTonnage, p: 0.1, when: func(s *state) bool { return s.spindleLoad > 90 }},
	}
}

func laserProfile() strokeProfile {
	return strokeProfile{
		startProbability: 0.07,
		cycleSeconds:     8,
		maxFeed:          3000,
		ampsBase:         15,
		ampsPerLoad:      0.2,
		idleLoadDecay:    8,
		idleFeedDecay:    500,
		start: func(s *state, t tick) {
			s.targetFeed = float64(randInt(t.rnd.Noise, 800, 3000))
		},
		run: func(s *state, t tick) {
			// нагрузка - мощность источника в процентах
			s.spindleLoad = uniform(t.rnd.Noise, 30, 100)
			s.pos.X = t.limits.X.Clamp(s.pos.X + uniform(t.rnd.Noise, -5, 5))
			s.pos.Y = t.limits.Y.Clamp(s.pos.Y + uniform(t.rnd.Noise, -5, 5))
			// подача идет к цели с ускорением 300 ед./с в обе стороны
			if s.feedRate < s.targetFeed {
				s.feedRate = math.Min(s.targetFeed, s.feedRate+300*t.dt)
			} else {
				s.feedRate = math.Max(s.targetFeed, s.feedRate-300*t.dt)
			}
		},
		rule: alarmRule{code: AlarmLaserPowerFault, p: 0.1, when: func(s *state) bool { return s.spindleLoad > 95 }},
	}
}
