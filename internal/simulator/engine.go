package simulator

import "github.com/iwtcode/cncSimulator/internal/domain/models"

// tick - параметры одного шага модели.
type tick struct {
	dt     float64
	rnd    Randomness
	limits models.AxisLimits
}

// cycleEngine - фазовая машина конкретного типа станка.
// Реализация выбирается фабрикой при создании станка.
type cycleEngine interface {
	// step продвигает цикл на t.dt секунд.
	step(s *state, t tick)
	// rules возвращает упорядоченный список условий аварий.
	rules() []alarmRule
	bounds() bounds
	// amps возвращает базовый ток и коэффициент от нагрузки.
	amps() (base, perLoad float64)
}
