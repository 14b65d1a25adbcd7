package simulator

import "github.com/iwtcode/cncSimulator/internal/domain/models"

// Коды аварий, которые выставляет модель.
const (
	AlarmSpindleOverload    = "SPINDLE_OVERLOAD"
	AlarmAxisFollowingError = "AXIS_FOLLOWING_ERROR"
	AlarmLowCoolant         = "LOW_COOLANT"
	AlarmHighTemperature    = "HIGH_TEMPERATURE"
	AlarmToolLifeExpired    = "TOOL_LIFE_EXPIRED"
	AlarmHighVibration      = "HIGH_VIBRATION"
	AlarmOverTonnage        = "OVER_TONNAGE"
	AlarmLaserPowerFault    = "LASER_POWER_FAULT"

	// AlarmTest подставляется при принудительной аварии без кода.
	AlarmTest = "TEST_ALARM"
)

const alarmAutoClearProbability = 0.02

// alarmRule - условие аварии. when == nil означает, что условие выполнено всегда.
type alarmRule struct {
	code string
	p    float64
	when func(s *state) bool
}

// evaluateAlarms проверяет правила по порядку; первое сработавшее защелкивает аварию,
// остальные в этом тике не проверяются.
func evaluateAlarms(rules []alarmRule, s *state, src Source) bool {
	for _, r := range rules {
		if r.when != nil && !r.when(s) {
			continue
		}
		if chance(src, r.p) {
			s.latch(r.code)
			return true
		}
	}
	return false
}

// holdAlarm выполняется каждый тик, пока авария защелкнута.
func holdAlarm(s *state, src Source) {
	s.latch(s.alarm)
	if chance(src, alarmAutoClearProbability) {
		s.alarm = ""
		s.execution = models.ExecutionIdle
	}
}
