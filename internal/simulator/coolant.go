package simulator

import (
	"math"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
)

const (
	ambientTempF = 72.0
	maxTempF     = 120.0

	coolantRecoverPerTick = 0.1
	coolantDrainPerTick   = 0.08
	coolantNominalPSI     = 50.0
)

type coolant struct {
	level       float64
	pressure    float64
	temperature float64
}

func newCoolant() *coolant {
	return &coolant{level: 100, pressure: coolantNominalPSI, temperature: ambientTempF}
}

func (c *coolant) clone() *coolant {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func (c *coolant) recover() {
	c.level = math.Min(100, c.level+coolantRecoverPerTick)
}

func (c *coolant) drain(src Source) {
	c.level = math.Max(0, c.level-src.Float64()*coolantDrainPerTick)
}

// resample берет независимые выборки давления и температуры, без сглаживания.
func (c *coolant) resample(src Source) {
	c.pressure = coolantNominalPSI + uniform(src, -10, 10)
	c.temperature = ambientTempF + src.Float64()*15
}

func (c *coolant) snapshot() *models.CoolantSnapshot {
	if c == nil {
		return nil
	}
	return &models.CoolantSnapshot{Level: c.level, Pressure: c.pressure, Temperature: c.temperature}
}

// nextTemperature: в работе температура растет пропорционально нагрузке,
// в остальное время остывает к температуре цеха.
func nextTemperature(temp float64, running bool, load float64, src Source) float64 {
	if running {
		temp += load / 100 * 0.3
	} else {
		temp -= uniform(src, 0.2, 0.5)
	}
	return clamp(temp, ambientTempF, maxTempF)
}
