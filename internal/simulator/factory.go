package simulator

import (
	"fmt"
	"time"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/pkg/errors"
)

// Config описывает станок при создании.
type Config struct {
	ID     string
	Name   string
	Kind   models.Kind
	Limits models.AxisLimits // незаданная ось берет ход по умолчанию для типа
	// SpindlePowerHP масштабирует ток от нагрузки, 0 - эталонный шпиндель
	SpindlePowerHP float64
	Seed           int64      // 0 - засев от времени
	Rand           Randomness // незаданные потоки заполняются генератором с Seed
	Clock          func() time.Time
}

// referenceSpindleHP - мощность, для которой подобраны коэффициенты тока.
const referenceSpindleHP = 30.0

// NewMachine создает станок и выбирает фазовую машину по типу.
func NewMachine(cfg Config) (Machine, error) {
	engine, err := engineFor(cfg.Kind)
	if err != nil {
		return nil, err
	}

	limits := withDefaults(cfg.Limits, cfg.Kind)
	if err := validateLimits(limits); err != nil {
		return nil, fmt.Errorf("machine %s: %w", cfg.ID, err)
	}

	if !finite(cfg.SpindlePowerHP) || cfg.SpindlePowerHP < 0 {
		return nil, fmt.Errorf("%w: machine %s: spindle power %v", errors.ErrInvalidMachine, cfg.ID, cfg.SpindlePowerHP)
	}
	ampsScale := 1.0
	if cfg.SpindlePowerHP > 0 {
		ampsScale = cfg.SpindlePowerHP / referenceSpindleHP
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	rnd := cfg.Rand.withDefaults(cfg.Seed)

	m := &machine{
		id:        cfg.ID,
		name:      cfg.Name,
		kind:      cfg.Kind,
		limits:    limits,
		engine:    engine,
		ampsScale: ampsScale,
		rnd:       rnd,
		clock:     clock,
	}
	m.st = initialState(cfg.Kind, limits, rnd.Noise)
	m.stamp = clock()
	return m, nil
}

// engineFor - единственное место, где поведение зависит от типа станка.
func engineFor(kind models.Kind) (cycleEngine, error) {
	switch kind {
	case models.KindMill, models.KindLathe:
		return cuttingEngine{}, nil
	case models.KindPressBrake:
		return strokeEngine{profile: pressBrakeProfile()}, nil
	case models.KindLaser:
		return strokeEngine{profile: laserProfile()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownKind, kind)
	}
}

func initialState(kind models.Kind, limits models.AxisLimits, src Source) state {
	s := state{
		power:       true,
		execution:   models.ExecutionIdle,
		phase:       models.PhaseIdle,
		temperature: ambientTempF,
		pos: models.AxisPositions{
			X: limits.X.Mid(),
			Y: limits.Y.Mid(),
			Z: limits.Z.Max,
		},
	}

	switch kind {
	case models.KindMill:
		s.magazine = newMagazine(millMagazineSize, src)
		s.coolant = newCoolant()
	case models.KindLathe:
		s.magazine = newMagazine(defaultMagazineSize, src)
		s.coolant = newCoolant()
	}
	return s
}
