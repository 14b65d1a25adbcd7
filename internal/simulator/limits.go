package simulator

import (
	"fmt"
	"math"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/pkg/errors"
)

// DefaultLimits возвращает ходы осей по умолчанию для типа станка.
func DefaultLimits(kind models.Kind) models.AxisLimits {
	switch kind {
	case models.KindMill:
		return models.AxisLimits{X: models.Range{Min: 0, Max: 762}, Y: models.Range{Min: 0, Max: 406}, Z: models.Range{Min: 0, Max: 508}}
	case models.KindLathe:
		return models.AxisLimits{X: models.Range{Min: 0, Max: 300}, Y: models.Range{Min: 0, Max: 200}, Z: models.Range{Min: 0, Max: 500}}
	case models.KindPressBrake:
		return models.AxisLimits{X: models.Range{Min: 0, Max: 3100}, Y: models.Range{Min: 0, Max: 250}, Z: models.Range{Min: 0, Max: 100}}
	case models.KindLaser:
		return models.AxisLimits{X: models.Range{Min: 0, Max: 3000}, Y: models.Range{Min: 0, Max: 1500}, Z: models.Range{Min: 0, Max: 100}}
	default:
		return models.AxisLimits{}
	}
}

// withDefaults подставляет ход по умолчанию для типа на каждую незаданную ось.
func withDefaults(l models.AxisLimits, kind models.Kind) models.AxisLimits {
	def := DefaultLimits(kind)
	if l.X.IsZero() {
		l.X = def.X
	}
	if l.Y.IsZero() {
		l.Y = def.Y
	}
	if l.Z.IsZero() {
		l.Z = def.Z
	}
	return l
}

func validateLimits(l models.AxisLimits) error {
	axes := []struct {
		name string
		r    models.Range
	}{{"X", l.X}, {"Y", l.Y}, {"Z", l.Z}}

	for _, a := range axes {
		if !finite(a.r.Min) || !finite(a.r.Max) || a.r.Min >= a.r.Max {
			return fmt.Errorf("%w: axis %s [%v, %v]", errors.ErrInvalidLimits, a.name, a.r.Min, a.r.Max)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
