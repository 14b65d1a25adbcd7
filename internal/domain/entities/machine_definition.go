package entities

import (
	"time"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
)

// MachineDefinition - описание станка парка. Хранится в БД или в YAML-файле
// и используется только при построении реестра.
type MachineDefinition struct {
	ID             string      `gorm:"primaryKey;not null" json:"id" yaml:"id"`
	Name           string      `gorm:"not null" json:"name" yaml:"name"`
	Kind           models.Kind `gorm:"not null" json:"kind" yaml:"kind"`
	XMin           float64     `json:"x_min" yaml:"x_min"`
	XMax           float64     `json:"x_max" yaml:"x_max"`
	YMin           float64     `json:"y_min" yaml:"y_min"`
	YMax           float64     `json:"y_max" yaml:"y_max"`
	ZMin           float64     `json:"z_min" yaml:"z_min"`
	ZMax           float64     `json:"z_max" yaml:"z_max"`
	SpindlePowerHP float64     `json:"spindle_power_hp" yaml:"spindle_power_hp"`
	Disabled       bool        `gorm:"not null;default:false" json:"disabled" yaml:"disabled"`
	Position       int         `gorm:"not null;default:0" json:"-" yaml:"-"` // порядок в реестре
	CreatedAt      time.Time   `json:"created_at" yaml:"-"`
	UpdatedAt      time.Time   `json:"updated_at" yaml:"-"`
}

// Limits собирает ходы осей. Ось с нулевыми min и max получает ход по умолчанию для типа.
func (d MachineDefinition) Limits() models.AxisLimits {
	return models.AxisLimits{
		X: models.Range{Min: d.XMin, Max: d.XMax},
		Y: models.Range{Min: d.YMin, Max: d.YMax},
		Z: models.Range{Min: d.ZMin, Max: d.ZMax},
	}
}

// DefaultFleet - встроенный состав цеха.
func DefaultFleet() []MachineDefinition {
	return []MachineDefinition{
		{ID: "haas_vf2", Name: "Haas VF-2", Kind: models.KindMill, XMax: 762, YMax: 406, ZMax: 508, SpindlePowerHP: 30},
		{ID: "haas_vf4", Name: "Haas VF-4", Kind: models.KindMill, XMax: 1270, YMax: 508, ZMax: 635, SpindlePowerHP: 30},
		{ID: "toyoda_hmc", Name: "Toyoda HMC", Kind: models.KindMill, XMax: 800, YMax: 700, ZMax: 600, SpindlePowerHP: 40},
		{ID: "cnc_lathe", Name: "CNC Lathe", Kind: models.KindLathe, XMax: 300, YMax: 200, ZMax: 500, SpindlePowerHP: 20},
		{ID: "durma_press", Name: "Durma Press Brake", Kind: models.KindPressBrake},
		{ID: "fiber_laser", Name: "Fiber Laser", Kind: models.KindLaser},
	}
}
