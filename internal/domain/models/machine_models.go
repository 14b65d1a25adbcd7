package models

import "time"

// Kind определяет тип станка в парке.
type Kind string

const (
	KindMill       Kind = "MILL"
	KindLathe      Kind = "LATHE"
	KindPressBrake Kind = "PRESS_BRAKE"
	KindLaser      Kind = "LASER"
)

// Execution - укрупненное состояние исполнения.
type Execution string

const (
	ExecutionIdle    Execution = "IDLE"
	ExecutionRunning Execution = "RUNNING"
	ExecutionAlarm   Execution = "ALARM"
	ExecutionStopped Execution = "STOPPED"
)

// Phase - фаза рабочего цикла. Набор фаз зависит от типа станка.
type Phase string

const (
	PhaseIdle        Phase = "IDLE"
	PhaseSpindleRamp Phase = "SPINDLE_RAMP"
	PhaseRapid       Phase = "RAPID"
	PhaseCutting     Phase = "CUTTING"
	PhaseRetract     Phase = "RETRACT"
	PhaseDwell       Phase = "DWELL"
	PhaseFinish      Phase = "FINISH"
	PhaseRunning     Phase = "RUNNING"
)

// Range - допустимый ход по одной оси.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Clamp ограничивает значение ходом оси.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Mid возвращает середину хода.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// AxisLimits содержит ходы осей X/Y/Z.
type AxisLimits struct {
	X Range `json:"X"`
	Y Range `json:"Y"`
	Z Range `json:"Z"`
}

// IsZero сообщает, что ход оси не задан.
func (r Range) IsZero() bool {
	return r == Range{}
}

// AxisPositions содержит текущие координаты осей.
type AxisPositions struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
	Z float64 `json:"Z"`
}

// ToolSnapshot - состояние одного инструмента в магазине.
type ToolSnapshot struct {
	Number      int     `json:"number"`
	Type        string  `json:"type"`
	Diameter    float64 `json:"diameter"`
	Length      float64 `json:"length"`
	Description string  `json:"description"`
	CurrentLife float64 `json:"currentLife"`
	MaxLife     float64 `json:"maxLife"`
	InUse       bool    `json:"inUse"`
}

// CoolantSnapshot - состояние системы СОЖ.
type CoolantSnapshot struct {
	Level       float64 `json:"level"`
	Pressure    float64 `json:"pressure"`
	Temperature float64 `json:"temperature"`
}

// MachineSnapshot - неизменяемая копия наблюдаемого состояния станка на момент одного тика.
type MachineSnapshot struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Kind               Kind             `json:"type"`
	Power              bool             `json:"power"`
	Execution          Execution        `json:"execution"`
	CyclePhase         Phase            `json:"cyclePhase"`
	TimeInPhase        float64          `json:"timeInPhase"`
	SpindleSpeed       float64          `json:"spindleSpeed"`
	TargetSpindleSpeed float64          `json:"targetSpindleSpeed"`
	SpindleLoad        float64          `json:"spindleLoad"`
	FeedRate           float64          `json:"feedRate"`
	TargetFeedRate     float64          `json:"targetFeedRate"`
	AxisPositions      AxisPositions    `json:"axisPositions"`
	AxisLimits         AxisLimits       `json:"axisLimits"`
	MachineOnHours     float64          `json:"machineOnHours"`
	SpindleHours       float64          `json:"spindleHours"`
	TotalCycles        int64            `json:"totalCycles"`
	PartCount          int64            `json:"partCount"`
	Temperature        float64          `json:"temperature"`
	Alarm              *string          `json:"alarm"`
	ToolWear           float64          `json:"toolWear"`
	Vibration          float64          `json:"vibration"`
	CurrentAmps        float64          `json:"currentAmps"`
	CurrentTool        int              `json:"currentTool,omitempty"`
	Tools              []ToolSnapshot   `json:"tools,omitempty"`
	Coolant            *CoolantSnapshot `json:"coolant,omitempty"`
	ProgramRunning     string           `json:"programRunning,omitempty"`
	Timestamp          time.Time        `json:"timestamp"`
}

// HasAlarm сообщает о наличии защелкнутой аварии.
func (s MachineSnapshot) HasAlarm() bool {
	return s.Alarm != nil
}

// ActiveAlarm - запись об активной аварии в сводке по парку.
type ActiveAlarm struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Alarm     string    `json:"alarm"`
	Execution Execution `json:"execution"`
	Timestamp time.Time `json:"timestamp"`
}
