package interfaces

import (
	"context"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/internal/simulator"
)

// FleetService - это агрегирующий интерфейс для всей бизнес-логики парка.
type FleetService interface {
	FleetRegistry
	TickerControl
}

// FleetRegistry определяет контракт для доступа к станкам парка.
type FleetRegistry interface {
	List() []models.MachineSnapshot
	Get(id string) (models.MachineSnapshot, error)
	Machine(id string) (simulator.Machine, error)
	Alarms() []models.ActiveAlarm
}

// TickerControl определяет контракт для тикера, продвигающего модель.
type TickerControl interface {
	Start(ctx context.Context) error
	Stop()
	IsRunning() bool
	TickOnce(ctx context.Context) []models.MachineSnapshot
}

// SnapshotStream выдает подписки на снимки после каждого тика.
type SnapshotStream interface {
	Subscribe() (id string, updates <-chan []models.MachineSnapshot, cancel func())
	Subscribers() int
}
