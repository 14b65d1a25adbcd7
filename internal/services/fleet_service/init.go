package fleet_service

import (
	"github.com/iwtcode/cncSimulator/internal/interfaces"
)

type fleetService struct {
	*Registry
	*Ticker
}

// NewFleetService объединяет реестр и тикер за одним интерфейсом.
func NewFleetService(registry *Registry, ticker *Ticker) interfaces.FleetService {
	return &fleetService{
		Registry: registry,
		Ticker:   ticker,
	}
}
