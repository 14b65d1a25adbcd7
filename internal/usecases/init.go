package usecases

import (
	"github.com/iwtcode/cncSimulator/internal/interfaces"
	"github.com/iwtcode/cncSimulator/internal/middleware/logging"
)

// NewUsecases - конструктор для use case слоя
func NewUsecases(
	fleet interfaces.FleetService,
	logger *logging.Logger,
) interfaces.Usecases {
	return NewUsecase(fleet, logger)
}
