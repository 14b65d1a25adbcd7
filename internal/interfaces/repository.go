package interfaces

import (
	"github.com/iwtcode/cncSimulator/internal/domain/entities"
)

// FleetSource возвращает описания станков, из которых строится реестр.
type FleetSource interface {
	Load() ([]entities.MachineDefinition, error)
}

// MachineDefinitionRepository определяет контракт для работы с описаниями станков в БД
type MachineDefinitionRepository interface {
	FleetSource
	Save(def *entities.MachineDefinition) error
	Count() (int64, error)
}
