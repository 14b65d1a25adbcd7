package machine_definition

import (
	"github.com/iwtcode/cncSimulator/internal/interfaces"
	"gorm.io/gorm"
)

type MachineDefinitionRepositoryImpl struct {
	db *gorm.DB
}

func NewMachineDefinitionRepository(db *gorm.DB) interfaces.MachineDefinitionRepository {
	return &MachineDefinitionRepositoryImpl{db: db}
}
