package machine_definition

import (
	"github.com/iwtcode/cncSimulator/internal/domain/entities"
)

// Load возвращает описания в порядке регистрации
func (r *MachineDefinitionRepositoryImpl) Load() ([]entities.MachineDefinition, error) {
	var defs []entities.MachineDefinition
	if err := r.db.Order("position ASC, id ASC").Find(&defs).Error; err != nil {
		return nil, err
	}
	return defs, nil
}

func (r *MachineDefinitionRepositoryImpl) Save(def *entities.MachineDefinition) error {
	return r.db.Save(def).Error
}

func (r *MachineDefinitionRepositoryImpl) Count() (int64, error) {
	var n int64
	err := r.db.Model(&entities.MachineDefinition{}).Count(&n).Error
	return n, err
}
