package builtin

import "github.com/iwtcode/cncSimulator/internal/domain/entities"

// Source отдает встроенный состав цеха.
type Source struct{}

func NewSource() Source {
	return Source{}
}

func (Source) Load() ([]entities.MachineDefinition, error) {
	return entities.DefaultFleet(), nil
}
