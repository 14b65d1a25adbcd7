package interfaces

import (
	"github.com/iwtcode/cncSimulator/internal/domain/models"
)

// Usecases - это агрегирующий интерфейс для всех use cases
type Usecases interface {
	ListMachines() []models.MachineSnapshot
	GetMachine(id string) (models.MachineSnapshot, error)
	ListAlarms() []models.ActiveAlarm

	// SetPower включает или выключает питание. on == nil переключает питание.
	SetPower(id string, on *bool) (models.MachineSnapshot, error)
	InjectAlarm(id, code string) (models.MachineSnapshot, error)
	ClearAlarm(id string) (models.MachineSnapshot, error)
	ReplaceTool(id string, number int) (models.MachineSnapshot, error)

	MTConnectCurrent(id string) ([]byte, error)
}
