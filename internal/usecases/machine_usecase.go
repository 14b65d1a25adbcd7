package usecases

import (
	"fmt"
	"time"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/internal/interfaces"
	"github.com/iwtcode/cncSimulator/internal/middleware/logging"
	"github.com/iwtcode/cncSimulator/internal/services/mtconnect"
	"github.com/iwtcode/cncSimulator/internal/simulator"
)

type Usecase struct {
	fleet  interfaces.FleetService
	logger *logging.Logger
	now    func() time.Time
}

func NewUsecase(fleet interfaces.FleetService, logger *logging.Logger) interfaces.Usecases {
	return &Usecase{
		fleet:  fleet,
		logger: logger.WithPrefix("USECASE"),
		now:    time.Now,
	}
}

func (u *Usecase) ListMachines() []models.MachineSnapshot {
	return u.fleet.List()
}

func (u *Usecase) GetMachine(id string) (models.MachineSnapshot, error) {
	return u.fleet.Get(id)
}

func (u *Usecase) ListAlarms() []models.ActiveAlarm {
	return u.fleet.Alarms()
}

func (u *Usecase) SetPower(id string, on *bool) (models.MachineSnapshot, error) {
	return u.control(id, func(m simulator.Machine) error {
		if on == nil {
			m.TogglePower()
		} else {
			m.SetPower(*on)
		}
		u.logger.Info("Power changed", "machine_id", id, "toggle", on == nil)
		return nil
	})
}

func (u *Usecase) InjectAlarm(id, code string) (models.MachineSnapshot, error) {
	return u.control(id, func(m simulator.Machine) error {
		m.InjectAlarm(code)
		u.logger.Warn("Alarm injected", "machine_id", id, "alarm", code)
		return nil
	})
}

func (u *Usecase) ClearAlarm(id string) (models.MachineSnapshot, error) {
	return u.control(id, func(m simulator.Machine) error {
		m.ClearAlarm()
		u.logger.Info("Alarm cleared", "machine_id", id)
		return nil
	})
}

func (u *Usecase) ReplaceTool(id string, number int) (models.MachineSnapshot, error) {
	return u.control(id, func(m simulator.Machine) error {
		if err := m.ReplaceTool(number); err != nil {
			return err
		}
		u.logger.Info("Tool replaced", "machine_id", id, "tool", number)
		return nil
	})
}

func (u *Usecase) MTConnectCurrent(id string) ([]byte, error) {
	snap, err := u.fleet.Get(id)
	if err != nil {
		return nil, err
	}
	body, err := mtconnect.Marshal(mtconnect.Current(snap, u.now()))
	if err != nil {
		return nil, fmt.Errorf("не удалось построить документ MTConnect для %s: %w", id, err)
	}
	return body, nil
}

// control находит станок, применяет операцию и возвращает свежий снимок.
func (u *Usecase) control(id string, op func(simulator.Machine) error) (models.MachineSnapshot, error) {
	m, err := u.fleet.Machine(id)
	if err != nil {
		return models.MachineSnapshot{}, err
	}
	if err := op(m); err != nil {
		return models.MachineSnapshot{}, err
	}
	return m.Snapshot(), nil
}
