package fleet_service

import (
	"errors"
	"fmt"
	"time"

	"github.com/iwtcode/cncSimulator/internal/domain/entities"
	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/internal/simulator"
	apperrors "github.com/iwtcode/cncSimulator/pkg/errors"
)

// Registry хранит станки парка в порядке регистрации.
// Состав парка фиксируется при создании и дальше не меняется,
// поэтому чтение реестра не требует блокировок.
type Registry struct {
	order    []string
	machines map[string]simulator.Machine
}

func NewRegistry(machines ...simulator.Machine) (*Registry, error) {
	r := &Registry{machines: make(map[string]simulator.Machine, len(machines))}
	for _, m := range machines {
		if m.ID() == "" {
			return nil, fmt.Errorf("%w: empty id", apperrors.ErrInvalidMachine)
		}
		if _, exists := r.machines[m.ID()]; exists {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateID, m.ID())
		}
		r.order = append(r.order, m.ID())
		r.machines[m.ID()] = m
	}
	if len(r.order) == 0 {
		return nil, apperrors.ErrEmptyFleet
	}
	return r, nil
}

// NewRegistryFromDefinitions строит станки по описаниям. Отключенные описания пропускаются.
// Каждый станок получает свой генератор: seed+i, либо засев от времени при seed == 0.
func NewRegistryFromDefinitions(defs []entities.MachineDefinition, seed int64) (*Registry, error) {
	base := seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	machines := make([]simulator.Machine, 0, len(defs))
	for i, def := range defs {
		if def.Disabled {
			continue
		}
		m, err := simulator.NewMachine(simulator.Config{
			ID:             def.ID,
			Name:           def.Name,
			Kind:           def.Kind,
			Limits:         def.Limits(),
			SpindlePowerHP: def.SpindlePowerHP,
			Seed:           base + int64(i),
		})
		if err != nil {
			return nil, fmt.Errorf("definition %q: %w", def.ID, err)
		}
		machines = append(machines, m)
	}
	return NewRegistry(machines...)
}

func (r *Registry) Len() int {
	return len(r.order)
}

// List возвращает снимки всех станков в порядке регистрации.
func (r *Registry) List() []models.MachineSnapshot {
	out := make([]models.MachineSnapshot, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.machines[id].Snapshot())
	}
	return out
}

func (r *Registry) Get(id string) (models.MachineSnapshot, error) {
	m, err := r.Machine(id)
	if err != nil {
		return models.MachineSnapshot{}, err
	}
	return m.Snapshot(), nil
}

func (r *Registry) Machine(id string) (simulator.Machine, error) {
	m, ok := r.machines[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrMachineNotFound, id)
	}
	return m, nil
}

// Alarms возвращает активные аварии по всему парку.
func (r *Registry) Alarms() []models.ActiveAlarm {
	alarms := make([]models.ActiveAlarm, 0)
	for _, snap := range r.List() {
		if !snap.HasAlarm() {
			continue
		}
		alarms = append(alarms, models.ActiveAlarm{
			ID:        snap.ID,
			Name:      snap.Name,
			Alarm:     *snap.Alarm,
			Execution: snap.Execution,
			Timestamp: snap.Timestamp,
		})
	}
	return alarms
}

// Advance продвигает все станки последовательно. Ошибка одного станка
// не останавливает остальные, ошибки объединяются.
func (r *Registry) Advance(dt float64) error {
	var errs []error
	for _, id := range r.order {
		if err := r.machines[id].Advance(dt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
