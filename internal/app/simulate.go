package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/internal/services/fleet_service"
)

// SimulateOptions - параметры офлайн-прогона.
type SimulateOptions struct {
	Ticks     int
	Dt        float64
	MachineID string // пусто - весь парк
	Every     int    // печатать каждый N-й тик, 0 - только последний
}

// tickFrame - одна строка вывода JSON Lines.
type tickFrame struct {
	Tick     int                      `json:"tick"`
	Machines []models.MachineSnapshot `json:"machines"`
}

// Simulate прогоняет реестр без тикера и HTTP, печатая кадры в w.
func Simulate(w io.Writer, registry *fleet_service.Registry, opts SimulateOptions) error {
	if opts.Ticks <= 0 {
		return fmt.Errorf("число тиков должно быть больше нуля, получено %d", opts.Ticks)
	}
	if opts.MachineID != "" {
		if _, err := registry.Get(opts.MachineID); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(w)
	for tick := 1; tick <= opts.Ticks; tick++ {
		if err := registry.Advance(opts.Dt); err != nil {
			return fmt.Errorf("тик %d: %w", tick, err)
		}

		last := tick == opts.Ticks
		if !last && (opts.Every <= 0 || tick%opts.Every != 0) {
			continue
		}
		if err := enc.Encode(tickFrame{Tick: tick, Machines: frame(registry, opts.MachineID)}); err != nil {
			return err
		}
	}
	return nil
}

func frame(registry *fleet_service.Registry, id string) []models.MachineSnapshot {
	if id == "" {
		return registry.List()
	}
	snap, _ := registry.Get(id)
	return []models.MachineSnapshot{snap}
}
