package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iwtcode/cncSimulator/internal/app"
	"github.com/iwtcode/cncSimulator/internal/config"
)

var simulateOpts app.SimulateOptions

var simulateCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Advance the fleet offline and print snapshots as JSON lines",
		RunE:  runSimulate,
	}

	cmd.Flags().IntVar(&simulateOpts.Ticks, "ticks", 60, "number of ticks to run")
	cmd.Flags().Float64Var(&simulateOpts.Dt, "dt", 1, "tick duration in seconds")
	cmd.Flags().StringVar(&simulateOpts.MachineID, "machine", "", "print only this machine")
	cmd.Flags().IntVar(&simulateOpts.Every, "every", 0, "print every N-th tick (0 prints the last one)")
	cmd.Flags().Int64("seed", 0, "random seed (overrides SIM_SEED)")
	return cmd
}()

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfiguration()
	if err != nil {
		return err
	}
	if err := applySeedFlag(cmd, cfg); err != nil {
		return err
	}
	// логи не должны смешиваться с JSON в stdout
	cfg.Logging.Enable = false

	logger := app.NewLogger(cfg)
	defer logger.Close()

	source, err := app.ProvideFleetSource(cfg, logger)
	if err != nil {
		return err
	}
	registry, err := app.BuildRegistry(source, cfg, logger)
	if err != nil {
		return err
	}
	return app.Simulate(os.Stdout, registry, simulateOpts)
}

// applySeedFlag переносит --seed поверх SIM_SEED, если флаг задан.
func applySeedFlag(cmd *cobra.Command, cfg *config.AppConfig) error {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		return fmt.Errorf("flag --seed: %w", err)
	}
	cfg.Simulation.Seed = seed
	return nil
}
