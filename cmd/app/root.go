package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cnc-simulator",
		Short:         "CNC fleet telemetry simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		// без подкоманды запускается сервер
		RunE: runServe,
	}

	cmd.AddCommand(
		serveCmd,
		simulateCmd,
	)
	return cmd
}()
