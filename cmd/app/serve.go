package main

import (
	"github.com/spf13/cobra"

	"github.com/iwtcode/cncSimulator/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the simulator with the HTTP API and push sinks",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	// Создаем и запускаем новый экземпляр приложения fx
	app.New().Run()
	return nil
}
