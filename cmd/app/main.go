// @title CNC Simulator API
// @version 1.0.0
// @description Симулятор парка станков с ЧПУ: телеметрия, управление и поток данных.
// @host localhost:8080
// @BasePath /api/v1
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
