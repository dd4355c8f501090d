// Package env loads CLI defaults from the environment and an optional .env
// file. Command-line flags take precedence over everything here.
package env

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Environment struct {
	// Input is the path of the network definition file (PULSE_INPUT).
	Input string
	// Format is the definition format, "text" or "yaml" (PULSE_FORMAT).
	Format string
	// Presses is the default button press count (PULSE_PRESSES).
	Presses uint64
}

func LoadEnv(logger *zap.Logger) *Environment {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Fatal("Error loading .env file", zap.Error(err))
	}
	e := &Environment{Format: "text", Presses: 1000}
	if v, ok := os.LookupEnv("PULSE_INPUT"); ok {
		e.Input = v
	}
	if v, ok := os.LookupEnv("PULSE_FORMAT"); ok {
		e.Format = v
	}
	if v, ok := os.LookupEnv("PULSE_PRESSES"); ok {
		presses, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			logger.Fatal("Failed to parse PULSE_PRESSES", zap.Error(err))
		}
		e.Presses = presses
	}
	return e
}
