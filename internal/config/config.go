package config

import (
	"errors"
	"os"
)

// Config holds the process configuration, loaded once at cold start and
// reused across invocations.
type Config struct {
	FlightsTable string
}

// Load reads configuration from the function's environment variables.
func Load() (*Config, error) {
	flightsTable, found := os.LookupEnv("FLIGHTS_TABLE")
	if !found || flightsTable == "" {
		return nil, errors.New("failed to retrieve FLIGHTS_TABLE environment variable")
	}

	return &Config{FlightsTable: flightsTable}, nil
}
