package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("FLIGHTS_TABLE", "FlightsTable")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "FlightsTable", cfg.FlightsTable)
}

func TestLoadMissingTable(t *testing.T) {
	t.Setenv("FLIGHTS_TABLE", "")

	_, err := Load()

	assert.EqualError(t, err, "failed to retrieve FLIGHTS_TABLE environment variable")
}
