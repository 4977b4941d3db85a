package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 20, cfg.Size)
	assert.False(t, cfg.Telemetry)
}

func TestFromLookupOverrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"MAZE_SIZE":                 " 12 ",
		"MAZE_SEED":                 "42",
		"MAZE_LOG_FILE":             "/tmp/maze.log",
		"MAZE_LOG_LEVEL":            "debug",
		"MAZE_TELEMETRY":            "true",
		"HONEYCOMB_MAZERUN_API_KEY": "key",
	}))
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Size)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "/tmp/maze.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Telemetry)
	assert.Equal(t, "key", cfg.HoneycombAPIKey)
	assert.Equal(t, "mazerun", cfg.HoneycombDataset)
}

func TestFromLookupInvalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"size not a number", map[string]string{"MAZE_SIZE": "big"}},
		{"size too small", map[string]string{"MAZE_SIZE": "2"}},
		{"seed not a number", map[string]string{"MAZE_SEED": "x"}},
		{"telemetry not a bool", map[string]string{"MAZE_TELEMETRY": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(tt.vars))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestApplyOTelEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	cfg := Default()
	cfg.HoneycombAPIKey = "abc"
	cfg.ApplyOTelEnv()

	assert.Equal(t, "https://api.honeycomb.io", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	assert.Equal(t, "x-honeycomb-team=abc,x-honeycomb-dataset=mazerun", os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
}
