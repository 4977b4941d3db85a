// Package config loads mazerun settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/mazerun/internal/maze"
)

// ErrInvalid is wrapped by every configuration validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the application's configuration values.
type Config struct {
	Size      int    // Side length of the square maze
	Seed      int64  // Generator seed; 0 picks a time-based seed
	LogFile   string // Path of the log file; the terminal is owned by the UI
	LogLevel  string // logrus level name
	Telemetry bool   // Export traces over OTLP/HTTP

	HoneycombAPIKey  string
	HoneycombDataset string
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Size:             maze.DefaultSize,
		LogFile:          "mazerun.log",
		LogLevel:         "info",
		HoneycombDataset: "mazerun",
	}
}

// Load reads .env (if present) and then the process environment.
// A missing .env file is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from the given variable lookup, applying defaults.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("MAZE_SIZE"); ok {
		size, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%w: MAZE_SIZE must be an integer: %v", ErrInvalid, err)
		}
		cfg.Size = size
	}
	if v, ok := lookup("MAZE_SEED"); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: MAZE_SEED must be an integer: %v", ErrInvalid, err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup("MAZE_LOG_FILE"); ok && v != "" {
		cfg.LogFile = v
	}
	if v, ok := lookup("MAZE_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("MAZE_TELEMETRY"); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: MAZE_TELEMETRY must be a boolean: %v", ErrInvalid, err)
		}
		cfg.Telemetry = enabled
	}
	if v, ok := lookup("HONEYCOMB_MAZERUN_API_KEY"); ok {
		cfg.HoneycombAPIKey = v
	}
	if v, ok := lookup("HONEYCOMB_MAZERUN_DATASET"); ok && v != "" {
		cfg.HoneycombDataset = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Size < maze.MinSize {
		return fmt.Errorf("%w: MAZE_SIZE %d is below the minimum of %d", ErrInvalid, c.Size, maze.MinSize)
	}
	return nil
}

// ApplyOTelEnv points the OTLP exporter at Honeycomb.
//
// The .env file may hold an unexpanded variable reference for the headers, so
// they are always constructed here from the API key and dataset.
func (c Config) ApplyOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	if c.HoneycombAPIKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", c.HoneycombAPIKey, c.HoneycombDataset))
	}
}
