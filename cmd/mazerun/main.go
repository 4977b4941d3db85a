// Package main is the entry point for mazerun.
package main

import (
	"context"
	"log"

	"github.com/samdwyer/mazerun/internal/config"
	"github.com/samdwyer/mazerun/internal/game"
	"github.com/samdwyer/mazerun/internal/logging"
	"github.com/samdwyer/mazerun/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closer.Close()

	ctx := context.Background()

	if cfg.Telemetry {
		cfg.ApplyOTelEnv()
	}
	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		// Not fatal - the game runs without observability
		logger.WithError(err).Warn("telemetry setup failed")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.WithError(err).Error("telemetry shutdown failed")
			}
		}()
	}

	g, err := game.New(game.Config{Size: cfg.Size, Seed: cfg.Seed}, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		logger.WithError(err).Error("game stopped")
		log.Fatalf("Game error: %v", err)
	}
}
