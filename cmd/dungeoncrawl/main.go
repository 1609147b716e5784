// Package main is the entry point for the dungeoncrawl explorer.
package main

import (
	"context"
	"log"

	"github.com/samdwyer/dungeoncrawl/internal/config"
	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/random"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.OtelEndpoint)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	rng, seed, err := random.NewRand(cfg.Seed)
	if err != nil {
		log.Fatalf("Failed to seed generator: %v", err)
	}

	registry, err := gamedata.LoadObjectRegistry()
	if err != nil {
		log.Fatalf("Failed to load object catalogue: %v", err)
	}

	g, err := game.New(cfg, registry, rng)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error (seed %d): %v", seed, err)
	}
	log.Printf("Seed %d", seed)
}
