package config

import (
	"errors"
	"fmt"
)

// Config holds the settings shared by the commands.
type Config struct {
	Width     int  `env:"DUNGEON_WIDTH" envDefault:"15"`
	Height    int  `env:"DUNGEON_HEIGHT" envDefault:"15"`
	ViewRange int  `env:"DUNGEON_VIEW_RANGE" envDefault:"3"`
	Fog       bool `env:"DUNGEON_FOG" envDefault:"true"`

	// Seed for random number generation. A seed of 0 means a random seed
	// will be generated.
	Seed int64 `env:"DUNGEON_SEED" envDefault:"0"`

	// Floors to clear before the run ends. 0 means endless.
	Floors int `env:"DUNGEON_FLOORS" envDefault:"3"`

	// OtelEndpoint enables tracing when set (e.g. http://localhost:4318).
	OtelEndpoint string `env:"DUNGEON_OTEL_ENDPOINT"`
}

// ErrInvalidConfig is returned when a setting is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the dungeon dimensions can hold at least one room.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.ViewRange < 1:
		return fmt.Errorf("%w: view range %d", ErrInvalidConfig, c.ViewRange)
	case c.Floors < 0:
		return fmt.Errorf("%w: floors %d", ErrInvalidConfig, c.Floors)
	}
	return nil
}
