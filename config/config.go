// Package config loads the lab configuration from YAML.
//
// Example file:
//
//	seed: 2024          # 0 seeds the weight generator from the clock
//	log_level: info     # debug | info | warn | error
//	metrics: true       # print prometheus metrics after analyze
//	rooms:              # empty uses room.DefaultRooms()
//	  - {id: 101, category: single, area: 20}
//	  - {id: 201, category: double, area: 38}
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roomgraph/room"
)

// ErrInvalidConfig wraps validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the lab configuration.
type Config struct {
	Seed     int64       `yaml:"seed"`
	LogLevel string      `yaml:"log_level" validate:"oneof=debug info warn error"`
	Metrics  bool        `yaml:"metrics"`
	Rooms    []room.Room `yaml:"rooms" validate:"dive"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads path over Default(). An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// RoomList returns the configured rooms, or the default inventory when none
// are configured.
func (c Config) RoomList() []room.Room {
	if len(c.Rooms) == 0 {
		return room.DefaultRooms()
	}
	out := make([]room.Room, len(c.Rooms))
	copy(out, c.Rooms)
	return out
}

// SlogLevel maps LogLevel onto slog levels; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
