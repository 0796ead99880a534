// Package config defines the tunable constants of the simulation and
// their JSON persistence.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// GameConfig contains the full configuration for a game session.
type GameConfig struct {
	Field  FieldConfig  `json:"field"`
	Craft  CraftConfig  `json:"craft"`
	Spawn  SpawnConfig  `json:"spawn"`
	Rules  RulesConfig  `json:"rules"`
	Window WindowConfig `json:"window"`
}

// FieldConfig is the axis-aligned play-field rectangle. Spawned objects
// enter from its edges.
type FieldConfig struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// CraftConfig contains the player craft tunables.
type CraftConfig struct {
	InitialFuel     float64 `json:"initialFuel"`
	LinearAccel     float64 `json:"linearAccel"`
	AngularAccel    float64 `json:"angularAccel"`
	BurnPerThruster float64 `json:"burnPerThruster"`
}

// SpawnConfig contains the field-object spawn cadence and entry speed.
type SpawnConfig struct {
	AsteroidInterval uint64  `json:"asteroidInterval"`
	JunkInterval     uint64  `json:"junkInterval"`
	Speed            float64 `json:"speed"`
}

// RulesConfig contains the interaction thresholds and rewards.
type RulesConfig struct {
	CaptureDistance   float64 `json:"captureDistance"`
	CollisionDistance float64 `json:"collisionDistance"`
	FuelPerAsteroid   float64 `json:"fuelPerAsteroid"`
}

// WindowConfig contains presentation-layer settings; the simulation core
// never reads these.
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.applyEnvOverrides()

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the stock game configuration.
func DefaultConfig() *GameConfig {
	cfg := &GameConfig{
		Field: FieldConfig{
			MinX: -0.85,
			MinY: -0.5,
			MaxX: 0.85,
			MaxY: 0.5,
		},
		Craft: CraftConfig{
			InitialFuel:     0.6,
			LinearAccel:     0.2,
			AngularAccel:    0.03,
			BurnPerThruster: 0.0005,
		},
		Spawn: SpawnConfig{
			AsteroidInterval: 800,
			JunkInterval:     400,
			Speed:            0.1,
		},
		Rules: RulesConfig{
			CaptureDistance:   0.07,
			CollisionDistance: 0.1,
			FuelPerAsteroid:   0.03,
		},
		Window: WindowConfig{
			Width:  1024,
			Height: 600,
			Title:  "Salvage",
		},
	}
	cfg.applyEnvOverrides()
	return cfg
}

// applyEnvOverrides lets deployment tweak presentation settings without
// editing the config file.
func (c *GameConfig) applyEnvOverrides() {
	if v := os.Getenv("SALVAGE_WINDOW_WIDTH"); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w > 0 {
			c.Window.Width = w
		}
	}
	if v := os.Getenv("SALVAGE_WINDOW_HEIGHT"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			c.Window.Height = h
		}
	}
}
