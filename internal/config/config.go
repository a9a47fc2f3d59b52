// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"fmt"
	"time"
)

// GoblinsConfig contains all configuration for Goblin Siege.
type GoblinsConfig struct {
	Layout     GoblinsLayout     `yaml:"layout"`
	Player     GoblinsPlayer     `yaml:"player"`
	Enemy      GoblinsEnemy      `yaml:"enemy"`
	Projectile GoblinsProjectile `yaml:"projectile"`
	Effect     GoblinsEffect     `yaml:"effect"`
	Spawner    GoblinsSpawner    `yaml:"spawner"`
	View       GoblinsView       `yaml:"view"`
}

// GoblinsLayout defines the playable area in world units.
type GoblinsLayout struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnMargin float64 `yaml:"spawn_margin"`
}

// GoblinsPlayer defines the wizard.
type GoblinsPlayer struct {
	Speed        float64 `yaml:"speed"`
	Radius       float64 `yaml:"radius"`
	MuzzleOffset float64 `yaml:"muzzle_offset"`
}

// GoblinsEnemy defines goblin behavior and the difficulty ramp.
type GoblinsEnemy struct {
	BaseSpeed       float64 `yaml:"base_speed"`
	Health          int     `yaml:"health"`
	Radius          float64 `yaml:"radius"`
	ChaseRadius     float64 `yaml:"chase_radius"`
	TurnRateDegrees float64 `yaml:"turn_rate_degrees"`
	SpeedRamp       float64 `yaml:"speed_ramp"`
	InitialCount    int     `yaml:"initial_count"`
	SafeRadius      float64 `yaml:"safe_radius"`
}

// GoblinsProjectile defines spells.
type GoblinsProjectile struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

// GoblinsEffect defines spark flashes.
type GoblinsEffect struct {
	DecayRate float64 `yaml:"decay_rate"`
}

// GoblinsSpawner defines the wall-clock spawn timer.
type GoblinsSpawner struct {
	Interval time.Duration `yaml:"interval"`
}

// GoblinsView defines how world units map to terminal cells.
type GoblinsView struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// Validate reports the first setting that would make the game unplayable.
func (c GoblinsConfig) Validate() error {
	switch {
	case c.Layout.Width <= 0 || c.Layout.Height <= 0:
		return fmt.Errorf("config: layout must be positive, got %gx%g", c.Layout.Width, c.Layout.Height)
	case c.Spawner.Interval <= 0:
		return fmt.Errorf("config: spawner interval must be positive, got %s", c.Spawner.Interval)
	case c.Enemy.Health <= 0:
		return fmt.Errorf("config: enemy health must be positive, got %d", c.Enemy.Health)
	case c.Enemy.SpeedRamp < 0:
		return fmt.Errorf("config: enemy speed ramp must not be negative, got %g", c.Enemy.SpeedRamp)
	case c.View.CellWidth <= 0 || c.View.CellHeight <= 0:
		return fmt.Errorf("config: view cell size must be positive, got %gx%g", c.View.CellWidth, c.View.CellHeight)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. Empty means normal.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
