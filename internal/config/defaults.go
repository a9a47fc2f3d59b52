package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/goblins.yaml
var defaultGoblinsYAML []byte

// DefaultGoblinsConfig returns the default Goblin Siege configuration.
func DefaultGoblinsConfig() GoblinsConfig {
	return GoblinsConfig{
		Layout: GoblinsLayout{
			Width:       1400,
			Height:      1024,
			SpawnMargin: 100,
		},
		Player: GoblinsPlayer{
			Speed:        200,
			Radius:       24,
			MuzzleOffset: 28,
		},
		Enemy: GoblinsEnemy{
			BaseSpeed:       80,
			Health:          5,
			Radius:          28,
			ChaseRadius:     200,
			TurnRateDegrees: 1,
			SpeedRamp:       1,
			InitialCount:    3,
			SafeRadius:      350,
		},
		Projectile: GoblinsProjectile{
			Speed:  600,
			Radius: 6,
		},
		Effect: GoblinsEffect{
			DecayRate: 2.0,
		},
		Spawner: GoblinsSpawner{
			Interval: 3 * time.Second,
		},
		View: GoblinsView{
			CellWidth:  16,
			CellHeight: 32,
		},
	}
}

// DefaultGoblinsYAML returns the embedded default config file.
func DefaultGoblinsYAML() []byte {
	return defaultGoblinsYAML
}
