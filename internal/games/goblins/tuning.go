package goblins

import (
	"time"

	"github.com/vovakirdan/goblin-arcade/internal/config"
)

// Tuning holds every gameplay constant of a session. Values are in world
// units, seconds and degrees.
type Tuning struct {
	SpawnMargin float64 // distance beyond the right edge new enemies appear at

	PlayerSpeed  float64 // per active axis, per second
	PlayerRadius float64
	MuzzleOffset float64 // spells leave the wizard's hand this far ahead

	EnemyBaseSpeed  float64
	EnemyHealth     int
	EnemyRadius     float64
	ChaseRadius     float64
	TurnRateDegrees float64 // per tick, not per second
	SpeedRamp       float64 // added to the session enemy speed on every hit
	InitialEnemies  int
	SafeRadius      float64 // keep the initial wave this far from the wizard

	ProjectileSpeed  float64
	ProjectileRadius float64

	EffectDecay float64 // opacity lost per second

	SpawnInterval time.Duration
}

// DefaultTuning returns the stock gameplay values.
func DefaultTuning() Tuning {
	return Tuning{
		SpawnMargin:      100,
		PlayerSpeed:      200,
		PlayerRadius:     24,
		MuzzleOffset:     28,
		EnemyBaseSpeed:   80,
		EnemyHealth:      5,
		EnemyRadius:      28,
		ChaseRadius:      200,
		TurnRateDegrees:  1,
		SpeedRamp:        1,
		InitialEnemies:   3,
		SafeRadius:       350,
		ProjectileSpeed:  600,
		ProjectileRadius: 6,
		EffectDecay:      2.0,
		SpawnInterval:    3 * time.Second,
	}
}

// TuningFromConfig maps a loaded config onto gameplay constants.
func TuningFromConfig(cfg config.GoblinsConfig) Tuning {
	return Tuning{
		SpawnMargin:      cfg.Layout.SpawnMargin,
		PlayerSpeed:      cfg.Player.Speed,
		PlayerRadius:     cfg.Player.Radius,
		MuzzleOffset:     cfg.Player.MuzzleOffset,
		EnemyBaseSpeed:   cfg.Enemy.BaseSpeed,
		EnemyHealth:      cfg.Enemy.Health,
		EnemyRadius:      cfg.Enemy.Radius,
		ChaseRadius:      cfg.Enemy.ChaseRadius,
		TurnRateDegrees:  cfg.Enemy.TurnRateDegrees,
		SpeedRamp:        cfg.Enemy.SpeedRamp,
		InitialEnemies:   cfg.Enemy.InitialCount,
		SafeRadius:       cfg.Enemy.SafeRadius,
		ProjectileSpeed:  cfg.Projectile.Speed,
		ProjectileRadius: cfg.Projectile.Radius,
		EffectDecay:      cfg.Effect.DecayRate,
		SpawnInterval:    cfg.Spawner.Interval,
	}
}
