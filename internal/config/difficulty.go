package config

import "time"

// ApplyGoblinsPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyGoblinsPreset(cfg *GoblinsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.BaseSpeed *= 0.75
		cfg.Enemy.InitialCount = max(0, cfg.Enemy.InitialCount-1)
		cfg.Spawner.Interval = scaleDuration(cfg.Spawner.Interval, 4.0/3.0)
	case DifficultyHard:
		cfg.Enemy.BaseSpeed *= 1.4
		cfg.Enemy.InitialCount += 2
		cfg.Spawner.Interval = scaleDuration(cfg.Spawner.Interval, 2.0/3.0)
	case DifficultyFixed:
		cfg.Enemy.SpeedRamp = 0
	}
}

func scaleDuration(d time.Duration, f float64) time.Duration {
	scaled := time.Duration(float64(d) * f)
	if scaled < 100*time.Millisecond {
		return 100 * time.Millisecond
	}
	return scaled
}
