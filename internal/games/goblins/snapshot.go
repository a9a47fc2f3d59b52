package goblins

// EnemySnapshot captures one goblin.
type EnemySnapshot struct {
	ID     uint32  `yaml:"id"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Angle  float64 `yaml:"angle"`
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"`
}

// Snapshot captures the complete simulation state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64          `yaml:"tick"`
	Run         int             `yaml:"run"`
	State       string          `yaml:"state"`
	Score       int             `yaml:"score"`
	EnemySpeed  float64         `yaml:"enemy_speed"`
	Hits        int             `yaml:"hits"`
	Kills       int             `yaml:"kills"`
	PlayerAlive bool            `yaml:"player_alive"`
	PlayerX     float64         `yaml:"player_x"`
	PlayerY     float64         `yaml:"player_y"`
	PlayerAngle float64         `yaml:"player_angle"`
	Projectiles int             `yaml:"projectiles"`
	Effects     int             `yaml:"effects"`
	Enemies     []EnemySnapshot `yaml:"enemies"`
}

// Snapshot returns the current simulation snapshot.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        s.tick,
		Run:         s.session.Run,
		State:       s.session.State().String(),
		Score:       s.session.Score,
		EnemySpeed:  s.session.EnemySpeed,
		Hits:        s.session.Hits,
		Kills:       s.session.Kills,
		Projectiles: len(s.world.Projectiles),
		Effects:     len(s.world.Effects),
		Enemies:     make([]EnemySnapshot, 0, len(s.world.Enemies)),
	}
	if p := s.session.Player; p != nil {
		snap.PlayerAlive = true
		snap.PlayerX = p.Pos.X
		snap.PlayerY = p.Pos.Y
		snap.PlayerAngle = p.Angle
	}
	for _, e := range s.world.Enemies {
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			ID:     e.ID,
			X:      e.Pos.X,
			Y:      e.Pos.Y,
			Angle:  e.Angle,
			Health: e.Health,
			Speed:  e.Speed,
		})
	}
	return snap
}
