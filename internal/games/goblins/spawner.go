package goblins

import (
	"time"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

// spawnEnemy creates a goblin just past the right edge at a random height. It
// starts facing right; leaving the layout turns it towards the wizard.
func (s *Sim) spawnEnemy() *Enemy {
	w, h := s.host.Layout()
	pos := core.Vec2{X: w + s.tuning.SpawnMargin, Y: s.host.Random() * h}
	return s.world.addEnemy(pos, 0, s.session.EnemySpeed, s.tuning)
}

// seedWave places the session's opening goblins inside the layout, away from
// the wizard, each facing a random direction.
func (s *Sim) seedWave() {
	w, h := s.host.Layout()
	for range s.tuning.InitialEnemies {
		var pos core.Vec2
		for attempt := 0; attempt < 16; attempt++ {
			pos = core.Vec2{X: s.host.Random() * w, Y: s.host.Random() * h}
			if s.clearOfPlayer(pos) {
				break
			}
		}
		s.world.addEnemy(pos, s.randomAngle(), s.session.EnemySpeed, s.tuning)
	}
}

func (s *Sim) clearOfPlayer(pos core.Vec2) bool {
	p := s.session.Player
	if p == nil {
		return true
	}
	return core.DistanceTo(pos.X, pos.Y, p.Pos.X, p.Pos.Y) >= s.tuning.SafeRadius
}

// SpawnClock turns wall-clock time into spawn timer expiries for hosts that
// poll instead of scheduling callbacks.
type SpawnClock struct {
	interval time.Duration
	next     time.Time
}

// NewSpawnClock creates a clock whose first expiry is one interval after start.
func NewSpawnClock(interval time.Duration, start time.Time) *SpawnClock {
	return &SpawnClock{interval: interval, next: start.Add(interval)}
}

// Due returns how many expiries have passed by now and consumes them.
func (c *SpawnClock) Due(now time.Time) int {
	if c.interval <= 0 {
		return 0
	}
	n := 0
	for !now.Before(c.next) {
		n++
		c.next = c.next.Add(c.interval)
	}
	return n
}

// Reset restarts the cadence from now.
func (c *SpawnClock) Reset(now time.Time) {
	c.next = now.Add(c.interval)
}
