package goblins

import "github.com/vovakirdan/goblin-arcade/internal/core"

// resolveProjectile processes at most one hit for a spell: the first live
// goblin it overlaps takes the damage and nothing else does.
func (s *Sim) resolveProjectile(p *Projectile) {
	for _, e := range s.world.Enemies {
		if e.dead {
			continue
		}
		if !s.host.Overlap(p, e) {
			continue
		}

		s.world.addEffect(p.Pos, s.randomAngle())
		p.dead = true
		s.session.EnemySpeed += s.tuning.SpeedRamp
		s.session.Hits++

		e.Health--
		if e.Health <= 0 {
			s.destroyEnemy(e)
		}
		return
	}
}

// destroyEnemy removes a goblin with a spark flash and scores its speed.
func (s *Sim) destroyEnemy(e *Enemy) {
	s.world.addEffect(e.Pos, s.randomAngle())
	s.session.Score += int(e.Speed)
	s.session.Kills++
	e.dead = true
}

// checkPlayerContact ends the run when a goblin touches the wizard. The goblin
// is left as it is.
func (s *Sim) checkPlayerContact(e *Enemy) {
	p := s.session.Player
	if p == nil {
		return
	}
	if !s.host.Overlap(p, e) {
		return
	}
	s.session.Player = nil
	s.session.GameOverVisible = true
	s.host.SetGameOverVisible(true)
}

// randomAngle returns a display angle uniformly distributed in [0°, 360°).
func (s *Sim) randomAngle() float64 {
	return core.ToRadians(s.host.Random() * 360)
}
