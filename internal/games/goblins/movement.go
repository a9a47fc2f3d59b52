package goblins

import "github.com/vovakirdan/goblin-arcade/internal/core"

// Controls is the per-tick device state the host samples for the wizard.
type Controls struct {
	Up, Down, Left, Right bool
	Pointer               core.Vec2 // in layout coordinates
}

// movePlayer applies axis movement, bounds the wizard to the layout, recentres
// the view and turns the wizard towards the pointer. Axes add up, so diagonal
// movement is faster than straight movement.
func (s *Sim) movePlayer(ctrl Controls, dt float64) {
	p := s.session.Player
	if p == nil {
		return
	}

	step := s.tuning.PlayerSpeed * dt
	if ctrl.Right {
		p.Pos.X += step
	}
	if ctrl.Left {
		p.Pos.X -= step
	}
	if ctrl.Down {
		p.Pos.Y += step
	}
	if ctrl.Up {
		p.Pos.Y -= step
	}

	w, h := s.host.Layout()
	p.Pos.X = core.ClampF(p.Pos.X, 0, w)
	p.Pos.Y = core.ClampF(p.Pos.Y, 0, h)

	s.host.ScrollTo(p.Pos.X, p.Pos.Y)

	p.Angle = core.AngleTo(p.Pos.X, p.Pos.Y, ctrl.Pointer.X, ctrl.Pointer.Y)
}

// moveEnemy advances a goblin and steers it while the wizard is alive:
// stray goblins are pointed back at the wizard, near ones turn towards it by
// a fixed amount per tick.
func (s *Sim) moveEnemy(e *Enemy, dt float64) {
	e.Pos = e.Pos.Add(core.FromAngle(e.Angle, e.Speed*dt))

	p := s.session.Player
	if p == nil {
		return
	}

	w, h := s.host.Layout()
	if core.OutsideBounds(e.Pos.X, e.Pos.Y, w, h) {
		e.Angle = core.AngleTo(e.Pos.X, e.Pos.Y, p.Pos.X, p.Pos.Y)
	}

	if core.DistanceTo(e.Pos.X, e.Pos.Y, p.Pos.X, p.Pos.Y) < s.tuning.ChaseRadius {
		toPlayer := core.AngleTo(e.Pos.X, e.Pos.Y, p.Pos.X, p.Pos.Y)
		e.Angle = core.AngleRotate(e.Angle, toPlayer, core.ToRadians(s.tuning.TurnRateDegrees))
	}
}

func (s *Sim) moveProjectile(p *Projectile, dt float64) {
	p.Pos = p.Pos.Add(core.FromAngle(p.Angle, p.Speed*dt))
}

func (s *Sim) fadeEffect(e *Effect, dt float64) {
	e.Opacity -= s.tuning.EffectDecay * dt
	if e.Opacity <= 0 {
		e.Opacity = 0
		e.dead = true
	}
}
