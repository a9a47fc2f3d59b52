package goblins

import "github.com/vovakirdan/goblin-arcade/internal/core"

// Autopilot plays a session without a human: it aims at the nearest goblin,
// backs away from goblins that get close and fires on a fixed cadence.
// Headless runs use it to exercise long sessions deterministically.
type Autopilot struct {
	FireEvery int // ticks between spells; 0 never fires
	Restart   bool

	ticks int
}

// Drive posts this tick's presses to the sim and returns the controls to pass
// to Tick.
func (a *Autopilot) Drive(s *Sim) Controls {
	a.ticks++

	p := s.Session().Player
	if p == nil {
		if a.Restart {
			s.KeyDown(core.KeySpace)
		}
		return Controls{}
	}

	if a.FireEvery > 0 && a.ticks%a.FireEvery == 0 {
		s.PointerDown(core.ButtonPrimary)
	}

	target := nearestEnemy(s.World().Enemies, p.Pos)
	if target == nil {
		return Controls{Pointer: p.Pos.Add(core.Vec2{X: 1})}
	}

	ctrl := Controls{Pointer: target.Pos}
	if core.DistanceTo(p.Pos.X, p.Pos.Y, target.Pos.X, target.Pos.Y) < s.Tuning().ChaseRadius {
		away := p.Pos.Sub(target.Pos)
		ctrl.Right = away.X > 0
		ctrl.Left = away.X < 0
		ctrl.Down = away.Y > 0
		ctrl.Up = away.Y < 0
	}
	return ctrl
}

func nearestEnemy(enemies []*Enemy, from core.Vec2) *Enemy {
	var best *Enemy
	bestDist := 0.0
	for _, e := range enemies {
		d := core.DistanceTo(from.X, from.Y, e.Pos.X, e.Pos.Y)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
