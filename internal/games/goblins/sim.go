// Package goblins implements Goblin Siege: a wizard holds off an endless
// stream of goblins with spells. Sim is the pure simulation; Game adapts it
// to the arcade platform.
package goblins

import (
	"fmt"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

// Sim runs the per-frame simulation. All methods must be called from one
// goroutine except PointerDown, KeyDown and SpawnTimer, which only post to the
// inbox.
type Sim struct {
	host    Host
	tuning  Tuning
	session Session
	world   World
	inbox   *Inbox
	tick    uint64
}

// NewSim creates a simulation and starts the first session.
func NewSim(host Host, tuning Tuning) *Sim {
	s := &Sim{
		host:   host,
		tuning: tuning,
		inbox:  NewInbox(),
	}
	s.begin()
	return s
}

// begin sets up a fresh session: one wizard in the middle of the layout, the
// opening wave and a hidden game over display.
func (s *Sim) begin() {
	w, h := s.host.Layout()

	s.world.removeAll()
	s.session.Score = 0
	s.session.EnemySpeed = s.tuning.EnemyBaseSpeed
	s.session.Hits = 0
	s.session.Kills = 0
	s.session.Elapsed = 0
	s.session.Player = &Player{
		ID:     s.world.id(),
		Pos:    core.Vec2{X: w / 2, Y: h / 2},
		Radius: s.tuning.PlayerRadius,
	}
	s.session.GameOverVisible = false
	s.host.SetGameOverVisible(false)
	s.host.ScrollTo(w/2, h/2)

	s.seedWave()
}

// PointerDown requests a spell. Only the primary button fires, and only while
// the wizard is alive when the request is applied.
func (s *Sim) PointerDown(button int) {
	if button != core.ButtonPrimary {
		return
	}
	s.inbox.Post(fireMsg{button: button})
}

// KeyDown delivers a key press. Space restarts a finished run.
func (s *Sim) KeyDown(key string) {
	s.inbox.Post(keyMsg{key: key})
}

// SpawnTimer delivers one expiry of the wall-clock spawn timer.
func (s *Sim) SpawnTimer() {
	s.inbox.Post(spawnMsg{})
}

// Tick advances the simulation by dt seconds. Pending events are applied
// first, then the wizard, goblins, spells and flashes update in that order.
func (s *Sim) Tick(dt float64, ctrl Controls) {
	if dt < 0 {
		dt = 0
	}
	s.tick++

	s.inbox.drain(s.apply)

	s.movePlayer(ctrl, dt)

	for _, e := range s.world.Enemies {
		s.moveEnemy(e, dt)
		s.checkPlayerContact(e)
	}

	w, h := s.host.Layout()
	for _, p := range s.world.Projectiles {
		s.moveProjectile(p, dt)
		s.resolveProjectile(p)
		if !p.dead && core.OutsideBounds(p.Pos.X, p.Pos.Y, w, h) {
			p.dead = true
		}
	}

	for _, e := range s.world.Effects {
		s.fadeEffect(e, dt)
	}

	s.world.compact()

	if s.session.Player != nil {
		s.session.Elapsed += dt
	}
	s.host.SetStatus(fmt.Sprintf("Score: %d", s.session.Score))
}

func (s *Sim) apply(msg any) {
	switch m := msg.(type) {
	case fireMsg:
		s.fire()
	case keyMsg:
		if m.key == core.KeySpace && s.session.Player == nil {
			s.restart()
		}
	case spawnMsg:
		s.spawnEnemy()
	}
}

// fire launches a spell from the wizard's hand along the facing angle.
func (s *Sim) fire() {
	p := s.session.Player
	if p == nil {
		return
	}
	muzzle := p.Pos.Add(core.FromAngle(p.Angle, s.tuning.MuzzleOffset))
	s.world.addProjectile(muzzle, p.Angle, s.tuning)
}

func (s *Sim) restart() {
	s.session.Run++
	s.begin()
}

// Session returns the current session state. The pointer stays valid for the
// lifetime of the Sim; callers must not mutate it.
func (s *Sim) Session() *Session {
	return &s.session
}

// World returns the live entity collections. Callers must not mutate them.
func (s *Sim) World() *World {
	return &s.world
}

// Tuning returns the gameplay constants in use.
func (s *Sim) Tuning() Tuning {
	return s.tuning
}

// Ticks returns the number of ticks run so far.
func (s *Sim) Ticks() uint64 {
	return s.tick
}

// Pending returns the number of events waiting for the next tick.
func (s *Sim) Pending() int {
	return s.inbox.Len()
}
