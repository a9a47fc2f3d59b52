package goblins

import (
	"testing"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

func TestAutopilotAimsAtNearestGoblin(t *testing.T) {
	s, _ := newQuietSim()
	tu := s.Tuning()
	p := s.Session().Player
	far := s.world.addEnemy(p.Pos.Add(core.Vec2{X: 600}), 0, 80, tu)
	near := s.world.addEnemy(p.Pos.Add(core.Vec2{Y: 400}), 0, 80, tu)

	a := &Autopilot{}
	ctrl := a.Drive(s)

	if ctrl.Pointer != near.Pos {
		t.Errorf("pointer = %+v, want nearest goblin %+v (not %+v)", ctrl.Pointer, near.Pos, far.Pos)
	}
	if ctrl.Up || ctrl.Down || ctrl.Left || ctrl.Right {
		t.Error("goblins outside the chase radius should not make the wizard move")
	}
}

func TestAutopilotBacksAway(t *testing.T) {
	s, _ := newQuietSim()
	p := s.Session().Player
	s.world.addEnemy(p.Pos.Add(core.Vec2{X: 50, Y: 50}), 0, 80, s.Tuning())

	ctrl := (&Autopilot{}).Drive(s)

	if !ctrl.Left || !ctrl.Up || ctrl.Right || ctrl.Down {
		t.Errorf("controls = %+v, want up and left away from the goblin", ctrl)
	}
}

func TestAutopilotFireCadence(t *testing.T) {
	tests := []struct {
		name      string
		fireEvery int
		ticks     int
		want      int
	}{
		{"every third tick", 3, 6, 2},
		{"every tick", 1, 5, 5},
		{"never", 0, 6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No goblins on the field: the cadence must not depend on a target
			s, _ := newQuietSim()
			a := &Autopilot{FireEvery: tt.fireEvery}

			for range tt.ticks {
				s.Tick(0, a.Drive(s))
			}

			if got := len(s.World().Projectiles); got != tt.want {
				t.Errorf("projectiles = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAutopilotFiresWithTarget(t *testing.T) {
	s, _ := newQuietSim()
	p := s.Session().Player
	s.world.addEnemy(p.Pos.Add(core.Vec2{X: 600}), 0, 80, s.Tuning())
	a := &Autopilot{FireEvery: 2}

	for range 4 {
		s.Tick(0, a.Drive(s))
	}

	if got := len(s.World().Projectiles); got != 2 {
		t.Errorf("projectiles = %d, want 2", got)
	}
}

func TestAutopilotRestarts(t *testing.T) {
	tests := []struct {
		name    string
		restart bool
		wantRun int
	}{
		{"restart", true, 1},
		{"stay", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newQuietSim()
			s.session.Player = nil
			a := &Autopilot{Restart: tt.restart}

			s.Tick(0, a.Drive(s))

			if s.Session().Run != tt.wantRun {
				t.Errorf("run = %d, want %d", s.Session().Run, tt.wantRun)
			}
		})
	}
}
