package goblins

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestNewSimStartsRunning(t *testing.T) {
	h := newScriptedHost()
	s := NewSim(h, DefaultTuning())

	p := s.Session().Player
	if p == nil {
		t.Fatal("new session should have a wizard")
	}
	if p.Pos != (core.Vec2{X: 700, Y: 512}) {
		t.Errorf("wizard should start at layout centre, got %+v", p.Pos)
	}
	if s.Session().State() != StateRunning {
		t.Errorf("state = %v, want running", s.Session().State())
	}
	if got := len(s.World().Enemies); got != 3 {
		t.Errorf("opening wave = %d goblins, want 3", got)
	}
	for _, e := range s.World().Enemies {
		d := core.DistanceTo(e.Pos.X, e.Pos.Y, p.Pos.X, p.Pos.Y)
		if d < s.Tuning().SafeRadius {
			t.Errorf("goblin %d starts %.0f from the wizard, want >= %.0f", e.ID, d, s.Tuning().SafeRadius)
		}
		if e.Speed != s.Tuning().EnemyBaseSpeed {
			t.Errorf("opening goblin speed = %v, want base", e.Speed)
		}
	}
	if h.gameOver {
		t.Error("game over display should start hidden")
	}
}

func TestMovePlayer(t *testing.T) {
	tests := []struct {
		name  string
		start core.Vec2
		ctrl  Controls
		want  core.Vec2
	}{
		{"right only", core.Vec2{X: 100, Y: 100}, Controls{Right: true}, core.Vec2{X: 120, Y: 100}},
		{"up only", core.Vec2{X: 100, Y: 100}, Controls{Up: true}, core.Vec2{X: 100, Y: 80}},
		{"diagonal adds both axes", core.Vec2{X: 100, Y: 100}, Controls{Down: true, Left: true}, core.Vec2{X: 80, Y: 120}},
		{"opposite axes cancel", core.Vec2{X: 100, Y: 100}, Controls{Left: true, Right: true}, core.Vec2{X: 100, Y: 100}},
		{"clamped left", core.Vec2{X: 5, Y: 100}, Controls{Left: true}, core.Vec2{X: 0, Y: 100}},
		{"clamped bottom right", core.Vec2{X: 1395, Y: 1020}, Controls{Right: true, Down: true}, core.Vec2{X: 1400, Y: 1024}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, h := newQuietSim()
			s.Session().Player.Pos = tt.start
			s.Tick(0.1, tt.ctrl)

			got := s.Session().Player.Pos
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) {
				t.Errorf("position = %+v, want %+v", got, tt.want)
			}
			last := h.scrolls[len(h.scrolls)-1]
			if last != got {
				t.Errorf("view should follow the wizard, scrolled to %+v", last)
			}
		})
	}
}

func TestPlayerFacesPointer(t *testing.T) {
	s, _ := newQuietSim()
	p := s.Session().Player
	s.Tick(0, Controls{Pointer: core.Vec2{X: p.Pos.X, Y: p.Pos.Y + 50}})

	if !approx(p.Angle, math.Pi/2) {
		t.Errorf("angle = %v, want pi/2", p.Angle)
	}
}

func TestFireLaunchesOneSpell(t *testing.T) {
	s, _ := newQuietSim()
	p := s.Session().Player
	aim := Controls{Pointer: core.Vec2{X: p.Pos.X, Y: p.Pos.Y - 100}}
	s.Tick(0, aim)

	goblin := s.world.addEnemy(core.Vec2{X: 100, Y: 100}, 0.5, 80, s.Tuning())
	spark := s.world.addEffect(core.Vec2{X: 1200, Y: 900}, 0.25)
	goblinBefore, sparkBefore := *goblin, *spark
	speedBefore, scoreBefore := s.Session().EnemySpeed, s.Session().Score

	s.PointerDown(core.ButtonPrimary)
	s.Tick(0, aim)

	if got := len(s.World().Projectiles); got != 1 {
		t.Fatalf("projectiles = %d, want 1", got)
	}
	if *goblin != goblinBefore {
		t.Errorf("goblin changed by firing: %+v, was %+v", *goblin, goblinBefore)
	}
	if *spark != sparkBefore {
		t.Errorf("effect changed by firing: %+v, was %+v", *spark, sparkBefore)
	}
	if len(s.World().Enemies) != 1 || len(s.World().Effects) != 1 {
		t.Errorf("enemies = %d effects = %d, want 1 and 1", len(s.World().Enemies), len(s.World().Effects))
	}
	if s.Session().EnemySpeed != speedBefore || s.Session().Score != scoreBefore {
		t.Error("firing should not touch session speed or score")
	}
	proj := s.World().Projectiles[0]
	if !approx(proj.Angle, -math.Pi/2) {
		t.Errorf("spell angle = %v, want %v", proj.Angle, -math.Pi/2)
	}
	want := core.Vec2{X: p.Pos.X, Y: p.Pos.Y - s.Tuning().MuzzleOffset}
	if !approx(proj.Pos.X, want.X) || !approx(proj.Pos.Y, want.Y) {
		t.Errorf("spell starts at %+v, want muzzle %+v", proj.Pos, want)
	}
}

func TestNonPrimaryButtonDoesNotFire(t *testing.T) {
	s, _ := newQuietSim()
	s.PointerDown(core.ButtonSecondary)
	s.PointerDown(core.ButtonMiddle)
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
	s.Tick(0, Controls{})
	if len(s.World().Projectiles) != 0 {
		t.Error("only the primary button should fire")
	}
}

func TestEventsWaitForTick(t *testing.T) {
	s, _ := newQuietSim()
	s.PointerDown(core.ButtonPrimary)
	s.SpawnTimer()

	if len(s.World().Projectiles) != 0 || len(s.World().Enemies) != 0 {
		t.Fatal("events must not apply before the next tick")
	}
	if s.Pending() != 2 {
		t.Errorf("pending = %d, want 2", s.Pending())
	}

	s.Tick(0, Controls{})
	if s.Pending() != 0 {
		t.Errorf("pending after tick = %d, want 0", s.Pending())
	}
	if len(s.World().Projectiles) != 1 || len(s.World().Enemies) != 1 {
		t.Errorf("got %d spells and %d goblins, want 1 and 1",
			len(s.World().Projectiles), len(s.World().Enemies))
	}
}

func TestSpellHitsOnlyOneGoblin(t *testing.T) {
	s, _ := newQuietSim()
	tu := s.Tuning()
	spot := core.Vec2{X: 100, Y: 100}
	first := s.world.addEnemy(spot, 0, 80, tu)
	second := s.world.addEnemy(spot, 0, 80, tu)
	s.world.addProjectile(spot, 0, tu)

	s.Tick(0, Controls{})

	if first.Health != tu.EnemyHealth-1 {
		t.Errorf("first goblin health = %d, want %d", first.Health, tu.EnemyHealth-1)
	}
	if second.Health != tu.EnemyHealth {
		t.Errorf("second goblin health = %d, want untouched %d", second.Health, tu.EnemyHealth)
	}
	if len(s.World().Projectiles) != 0 {
		t.Error("spell should be consumed by the hit")
	}
	if len(s.World().Effects) != 1 {
		t.Errorf("effects = %d, want 1", len(s.World().Effects))
	}
	if got := s.Session().EnemySpeed; got != tu.EnemyBaseSpeed+tu.SpeedRamp {
		t.Errorf("enemy speed = %v, want %v", got, tu.EnemyBaseSpeed+tu.SpeedRamp)
	}
	if s.Session().Hits != 1 || s.Session().Score != 0 {
		t.Errorf("hits = %d score = %d, want 1 and 0", s.Session().Hits, s.Session().Score)
	}
}

func TestKillingBlowScoresSpeed(t *testing.T) {
	s, h := newQuietSim()
	tu := s.Tuning()
	e := s.world.addEnemy(core.Vec2{X: 100, Y: 100}, 0, 83.7, tu)
	e.Health = 1
	s.world.addProjectile(e.Pos, 0, tu)

	s.Tick(0, Controls{})

	if len(s.World().Enemies) != 0 {
		t.Fatal("goblin should be removed")
	}
	if s.Session().Score != 83 {
		t.Errorf("score = %d, want 83", s.Session().Score)
	}
	if len(s.World().Effects) != 2 {
		t.Errorf("effects = %d, want hit and death flashes", len(s.World().Effects))
	}
	if s.Session().Kills != 1 {
		t.Errorf("kills = %d, want 1", s.Session().Kills)
	}
	if h.status != "Score: 83" {
		t.Errorf("status = %q", h.status)
	}
}

func TestDeadGoblinIsNotHitAgain(t *testing.T) {
	s, _ := newQuietSim()
	tu := s.Tuning()
	e := s.world.addEnemy(core.Vec2{X: 100, Y: 100}, 0, 80, tu)
	e.Health = 1
	s.world.addProjectile(e.Pos, 0, tu)
	s.world.addProjectile(e.Pos, 0, tu)

	s.Tick(0, Controls{})

	if len(s.World().Projectiles) != 1 {
		t.Errorf("second spell should survive, got %d spells", len(s.World().Projectiles))
	}
	if s.Session().Hits != 1 || s.Session().Score != 80 {
		t.Errorf("hits = %d score = %d, want 1 and 80", s.Session().Hits, s.Session().Score)
	}
}

func TestSpellLeavingLayoutIsRemoved(t *testing.T) {
	s, _ := newQuietSim()
	s.world.addProjectile(core.Vec2{X: 1395, Y: 500}, 0, s.Tuning())

	s.Tick(0.001, Controls{})
	if len(s.World().Projectiles) != 1 {
		t.Fatal("spell still inside the layout should stay")
	}
	s.Tick(0.1, Controls{})
	if len(s.World().Projectiles) != 0 {
		t.Error("spell outside the layout should be removed")
	}
}

func TestContactEndsRun(t *testing.T) {
	s, h := newQuietSim()
	p := s.Session().Player
	e := s.world.addEnemy(p.Pos, 1.0, 80, s.Tuning())

	s.Tick(0, Controls{})

	if s.Session().Player != nil {
		t.Fatal("wizard should be gone")
	}
	if s.Session().State() != StateGameOver {
		t.Errorf("state = %v, want game_over", s.Session().State())
	}
	if !h.gameOver || !s.Session().GameOverVisible {
		t.Error("game over display should be shown")
	}
	if len(s.World().Enemies) != 1 || !e.Alive() {
		t.Error("the goblin is unaffected by the contact")
	}

	// Without a wizard, goblins drift and nothing fires.
	angle := e.Angle
	s.PointerDown(core.ButtonPrimary)
	s.Tick(0.5, Controls{Right: true})
	if e.Angle != angle {
		t.Error("goblins should not steer after game over")
	}
	if len(s.World().Projectiles) != 0 {
		t.Error("fire should be ignored after game over")
	}
}

func TestSpawningContinuesAfterGameOver(t *testing.T) {
	s, _ := newQuietSim()
	p := s.Session().Player
	s.world.addEnemy(p.Pos, 0, 80, s.Tuning())
	s.Tick(0, Controls{})
	if s.Session().State() != StateGameOver {
		t.Fatalf("state = %v, want game_over", s.Session().State())
	}

	before := len(s.World().Enemies)
	s.SpawnTimer()
	s.Tick(0, Controls{})

	if s.Session().State() != StateGameOver {
		t.Errorf("state = %v, spawning should not restart the run", s.Session().State())
	}
	enemies := s.World().Enemies
	if len(enemies) != before+1 {
		t.Fatalf("enemies = %d, want %d", len(enemies), before+1)
	}
	spawned := enemies[len(enemies)-1]
	if spawned.Pos.X != 1400+s.Tuning().SpawnMargin {
		t.Errorf("spawn x = %v, want past the right edge at %v", spawned.Pos.X, 1400+s.Tuning().SpawnMargin)
	}
	if spawned.Angle != 0 {
		t.Errorf("angle = %v, want 0 with no wizard to chase", spawned.Angle)
	}
}

func TestRestartOnSpace(t *testing.T) {
	h := newScriptedHost()
	s := NewSim(h, DefaultTuning())
	tu := s.Tuning()

	s.KeyDown(core.KeySpace)
	s.Tick(0, Controls{})
	if s.Session().Run != 0 {
		t.Fatal("space while running should not restart")
	}

	s.world.addProjectile(core.Vec2{X: 10, Y: 10}, 0, tu)
	s.session.Score = 400
	s.session.EnemySpeed = 95
	s.world.addEnemy(s.Session().Player.Pos, 0, 95, tu)
	s.Tick(0, Controls{})
	if s.Session().State() != StateGameOver {
		t.Fatal("setup should end the run")
	}

	s.KeyDown(core.KeySpace)
	s.Tick(0, Controls{})

	sess := s.Session()
	if sess.Player == nil || sess.State() != StateRunning {
		t.Fatal("space after game over should start a new session")
	}
	if sess.Run != 1 {
		t.Errorf("run = %d, want 1", sess.Run)
	}
	if sess.Score != 0 || sess.EnemySpeed != tu.EnemyBaseSpeed {
		t.Errorf("score = %d speed = %v, want 0 and base", sess.Score, sess.EnemySpeed)
	}
	if len(s.World().Enemies) != tu.InitialEnemies {
		t.Errorf("enemies = %d, want fresh wave of %d", len(s.World().Enemies), tu.InitialEnemies)
	}
	if len(s.World().Projectiles) != 0 || len(s.World().Effects) != 0 {
		t.Error("restart should clear spells and flashes")
	}
	if h.gameOver {
		t.Error("game over display should be hidden after restart")
	}
}

func TestOtherKeysDoNotRestart(t *testing.T) {
	s, _ := newQuietSim()
	s.world.addEnemy(s.Session().Player.Pos, 0, 80, s.Tuning())
	s.Tick(0, Controls{})

	s.KeyDown("enter")
	s.Tick(0, Controls{})
	if s.Session().Player != nil {
		t.Error("only space restarts")
	}
}

func TestSpawnTimerAddsGoblinPastRightEdge(t *testing.T) {
	s, _ := newQuietSim()
	s.session.EnemySpeed = 91
	s.SpawnTimer()
	s.Tick(0, Controls{})

	if len(s.World().Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(s.World().Enemies))
	}
	e := s.World().Enemies[0]
	if e.Pos.X != 1400+s.Tuning().SpawnMargin {
		t.Errorf("spawn x = %v, want %v", e.Pos.X, 1400+s.Tuning().SpawnMargin)
	}
	if !approx(e.Pos.Y, 0.1*1024) {
		t.Errorf("spawn y = %v, want %v", e.Pos.Y, 0.1*1024)
	}
	if e.Speed != 91 {
		t.Errorf("speed = %v, want current enemy speed 91", e.Speed)
	}
	if e.Health != s.Tuning().EnemyHealth {
		t.Errorf("health = %d, want %d", e.Health, s.Tuning().EnemyHealth)
	}

	// Outside the layout it turns straight at the wizard.
	p := s.Session().Player
	want := core.AngleTo(e.Pos.X, e.Pos.Y, p.Pos.X, p.Pos.Y)
	if !approx(e.Angle, want) {
		t.Errorf("angle = %v, want %v", e.Angle, want)
	}
}

func TestSpawnSpeedsNeverDecrease(t *testing.T) {
	s := NewSim(NewLocalHost(7, 1400, 1024), quietTuning())
	tu := s.Tuning()

	var last float64
	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			target := s.world.addEnemy(core.Vec2{X: 50, Y: 50}, 0, s.Session().EnemySpeed, tu)
			s.world.addProjectile(target.Pos, 0, tu)
		}
		s.SpawnTimer()
		s.Tick(0, Controls{})

		newest := s.World().Enemies[len(s.World().Enemies)-1]
		if newest.Speed < last {
			t.Fatalf("spawn %d speed %v dropped below %v", i, newest.Speed, last)
		}
		last = newest.Speed
	}
	if last <= tu.EnemyBaseSpeed {
		t.Errorf("hits should ramp spawn speed, last = %v", last)
	}
}

func TestGoblinTurnsTowardsNearbyWizard(t *testing.T) {
	s, _ := newQuietSim()
	p := s.Session().Player
	e := s.world.addEnemy(core.Vec2{X: p.Pos.X, Y: p.Pos.Y - 150}, 0, 0, s.Tuning())

	s.Tick(1.0/60, Controls{Pointer: p.Pos})

	if !approx(e.Angle, core.ToRadians(1)) {
		t.Errorf("angle = %v, want one degree towards the wizard (%v)", e.Angle, core.ToRadians(1))
	}
}

func TestFarGoblinKeepsHeading(t *testing.T) {
	s, _ := newQuietSim()
	p := s.Session().Player
	e := s.world.addEnemy(core.Vec2{X: p.Pos.X - 400, Y: p.Pos.Y}, 2.0, 60, s.Tuning())

	s.Tick(0.5, Controls{})

	if e.Angle != 2.0 {
		t.Errorf("angle = %v, want unchanged", e.Angle)
	}
	want := core.Vec2{X: p.Pos.X - 400, Y: p.Pos.Y}.Add(core.FromAngle(2.0, 30))
	if !approx(e.Pos.X, want.X) || !approx(e.Pos.Y, want.Y) {
		t.Errorf("position = %+v, want %+v", e.Pos, want)
	}
}

func TestEffectsFadeOut(t *testing.T) {
	s, _ := newQuietSim()
	fx := s.world.addEffect(core.Vec2{X: 10, Y: 10}, 0)

	s.Tick(0.25, Controls{})
	if !approx(fx.Opacity, 0.5) {
		t.Errorf("opacity = %v, want 0.5", fx.Opacity)
	}
	s.Tick(0.25, Controls{})
	if len(s.World().Effects) != 0 {
		t.Error("flash should be removed at zero opacity")
	}
	if fx.Opacity != 0 {
		t.Errorf("opacity should stop at 0, got %v", fx.Opacity)
	}
}

func TestNegativeDtIsIgnored(t *testing.T) {
	s, _ := newQuietSim()
	start := s.Session().Player.Pos
	s.Tick(-1, Controls{Right: true})
	if s.Session().Player.Pos != start {
		t.Error("negative dt should not move the wizard")
	}
	if s.Ticks() != 1 {
		t.Errorf("ticks = %d, want 1", s.Ticks())
	}
}

func TestElapsedStopsAtGameOver(t *testing.T) {
	s, _ := newQuietSim()
	s.Tick(0.5, Controls{})
	s.world.addEnemy(s.Session().Player.Pos, 0, 0, s.Tuning())
	s.Tick(0.5, Controls{})
	s.Tick(0.5, Controls{})

	if !approx(s.Session().Elapsed, 0.5) {
		t.Errorf("elapsed = %v, want 0.5", s.Session().Elapsed)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := NewSim(NewLocalHost(12345, 1400, 1024), DefaultTuning())
		for i := 0; i < 600; i++ {
			ctrl := Controls{Right: i%120 < 60, Down: i%90 < 30, Pointer: core.Vec2{X: 1400, Y: float64(i)}}
			if i%15 == 0 {
				s.PointerDown(core.ButtonPrimary)
			}
			if i%180 == 0 {
				s.SpawnTimer()
			}
			if i%200 == 199 {
				s.KeyDown(core.KeySpace)
			}
			s.Tick(1.0/60, ctrl)
		}
		return s.Snapshot()
	}

	first, second := run(), run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("snapshots differ:\n%+v\n%+v", first, second)
	}
	if first.Tick != 600 {
		t.Errorf("tick = %d, want 600", first.Tick)
	}
}
