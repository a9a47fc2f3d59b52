package goblins

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/goblin-arcade/internal/config"
	"github.com/vovakirdan/goblin-arcade/internal/core"
	"github.com/vovakirdan/goblin-arcade/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.DefaultGoblinsConfig()
	cfg.Enemy.InitialCount = 0
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("goblins") {
		t.Fatal("goblins should be registered")
	}
	g, err := registry.Create("goblins")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Goblin Siege" {
		t.Errorf("title = %q", g.Title())
	}
	if _, ok := g.(registry.Timed); !ok {
		t.Error("goblins should drive a spawn timer")
	}
}

func TestStepMovesWithHeldActions(t *testing.T) {
	g := newTestGame(t)
	start := g.Sim().Session().Player.Pos

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for i := 0; i < 60; i++ {
		g.Step(in)
	}

	got := g.Sim().Session().Player.Pos
	if !approx(got.X-start.X, 200) || got.Y != start.Y {
		t.Errorf("one second right should move 200 units, moved %+v", got.Sub(start))
	}
}

func TestStepPointerAimsAndFires(t *testing.T) {
	g := newTestGame(t)
	cam := g.Camera()
	px, py := cam.ToCell(g.Sim().Session().Player.Pos)

	in := core.NewInputFrame()
	in.MovePointer(px, py-5)
	in.PressButton(core.ButtonPrimary)
	g.Step(in)
	in.Clear()
	g.Step(in)

	p := g.Sim().Session().Player
	if p.Angle > -1.4 || p.Angle < -1.7 {
		t.Errorf("wizard should face up towards the pointer, angle = %v", p.Angle)
	}
	if len(g.Sim().World().Projectiles) != 1 {
		t.Errorf("projectiles = %d, want 1", len(g.Sim().World().Projectiles))
	}
}

func TestPauseFreezesAndDropsTimer(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in)
	if !res.State.Paused {
		t.Fatal("pause should be reported")
	}

	ticks := g.Sim().Ticks()
	in.Clear()
	in.Set(core.ActionRight)
	g.Step(in)
	if g.Sim().Ticks() != ticks {
		t.Error("paused game should not tick")
	}

	g.Timer(g.TimerGeneration())
	if g.Sim().Pending() != 0 {
		t.Error("spawn timer should be dropped while paused")
	}

	in.Clear()
	in.Set(core.ActionPause)
	if g.Step(in).State.Paused {
		t.Error("second pause should resume")
	}
}

func TestStaleTimerIsDropped(t *testing.T) {
	g := newTestGame(t)
	gen := g.TimerGeneration()

	g.Timer(gen)
	if g.Sim().Pending() != 1 {
		t.Fatalf("pending = %d, want 1", g.Sim().Pending())
	}
	g.Timer(gen + 1)
	if g.Sim().Pending() != 1 {
		t.Error("timer for another generation should be dropped")
	}
	if g.TimerInterval() != config.DefaultGoblinsConfig().Spawner.Interval {
		t.Errorf("interval = %s", g.TimerInterval())
	}
}

func TestRestartReportedAndBumpsGeneration(t *testing.T) {
	g := newTestGame(t)
	sim := g.Sim()
	sim.world.addEnemy(sim.Session().Player.Pos, 0, 80, sim.Tuning())

	in := core.NewInputFrame()
	res := g.Step(in)
	if !res.State.GameOver {
		t.Fatal("contact should end the game")
	}

	gen := g.TimerGeneration()
	in.PressKey(core.KeySpace)
	res = g.Step(in)
	if !res.Restarted || res.State.GameOver {
		t.Errorf("space should restart, got %+v", res)
	}
	if g.TimerGeneration() == gen {
		t.Error("restart should start a new timer generation")
	}
}

func TestRenderDrawsWizardAndHUD(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	x, y := g.Camera().ToCell(g.Sim().Session().Player.Pos)
	if screen.Get(x, y) != PlayerChar {
		t.Errorf("expected wizard at (%d, %d), got %q", x, y, screen.Get(x, y))
	}
	if screen.Get(x+1, y) != '→' {
		t.Errorf("wizard should face right without a pointer, got %q", screen.Get(x+1, y))
	}
	if strings.Contains(screen.String(), "Game over") {
		t.Error("game over should be hidden while running")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t)
	sim := g.Sim()
	sim.world.addEnemy(sim.Session().Player.Pos, 0, 80, sim.Tuning())
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Game over") || !strings.Contains(out, "Press Space to restart") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cam := Camera{Center: core.Vec2{X: 700, Y: 512}, CellW: 16, CellH: 32, Cols: 80, Rows: 22, Top: 2}

	x, y := cam.ToCell(cam.Center)
	if x != 40 || y != 13 {
		t.Errorf("centre maps to (%d, %d), want (40, 13)", x, y)
	}
	for _, c := range [][2]int{{0, 2}, {40, 13}, {79, 23}, {-3, 30}} {
		gx, gy := cam.ToCell(cam.ToWorld(c[0], c[1]))
		if gx != c[0] || gy != c[1] {
			t.Errorf("round trip of %v gave (%d, %d)", c, gx, gy)
		}
	}
	if cam.Visible(0, 1) || !cam.Visible(0, 2) || cam.Visible(80, 5) {
		t.Error("visibility should exclude the HUD rows and off-screen columns")
	}
}

func TestFacing(t *testing.T) {
	tests := []struct {
		angle  float64
		dx, dy int
	}{
		{0, 1, 0},
		{1.5708, 0, 1},
		{-1.5708, 0, -1},
		{3.1416, -1, 0},
		{-0.7854, 1, -1},
	}
	for _, tt := range tests {
		dx, dy, _ := facing(tt.angle)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("facing(%v) = (%d, %d), want (%d, %d)", tt.angle, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestTuningFromConfig(t *testing.T) {
	if got := TuningFromConfig(config.DefaultGoblinsConfig()); got != DefaultTuning() {
		t.Errorf("default config should map to default tuning:\n%+v\n%+v", got, DefaultTuning())
	}
}

func TestRunStats(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	stats := g.RunStats()
	if stats.Elapsed < 490*time.Millisecond || stats.Elapsed > 510*time.Millisecond {
		t.Errorf("elapsed = %s, want about 500ms", stats.Elapsed)
	}
	if stats.PeakSpeed != g.Sim().Tuning().EnemyBaseSpeed {
		t.Errorf("peak speed = %v", stats.PeakSpeed)
	}
}

func TestSetDifficultyAppliesOnReset(t *testing.T) {
	g := New()
	g.SetDifficulty(config.DifficultyFixed)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if g.Sim().Tuning().SpeedRamp != 0 {
		t.Errorf("fixed preset should disable the ramp, got %v", g.Sim().Tuning().SpeedRamp)
	}
}
