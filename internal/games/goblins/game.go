package goblins

import (
	"time"

	"github.com/vovakirdan/goblin-arcade/internal/config"
	"github.com/vovakirdan/goblin-arcade/internal/core"
	"github.com/vovakirdan/goblin-arcade/internal/registry"
)

// hudRows is the number of screen rows above the play area.
const hudRows = 2

var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets a custom config file for games created afterwards.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for games created afterwards.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

func init() {
	registry.Register("goblins", func() registry.Game {
		return New()
	})
}

// Game adapts Sim to the arcade platform: it maps input frames to controls
// and events, converts pointer cells to world positions and draws the world
// into a character screen.
type Game struct {
	cfg       core.RuntimeConfig
	setup     config.GoblinsConfig
	preset    config.DifficultyPreset
	preloaded bool
	loadErr   error

	host *LocalHost
	sim  *Sim

	pointer    core.Vec2
	hasPointer bool
	paused     bool
}

// New creates a Goblin Siege game. Config is read on Reset.
func New() *Game {
	return &Game{preset: difficultyPreset}
}

// NewWithConfig creates a game that uses cfg instead of loading from disk.
func NewWithConfig(cfg config.GoblinsConfig) *Game {
	return &Game{setup: cfg, preloaded: true}
}

func (g *Game) ID() string {
	return "goblins"
}

func (g *Game) Title() string {
	return "Goblin Siege"
}

// Reset loads configuration and starts a fresh session.
// Config errors fall back to the defaults; ConfigError reports them.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg

	if !g.preloaded {
		setup, err := config.LoadGoblins(configPath)
		if err != nil {
			setup = config.DefaultGoblinsConfig()
		}
		config.ApplyGoblinsPreset(&setup, g.preset)
		g.setup = setup
		g.loadErr = err
	}

	g.host = NewLocalHost(cfg.Seed, g.setup.Layout.Width, g.setup.Layout.Height)
	g.sim = NewSim(g.host, TuningFromConfig(g.setup))
	g.hasPointer = false
	g.paused = false
}

// SetDifficulty selects the preset applied on the next Reset. It has no
// effect on games created with NewWithConfig.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.preset = preset
}

// Step runs one tick. Presses are queued for the tick, held actions become
// controls.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.sim.session.Player != nil {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.HasPointer {
		g.pointer = g.Camera().ToWorld(in.PointerX, in.PointerY)
		g.hasPointer = true
	}

	run := g.sim.session.Run
	for _, b := range in.Buttons {
		g.sim.PointerDown(b)
	}
	for _, k := range in.Keys {
		g.sim.KeyDown(k)
	}

	g.sim.Tick(g.cfg.Dt(), Controls{
		Up:      in.Has(core.ActionUp),
		Down:    in.Has(core.ActionDown),
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Pointer: g.aim(),
	})

	return core.StepResult{
		State:     g.State(),
		Restarted: g.sim.session.Run != run,
	}
}

// aim returns the pointer target. Without a pointer the wizard keeps facing
// right.
func (g *Game) aim() core.Vec2 {
	if g.hasPointer {
		return g.pointer
	}
	if p := g.sim.session.Player; p != nil {
		return p.Pos.Add(core.Vec2{X: 1})
	}
	return core.Vec2{}
}

func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.session.Score,
		GameOver: g.sim.session.State() == StateGameOver,
		Paused:   g.paused,
	}
}

// TimerInterval returns the spawn timer period.
func (g *Game) TimerInterval() time.Duration {
	return g.sim.tuning.SpawnInterval
}

// Timer delivers a spawn timer expiry scheduled for generation. Stale and
// paused deliveries are dropped.
func (g *Game) Timer(generation int) {
	if generation != g.sim.session.Run || g.paused {
		return
	}
	g.sim.SpawnTimer()
}

// TimerGeneration identifies the current run's spawn timer.
func (g *Game) TimerGeneration() int {
	return g.sim.session.Run
}

// Camera returns the current view mapping for the runtime screen size.
func (g *Game) Camera() Camera {
	return Camera{
		Center: g.host.Camera(),
		CellW:  g.setup.View.CellWidth,
		CellH:  g.setup.View.CellHeight,
		Cols:   g.cfg.ScreenW,
		Rows:   max(0, g.cfg.ScreenH-hudRows),
		Top:    hudRows,
	}
}

// Resize adapts the view to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.cfg.ScreenW = w
	g.cfg.ScreenH = h
}

// Sim exposes the running simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Snapshot returns the simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Session returns the current session statistics.
func (g *Game) Session() Session {
	return *g.sim.Session()
}

// RunStats reports the current session for persistence.
func (g *Game) RunStats() core.RunStats {
	return g.sim.session.Stats()
}

// ConfigError returns the error from the last config load, if any.
func (g *Game) ConfigError() error {
	return g.loadErr
}
