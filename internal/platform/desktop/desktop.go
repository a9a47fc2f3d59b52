// Package desktop runs Goblin Siege in a window via Ebitengine. Unlike a
// terminal, the window reports real key releases and pointer positions, so
// the simulation is driven directly without the cell-based adapter.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/goblin-arcade/internal/config"
	"github.com/vovakirdan/goblin-arcade/internal/core"
	"github.com/vovakirdan/goblin-arcade/internal/games/goblins"
	"github.com/vovakirdan/goblin-arcade/internal/storage"
)

const gameID = "goblins"

var (
	backgroundColor = color.RGBA{0x1b, 0x1f, 0x1a, 0xff}
	borderColor     = color.RGBA{0x55, 0x5b, 0x50, 0xff}
	playerColor     = color.RGBA{0xe8, 0xe4, 0xf0, 0xff}
	wandColor       = color.RGBA{0xb0, 0x6c, 0xe0, 0xff}
	spellColor      = color.RGBA{0x6c, 0xe0, 0xf0, 0xff}
	sparkColor      = color.RGBA{0xff, 0xa0, 0x30, 0xff}
	textColor       = color.RGBA{0xf0, 0xe0, 0x90, 0xff}
	gameOverColor   = color.RGBA{0xf0, 0x50, 0x40, 0xff}
)

// Options configures the desktop window.
type Options struct {
	Config   config.GoblinsConfig
	Seed     int64
	TickRate int
	Width    int // window size in pixels
	Height   int
	Store    *storage.Store // optional
	Logger   *log.Logger    // optional
}

// App implements ebiten.Game around a goblins simulation.
type App struct {
	opts   Options
	host   *goblins.LocalHost
	sim    *goblins.Sim
	clock  *goblins.SpawnClock
	logger *log.Logger

	run      int
	runSaved bool
	paused   bool
}

// New creates the window app and starts the first session.
func New(opts Options) *App {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 800
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	host := goblins.NewLocalHost(opts.Seed, opts.Config.Layout.Width, opts.Config.Layout.Height)
	tuning := goblins.TuningFromConfig(opts.Config)
	return &App{
		opts:   opts,
		host:   host,
		sim:    goblins.NewSim(host, tuning),
		clock:  goblins.NewSpawnClock(tuning.SpawnInterval, time.Now()),
		logger: logger,
	}
}

// Update samples devices, forwards presses and spawn expiries, then ticks.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.recordRun("quit")
		return ebiten.Termination
	}

	now := time.Now()
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && a.sim.Session().Player != nil {
		a.paused = !a.paused
	}
	if a.paused {
		// Expiries during a pause are dropped
		a.clock.Due(now)
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.sim.PointerDown(core.ButtonPrimary)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		a.sim.PointerDown(core.ButtonSecondary)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.sim.KeyDown(core.KeySpace)
	}
	for range a.clock.Due(now) {
		a.sim.SpawnTimer()
	}

	mx, my := ebiten.CursorPosition()
	a.sim.Tick(1/float64(a.opts.TickRate), goblins.Controls{
		Up:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Pointer: a.toWorld(float64(mx), float64(my)),
	})

	sess := a.sim.Session()
	if sess.Run != a.run {
		a.run = sess.Run
		a.runSaved = false
		a.clock.Reset(now)
		a.logger.Info("run restarted", "run", sess.Run)
	}
	if sess.State() == goblins.StateGameOver {
		a.recordRun("caught")
	}
	return nil
}

// toWorld converts window pixels to layout coordinates around the camera.
func (a *App) toWorld(x, y float64) core.Vec2 {
	cam := a.host.Camera()
	return core.Vec2{
		X: cam.X + x - float64(a.opts.Width)/2,
		Y: cam.Y + y - float64(a.opts.Height)/2,
	}
}

// toScreen converts layout coordinates to window pixels.
func (a *App) toScreen(p core.Vec2) (float32, float32) {
	cam := a.host.Camera()
	return float32(p.X - cam.X + float64(a.opts.Width)/2),
		float32(p.Y - cam.Y + float64(a.opts.Height)/2)
}

func (a *App) recordRun(reason string) {
	if a.runSaved {
		return
	}
	a.runSaved = true

	stats := a.sim.Session().Stats()
	a.logger.Info("run ended", "reason", reason, "score", stats.Score, "kills", stats.Kills)

	if a.opts.Store == nil || (reason == "quit" && stats.Elapsed == 0) {
		return
	}
	if stats.Score > 0 {
		if _, err := a.opts.Store.SaveScore(gameID, stats.Score); err != nil {
			a.logger.Warn("could not save score", "error", err)
		}
	}
	if _, err := a.opts.Store.SaveRun(storage.NewRunRecord(gameID, stats, reason)); err != nil {
		a.logger.Warn("could not save run", "error", err)
	}
}

// Draw renders the world around the camera, then the HUD.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	w, h := a.host.Layout()
	x0, y0 := a.toScreen(core.Vec2{})
	vector.StrokeRect(screen, x0, y0, float32(w), float32(h), 2, borderColor, true)

	world := a.sim.World()
	for _, fx := range world.Effects {
		x, y := a.toScreen(fx.Pos)
		c := sparkColor
		c.A = uint8(255 * fx.Opacity)
		r := float32(10 + 14*(1-fx.Opacity))
		vector.DrawFilledCircle(screen, x, y, r, premultiply(c), true)
	}

	full := a.sim.Tuning().EnemyHealth
	for _, e := range world.Enemies {
		x, y := a.toScreen(e.Pos)
		vector.DrawFilledCircle(screen, x, y, float32(e.Radius), enemyColor(e.Health, full), true)
		hx, hy := a.toScreen(e.Pos.Add(core.FromAngle(e.Angle, e.Radius)))
		vector.StrokeLine(screen, x, y, hx, hy, 2, backgroundColor, true)
	}

	for _, p := range world.Projectiles {
		x, y := a.toScreen(p.Pos)
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), spellColor, true)
	}

	if p := a.sim.Session().Player; p != nil {
		x, y := a.toScreen(p.Pos)
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), playerColor, true)
		mx, my := a.toScreen(p.Pos.Add(core.FromAngle(p.Angle, a.sim.Tuning().MuzzleOffset)))
		vector.StrokeLine(screen, x, y, mx, my, 4, wandColor, true)
	}

	face := basicfont.Face7x13
	text.Draw(screen, a.host.Status(), face, 12, 20, textColor)
	sess := a.sim.Session()
	stats := fmt.Sprintf("Goblins: %d  Kills: %d  Run: %d", len(world.Enemies), sess.Kills, sess.Run+1)
	text.Draw(screen, stats, face, a.opts.Width-len(stats)*7-12, 20, textColor)

	cx, cy := a.opts.Width/2, a.opts.Height/2
	switch {
	case a.host.GameOverVisible():
		drawCentered(screen, "Game over", cx, cy-10, gameOverColor)
		drawCentered(screen, fmt.Sprintf("Score: %d", sess.Score), cx, cy+10, textColor)
		drawCentered(screen, "Press Space to restart", cx, cy+30, playerColor)
	case a.paused:
		drawCentered(screen, "PAUSED", cx, cy, textColor)
	}
}

// Layout keeps a one-to-one pixel mapping with the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.opts.Width, a.opts.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func drawCentered(screen *ebiten.Image, s string, cx, y int, c color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, cx-len(s)*7/2, y, c)
}

// enemyColor shades goblins from green at full health to red.
func enemyColor(health, full int) color.RGBA {
	t := 1.0
	if full > 0 {
		t = math.Max(0, math.Min(1, float64(health)/float64(full)))
	}
	return color.RGBA{
		R: uint8(0x50 + (0xe0-0x50)*(1-t)),
		G: uint8(0x40 + (0xc0-0x40)*t),
		B: 0x40,
		A: 0xff,
	}
}

// premultiply scales color channels by alpha as ebiten expects.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	app := New(opts)
	ebiten.SetWindowSize(app.opts.Width, app.opts.Height)
	ebiten.SetWindowTitle("Goblin Siege")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.opts.TickRate)

	err := ebiten.RunGame(app)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
