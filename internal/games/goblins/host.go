package goblins

import (
	"math/rand"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

// Host is the engine runtime the simulation runs inside. The simulation never
// draws or reads devices; it reaches the outside world only through Host.
type Host interface {
	// Random returns a uniform value in [0, 1).
	Random() float64
	// Overlap reports whether the visual bounds of two entities intersect.
	Overlap(a, b Body) bool
	// Layout returns the playable area size.
	Layout() (w, h float64)
	// ScrollTo centres the view on a world position.
	ScrollTo(x, y float64)
	// SetStatus replaces the status display text.
	SetStatus(text string)
	// SetGameOverVisible shows or hides the game over display.
	SetGameOverVisible(visible bool)
}

// LocalHost is an in-process Host backed by a seeded RNG and circle bounds.
// Front-ends embed it and read back the view state it records.
type LocalHost struct {
	rng    *rand.Rand
	width  float64
	height float64

	camera   core.Vec2
	status   string
	gameOver bool
}

// NewLocalHost creates a host with a deterministic random source.
func NewLocalHost(seed int64, width, height float64) *LocalHost {
	return &LocalHost{
		rng:    rand.New(rand.NewSource(seed)),
		width:  width,
		height: height,
		camera: core.Vec2{X: width / 2, Y: height / 2},
	}
}

func (h *LocalHost) Random() float64 {
	return h.rng.Float64()
}

func (h *LocalHost) Overlap(a, b Body) bool {
	pa, pb := a.Position(), b.Position()
	return core.CirclesOverlap(pa.X, pa.Y, a.BoundsRadius(), pb.X, pb.Y, b.BoundsRadius())
}

func (h *LocalHost) Layout() (float64, float64) {
	return h.width, h.height
}

func (h *LocalHost) ScrollTo(x, y float64) {
	h.camera = core.Vec2{X: x, Y: y}
}

func (h *LocalHost) SetStatus(text string) {
	h.status = text
}

func (h *LocalHost) SetGameOverVisible(visible bool) {
	h.gameOver = visible
}

// Camera returns the last scroll position.
func (h *LocalHost) Camera() core.Vec2 {
	return h.camera
}

// Status returns the last status text.
func (h *LocalHost) Status() string {
	return h.status
}

// GameOverVisible reports whether the game over display is shown.
func (h *LocalHost) GameOverVisible() bool {
	return h.gameOver
}
