package goblins

import "github.com/vovakirdan/goblin-arcade/internal/core"

// scriptedHost is a Host with a fixed layout and a cycling random script.
type scriptedHost struct {
	w, h     float64
	rolls    []float64
	next     int
	scrolls  []core.Vec2
	status   string
	gameOver bool
}

func newScriptedHost(rolls ...float64) *scriptedHost {
	if len(rolls) == 0 {
		rolls = []float64{0.1, 0.2, 0.9}
	}
	return &scriptedHost{w: 1400, h: 1024, rolls: rolls}
}

func (h *scriptedHost) Random() float64 {
	v := h.rolls[h.next%len(h.rolls)]
	h.next++
	return v
}

func (h *scriptedHost) Overlap(a, b Body) bool {
	pa, pb := a.Position(), b.Position()
	return core.CirclesOverlap(pa.X, pa.Y, a.BoundsRadius(), pb.X, pb.Y, b.BoundsRadius())
}

func (h *scriptedHost) Layout() (float64, float64) { return h.w, h.h }

func (h *scriptedHost) ScrollTo(x, y float64) {
	h.scrolls = append(h.scrolls, core.Vec2{X: x, Y: y})
}

func (h *scriptedHost) SetStatus(text string) { h.status = text }

func (h *scriptedHost) SetGameOverVisible(visible bool) { h.gameOver = visible }

// quietTuning has no opening wave so tests place every goblin themselves.
func quietTuning() Tuning {
	t := DefaultTuning()
	t.InitialEnemies = 0
	return t
}

func newQuietSim() (*Sim, *scriptedHost) {
	h := newScriptedHost()
	return NewSim(h, quietTuning()), h
}
