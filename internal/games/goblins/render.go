package goblins

import (
	"fmt"
	"math"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '@'
	EnemyChar      = 'g'
	ProjectileChar = '*'
	EffectChar     = '+'
	BorderChar     = '·'
)

// facingChars are indexed by octant, clockwise from east (y grows downwards).
var facingChars = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Render draws the play area centred on the camera, then the HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	cam := g.Camera()

	g.renderBorder(dst, cam)

	for _, e := range g.sim.world.Effects {
		c := core.ColorOrange
		if e.Opacity < 0.5 {
			c = c.Dim()
		}
		plot(dst, cam, e.Pos, EffectChar, c)
	}

	for _, e := range g.sim.world.Enemies {
		plot(dst, cam, e.Pos, EnemyChar, enemyColor(e.Health, g.sim.tuning.EnemyHealth))
	}

	for _, p := range g.sim.world.Projectiles {
		plot(dst, cam, p.Pos, ProjectileChar, core.ColorBrightCyan)
	}

	if p := g.sim.session.Player; p != nil {
		x, y := cam.ToCell(p.Pos)
		if cam.Visible(x, y) {
			dst.SetColored(x, y, PlayerChar, core.ColorBrightWhite)
		}
		dx, dy, r := facing(p.Angle)
		if cam.Visible(x+dx, y+dy) {
			dst.SetColored(x+dx, y+dy, r, core.ColorMagenta)
		}
	}

	g.renderHUD(dst)

	switch {
	case g.host.GameOverVisible():
		g.renderGameOver(dst, cam)
	case g.paused:
		mid := cam.Top + cam.Rows/2
		dst.DrawTextCentered(mid, "PAUSED", core.ColorBrightYellow)
		dst.DrawTextCentered(mid+1, "Press P to resume", core.ColorGray)
	}
}

func plot(dst *core.Screen, cam Camera, pos core.Vec2, r rune, c core.Color) {
	x, y := cam.ToCell(pos)
	if cam.Visible(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// renderBorder traces the layout edges that fall inside the view.
func (g *Game) renderBorder(dst *core.Screen, cam Camera) {
	w, h := g.host.Layout()
	x0, y0 := cam.ToCell(core.Vec2{})
	x1, y1 := cam.ToCell(core.Vec2{X: w, Y: h})

	for x := x0; x <= x1; x++ {
		for _, y := range []int{y0, y1} {
			if cam.Visible(x, y) {
				dst.SetColored(x, y, BorderChar, core.ColorGray)
			}
		}
	}
	for y := y0; y <= y1; y++ {
		for _, x := range []int{x0, x1} {
			if cam.Visible(x, y) {
				dst.SetColored(x, y, BorderChar, core.ColorGray)
			}
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 0, ' ')
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
	dst.DrawText(1, 0, g.host.Status(), core.ColorBrightYellow)

	stats := fmt.Sprintf("Goblins: %d  Kills: %d  Run: %d",
		len(g.sim.world.Enemies), g.sim.session.Kills, g.sim.session.Run+1)
	dst.DrawText(dst.Width()-len(stats)-1, 0, stats, core.ColorGray)
}

func (g *Game) renderGameOver(dst *core.Screen, cam Camera) {
	mid := cam.Top + cam.Rows/2
	box := core.NewRect(dst.Width()/2-14, mid-2, 28, 5)
	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorRed)
	dst.DrawTextCentered(mid-1, "Game over", core.ColorBrightRed)
	dst.DrawTextCentered(mid, fmt.Sprintf("Score: %d", g.sim.session.Score), core.ColorBrightWhite)
	dst.DrawTextCentered(mid+1, "Press Space to restart", core.ColorGray)
}

// enemyColor shades goblins from green at full health to red.
func enemyColor(health, full int) core.Color {
	switch {
	case health*3 > full*2:
		return core.ColorGreen
	case health*3 > full:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

// facing returns the cell offset and arrow for a facing angle.
func facing(angle float64) (dx, dy int, r rune) {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	offsets := [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	return offsets[octant][0], offsets[octant][1], facingChars[octant]
}
