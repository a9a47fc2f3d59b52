package goblins

import (
	"math"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

// Camera maps world units to terminal cells. The view rectangle starts at row
// Top and is centred on Center.
type Camera struct {
	Center       core.Vec2
	CellW, CellH float64
	Cols, Rows   int
	Top          int
}

// ToCell returns the cell a world position falls into. The result may be
// off screen.
func (c Camera) ToCell(p core.Vec2) (int, int) {
	x := int(math.Floor((p.X-c.Center.X)/c.CellW)) + c.Cols/2
	y := int(math.Floor((p.Y-c.Center.Y)/c.CellH)) + c.Rows/2 + c.Top
	return x, y
}

// ToWorld returns the world position at the centre of a cell.
func (c Camera) ToWorld(x, y int) core.Vec2 {
	return core.Vec2{
		X: c.Center.X + (float64(x-c.Cols/2)+0.5)*c.CellW,
		Y: c.Center.Y + (float64(y-c.Top-c.Rows/2)+0.5)*c.CellH,
	}
}

// Visible reports whether a cell lies inside the view rectangle.
func (c Camera) Visible(x, y int) bool {
	return x >= 0 && x < c.Cols && y >= c.Top && y < c.Top+c.Rows
}
