package core

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestAngleTo(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		expected       float64
	}{
		{"right", 0, 0, 10, 0, 0},
		{"down", 0, 0, 0, 10, math.Pi / 2},
		{"left", 0, 0, -10, 0, math.Pi},
		{"up", 0, 0, 0, -10, -math.Pi / 2},
		{"diagonal", 5, 5, 15, 15, math.Pi / 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := AngleTo(tc.x1, tc.y1, tc.x2, tc.y2)
			if !almostEqual(result, tc.expected) {
				t.Errorf("AngleTo() = %f, expected %f", result, tc.expected)
			}
		})
	}
}

func TestDistanceTo(t *testing.T) {
	if d := DistanceTo(0, 0, 3, 4); !almostEqual(d, 5) {
		t.Errorf("DistanceTo(0,0,3,4) = %f, expected 5", d)
	}
	if d := DistanceTo(7, 7, 7, 7); d != 0 {
		t.Errorf("DistanceTo of same point = %f, expected 0", d)
	}
}

func TestRadiansDegrees(t *testing.T) {
	if r := ToRadians(180); !almostEqual(r, math.Pi) {
		t.Errorf("ToRadians(180) = %f", r)
	}
	if d := ToDegrees(math.Pi / 2); !almostEqual(d, 90) {
		t.Errorf("ToDegrees(Pi/2) = %f", d)
	}
}

func TestAngleRotate(t *testing.T) {
	step := ToRadians(1)

	tests := []struct {
		name       string
		start, end float64
		expected   float64
	}{
		{"counter-clockwise step", 0, math.Pi / 2, step},
		{"clockwise step", 0, -math.Pi / 2, -step},
		{"snaps when close", 0, step / 2, step / 2},
		{"already aligned", 1, 1, 1},
		{"wraps across pi", math.Pi - step/4, -math.Pi + step/4, -math.Pi + step/4},
		{"shortest arc through pi", 3, -3, 3 + step},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := AngleRotate(tc.start, tc.end, step)
			if !almostEqual(result, tc.expected) {
				t.Errorf("AngleRotate(%f, %f) = %f, expected %f", tc.start, tc.end, result, tc.expected)
			}
		})
	}
}

func TestAngleDiffRange(t *testing.T) {
	for _, pair := range [][2]float64{{0, 7}, {-10, 10}, {math.Pi, -math.Pi}, {0.5, 0.5 + 4*math.Pi}} {
		d := AngleDiff(pair[0], pair[1])
		if d <= -math.Pi || d > math.Pi {
			t.Errorf("AngleDiff(%f, %f) = %f, out of (-Pi, Pi]", pair[0], pair[1], d)
		}
	}
}

func TestOutsideBounds(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 50, 50, false},
		{"origin corner", 0, 0, false},
		{"far corner", 100, 80, false},
		{"left", -0.1, 10, true},
		{"right", 100.1, 10, true},
		{"above", 10, -1, true},
		{"below", 10, 81, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := OutsideBounds(tc.x, tc.y, 100, 80); got != tc.expected {
				t.Errorf("OutsideBounds(%f, %f) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(0, 0, 5, 6, 0, 5) {
		t.Error("circles 6 apart with radii 5+5 should overlap")
	}
	if CirclesOverlap(0, 0, 5, 10, 0, 5) {
		t.Error("touching circles should not overlap")
	}
	if CirclesOverlap(0, 0, 1, 30, 30, 1) {
		t.Error("distant circles should not overlap")
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if v.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", v.Len())
	}
	sum := v.Add(Vec2{X: 1, Y: 1}).Sub(Vec2{X: 2, Y: 2}).Scale(2)
	if sum != (Vec2{X: 4, Y: 6}) {
		t.Errorf("arithmetic chain = %+v", sum)
	}
	f := FromAngle(math.Pi/2, 10)
	if !almostEqual(f.X, 0) || !almostEqual(f.Y, 10) {
		t.Errorf("FromAngle(Pi/2, 10) = %+v", f)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}

	if ClampF(-5.5, 0, 10) != 0 || ClampF(15.5, 0, 10) != 10 || ClampF(5.5, 0, 10) != 5.5 {
		t.Error("ClampF did not clamp into [0, 10]")
	}
}
