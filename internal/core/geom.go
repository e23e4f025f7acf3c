// Package core provides the terminal-independent building blocks shared by the
// game and the platform: screen buffer, colors, input frames and geometry.
// It has no Bubble Tea dependency so game logic stays testable.
package core

import "math"

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	w := Max(r.W-2*n, 0)
	h := Max(r.H-2*n, 0)
	return Rect{X: r.X + n, Y: r.Y + n, W: w, H: h}
}

// Empty reports whether the rectangle has no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// StepF moves val by delta and snaps it to the step grid, then clamps it to
// [lo, hi]. Snapping keeps repeated key presses from accumulating float drift.
func StepF(val, delta, step, lo, hi float64) float64 {
	next := val + delta
	if step > 0 {
		next = math.Round(next/step) * step
	}
	return ClampF(next, lo, hi)
}

// ScaleToRow maps v in [-extent, extent] onto a row in [top, top+height-1],
// with positive values towards the top.
func ScaleToRow(v, extent float64, top, height int) int {
	if height <= 1 || extent <= 0 {
		return top + height/2
	}
	norm := (ClampF(v, -extent, extent) + extent) / (2 * extent)
	row := int(math.Round((1 - norm) * float64(height-1)))
	return top + row
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
