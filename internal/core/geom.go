// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
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

// Viewport maps a continuous playfield (pixel units) onto a grid of cells.
// The grid origin is offset by OriginY rows so callers can reserve a header.
type Viewport struct {
	FieldW, FieldH float64 // Playfield size in pixel units
	Cols, Rows     int     // Target grid size in cells
	OriginY        int     // First row used by the playfield
}

// NewViewport creates a viewport for the given playfield and cell grid.
func NewViewport(fieldW, fieldH float64, cols, rows, originY int) Viewport {
	return Viewport{
		FieldW:  fieldW,
		FieldH:  fieldH,
		Cols:    max(cols, 1),
		Rows:    max(rows, 1),
		OriginY: originY,
	}
}

// ScaleX returns cells per playfield unit horizontally.
func (v Viewport) ScaleX() float64 {
	return float64(v.Cols) / v.FieldW
}

// ScaleY returns cells per playfield unit vertically.
func (v Viewport) ScaleY() float64 {
	return float64(v.Rows) / v.FieldH
}

// ToCell converts a playfield point to the cell that contains it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	cx := int(math.Floor(x * float64(v.Cols) / v.FieldW))
	cy := int(math.Floor(y * float64(v.Rows) / v.FieldH))
	return Clamp(cx, 0, v.Cols-1), Clamp(cy, 0, v.Rows-1) + v.OriginY
}

// CellSpan converts a playfield interval [from, from+length) on one axis into
// a half-open cell range. A non-empty interval always covers at least one cell.
func CellSpan(from, length, scale float64, limit int) (int, int) {
	start := int(math.Floor(from * scale))
	end := int(math.Ceil((from + length) * scale))
	if end <= start {
		end = start + 1
	}
	return Clamp(start, 0, limit), Clamp(end, 0, limit)
}

// ToFieldY converts a screen row back into a playfield Y coordinate,
// pointing at the vertical center of that row.
func (v Viewport) ToFieldY(row int) float64 {
	local := float64(row-v.OriginY) + 0.5
	return ClampF(local*v.FieldH/float64(v.Rows), 0, v.FieldH)
}
