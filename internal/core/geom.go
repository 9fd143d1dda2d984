// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround returns the cell rectangle covering a w×h area centered on (cx, cy).
// Edges are rounded to the nearest cell so that the rectangle never shrinks
// below one cell for a positive size.
func RectAround(cx, cy, w, h float64) Rect {
	left := int(math.Round(cx - w/2))
	top := int(math.Round(cy - h/2))
	right := int(math.Round(cx + w/2))
	bottom := int(math.Round(cy + h/2))
	if w > 0 && right <= left {
		right = left + 1
	}
	if h > 0 && bottom <= top {
		bottom = top + 1
	}
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
