// Package core provides fundamental types and utilities for the breakout engine.
// It imports no terminal libraries.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
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

// Vec is a 2D vector in surface units (position or velocity).
type Vec struct {
	X, Y float64
}

// Len returns the magnitude of the vector.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Circle is a circle on the play surface.
type Circle struct {
	X, Y float64 // Center
	R    float64 // Radius
}

// RectF is an axis-aligned rectangle on the play surface.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Axis selects a vector component.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// CircleRectOverlap reports whether the circle's bounding box overlaps the
// rectangle on both axes. This is a bounding-box test, not a true distance test:
// a circle just outside a corner still counts as overlapping.
func CircleRectOverlap(c Circle, r RectF) bool {
	return c.X+c.R > r.X &&
		c.X-c.R < r.Right() &&
		c.Y+c.R > r.Y &&
		c.Y-c.R < r.Bottom()
}

// Reflect negates the velocity component along the given axis.
func Reflect(v Vec, axis Axis) Vec {
	switch axis {
	case AxisX:
		v.X = -v.X
	case AxisY:
		v.Y = -v.Y
	}
	return v
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
