// Package breakout implements a paddle-and-ball brick breaker: the entity
// model, the per-tick simulation and the loop controller that drives it.
// It has no terminal dependencies; internal/platform/tui adapts it to Bubble Tea.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// PaletteSize is the number of distinct brick colors; rows cycle through them.
const PaletteSize = 6

// Paddle is the player's bat. Y is fixed for the whole session.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Pixels per tick for keyboard movement
}

// Rect returns the paddle's bounding rectangle.
func (p *Paddle) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// clamp keeps the paddle inside [0, surfaceW-Width].
func (p *Paddle) clamp(surfaceW float64) {
	p.X = core.ClampF(p.X, 0, surfaceW-p.Width)
}

// Ball is the ball; X, Y is its center.
type Ball struct {
	X, Y   float64
	Radius float64
	DX, DY float64 // Velocity per tick
}

// Circle returns the ball's shape.
func (b *Ball) Circle() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, R: b.Radius}
}

// Velocity returns the velocity vector.
func (b *Ball) Velocity() core.Vec {
	return core.Vec{X: b.DX, Y: b.DY}
}

// SetVelocity replaces the velocity vector.
func (b *Ball) SetVelocity(v core.Vec) {
	b.DX, b.DY = v.X, v.Y
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return b.Velocity().Len()
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// Bounce reflects the velocity along an axis.
func (b *Ball) Bounce(axis core.Axis) {
	b.SetVelocity(core.Reflect(b.Velocity(), axis))
}

// Brick is one cell of the grid. Its position is derived from the grid layout.
type Brick struct {
	Alive      bool
	ColorIndex int
}

// BrickGrid is a fixed rows x cols grid of bricks stored row-major.
type BrickGrid struct {
	Rows, Cols int
	layout     config.BricksConfig
	bricks     []Brick
}

// NewBrickGrid creates a grid with every brick alive.
func NewBrickGrid(layout config.BricksConfig) *BrickGrid {
	g := &BrickGrid{
		Rows:   layout.Rows,
		Cols:   layout.Cols,
		layout: layout,
		bricks: make([]Brick, layout.Rows*layout.Cols),
	}
	g.Reset()
	return g
}

// Reset brings every brick back to life.
func (g *BrickGrid) Reset() {
	for row := range g.Rows {
		for col := range g.Cols {
			g.bricks[row*g.Cols+col] = Brick{Alive: true, ColorIndex: row % PaletteSize}
		}
	}
}

// At returns the brick at (row, col).
func (g *BrickGrid) At(row, col int) Brick {
	return g.bricks[row*g.Cols+col]
}

// Rect computes the brick's rectangle from its grid position.
func (g *BrickGrid) Rect(row, col int) core.RectF {
	l := g.layout
	return core.RectF{
		X: float64(col)*(l.Width+l.Padding) + l.OffsetLeft,
		Y: float64(row)*(l.Height+l.Padding) + l.OffsetTop,
		W: l.Width,
		H: l.Height,
	}
}

// destroy marks a brick as destroyed. Destroyed bricks never come back
// until Reset.
func (g *BrickGrid) destroy(row, col int) {
	g.bricks[row*g.Cols+col].Alive = false
}

// CountAlive returns the number of remaining bricks.
func (g *BrickGrid) CountAlive() int {
	count := 0
	for _, b := range g.bricks {
		if b.Alive {
			count++
		}
	}
	return count
}

// FirstHit scans alive bricks row-major and returns the first one the circle
// overlaps. Only one brick is reported even if several overlap.
func (g *BrickGrid) FirstHit(c core.Circle) (int, int, bool) {
	for row := range g.Rows {
		for col := range g.Cols {
			if !g.At(row, col).Alive {
				continue
			}
			if core.CircleRectOverlap(c, g.Rect(row, col)) {
				return row, col, true
			}
		}
	}
	return -1, -1, false
}
