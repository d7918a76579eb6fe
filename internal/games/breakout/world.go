package breakout

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Outcome is the session-level effect of one simulation step.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeLifeLost         // Ball dropped, lives remain, ball respawned
	OutcomeWon              // Last brick destroyed
	OutcomeGameOver         // Last life lost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeLifeLost:
		return "life-lost"
	case OutcomeWon:
		return "won"
	case OutcomeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// StepResult reports what happened during one step.
type StepResult struct {
	Outcome      Outcome
	WallBounce   bool
	PaddleBounce bool
	BrickHit     bool
	BrickRow     int
	BrickCol     int
}

// World is the mutable session: entities, score and lives. It is owned by
// the Loop; everything else sees Frame copies.
type World struct {
	cfg config.BreakoutConfig

	paddle Paddle
	ball   Ball
	bricks *BrickGrid

	score     int
	lives     int
	tick      int
	finished  bool // Won or game over; further steps are no-ops
	sessionID string

	rng *SimpleRNG
}

// NewWorld creates a world laid out for a fresh session.
func NewWorld(cfg config.BreakoutConfig, seed int64) *World {
	w := &World{
		cfg:    cfg,
		bricks: NewBrickGrid(cfg.Bricks),
		rng:    NewSimpleRNG(seed),
	}
	w.Reset()
	return w
}

// Reset restores score, lives, paddle, ball and bricks. The RNG keeps
// running so every reset serves with a fresh random direction.
func (w *World) Reset() {
	w.score = 0
	w.lives = w.cfg.Gameplay.Lives
	w.tick = 0
	w.finished = false
	w.sessionID = uuid.NewString()

	w.paddle = Paddle{
		X:      w.cfg.Surface.Width/2 - w.cfg.Paddle.Width/2,
		Y:      w.cfg.Surface.Height - w.cfg.Paddle.BottomOffset,
		Width:  w.cfg.Paddle.Width,
		Height: w.cfg.Paddle.Height,
		Speed:  w.cfg.Paddle.Speed,
	}
	w.ball.Radius = w.cfg.Ball.Radius
	w.respawnBall()
	w.bricks.Reset()
}

// respawnBall puts the ball at the surface center moving up, with a random
// horizontal direction.
func (w *World) respawnBall() {
	speed := w.cfg.Ball.LaunchSpeed
	w.ball.X = w.cfg.Surface.Width / 2
	w.ball.Y = w.cfg.Surface.Height / 2
	w.ball.DX = speed * w.rng.Sign()
	w.ball.DY = -speed
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Lives returns the remaining lives.
func (w *World) Lives() int {
	return w.lives
}

// Tick returns the number of steps taken since the last reset.
func (w *World) Tick() int {
	return w.tick
}

// Finished reports whether the session reached Won or GameOver.
func (w *World) Finished() bool {
	return w.finished
}

// SessionID returns the id assigned at the last reset.
func (w *World) SessionID() string {
	return w.sessionID
}

// Paddle returns a copy of the paddle.
func (w *World) Paddle() Paddle {
	return w.paddle
}

// Ball returns a copy of the ball.
func (w *World) Ball() Ball {
	return w.ball
}

// Bricks returns the brick grid. Callers must treat it as read-only.
func (w *World) Bricks() *BrickGrid {
	return w.bricks
}

// Surface returns the play surface size.
func (w *World) Surface() core.Vec {
	return core.Vec{X: w.cfg.Surface.Width, Y: w.cfg.Surface.Height}
}
