package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// MaxBounceAngle is the launch angle off the paddle's edges, measured from vertical.
const MaxBounceAngle = math.Pi / 6

// Step advances the world by one tick. Order matters:
// paddle, ball, walls, paddle bounce, bricks, floor.
func (w *World) Step(in Intent) StepResult {
	var res StepResult
	if w.finished {
		return res
	}
	w.tick++

	w.movePaddle(in)
	w.ball.Move()
	res.WallBounce = w.bounceWalls()
	res.PaddleBounce = w.bouncePaddle()

	// A ball the paddle just sent up cannot also hit a brick this tick.
	if !res.PaddleBounce {
		if row, col, ok := w.bricks.FirstHit(w.ball.Circle()); ok {
			w.ball.Bounce(core.AxisY)
			w.bricks.destroy(row, col)
			w.score += w.cfg.Gameplay.BrickPoints
			res.BrickHit, res.BrickRow, res.BrickCol = true, row, col

			if w.bricks.CountAlive() == 0 {
				w.finished = true
				res.Outcome = OutcomeWon
				return res
			}
		}
	}

	if w.ball.Y+w.ball.Radius > w.cfg.Surface.Height {
		res.Outcome = w.loseLife()
	}
	return res
}

// movePaddle applies the intent and clamps the paddle to the surface.
func (w *World) movePaddle(in Intent) {
	switch in.Kind {
	case IntentTrack:
		w.paddle.X = in.X - w.paddle.Width/2
	case IntentLeft:
		w.paddle.X -= w.paddle.Speed
	case IntentRight:
		w.paddle.X += w.paddle.Speed
	}
	w.paddle.clamp(w.cfg.Surface.Width)
}

// bounceWalls reflects off the side walls and the ceiling. There is no floor.
// The new velocity always points away from the wall that was touched, so a
// ball still overlapping a wall on the next tick keeps its direction.
func (w *World) bounceWalls() bool {
	b := &w.ball
	bounced := false
	switch {
	case b.X-b.Radius < 0:
		b.DX = math.Abs(b.DX)
		bounced = true
	case b.X+b.Radius > w.cfg.Surface.Width:
		b.DX = -math.Abs(b.DX)
		bounced = true
	}
	if b.Y-b.Radius < 0 {
		b.DY = math.Abs(b.DY)
		bounced = true
	}
	return bounced
}

// bouncePaddle redirects the ball upward when its bottom has passed the
// paddle top and its center x is strictly inside the paddle span. The exit
// angle depends only on where it hit: center goes straight up, edges leave
// at MaxBounceAngle. Speed is kept.
func (w *World) bouncePaddle() bool {
	b := &w.ball
	p := &w.paddle
	if b.Y+b.Radius <= p.Y || b.X <= p.X || b.X >= p.X+p.Width {
		return false
	}

	hitPos := (b.X - p.X) / p.Width
	angle := (hitPos - 0.5) * 2 * MaxBounceAngle
	speed := b.Speed()
	b.DX = speed * math.Sin(angle)
	b.DY = -math.Abs(speed * math.Cos(angle))
	return true
}

// loseLife handles a ball that fell past the bottom edge.
func (w *World) loseLife() Outcome {
	w.lives = max(w.lives-1, 0)
	if w.lives == 0 {
		w.finished = true
		return OutcomeGameOver
	}
	w.respawnBall()
	return OutcomeLifeLost
}
