package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// BrickView is one brick as the renderer sees it.
type BrickView struct {
	Rect       core.RectF
	Alive      bool
	ColorIndex int
}

// Result is the end-of-session message.
type Result struct {
	Kind  State // StateWon or StateGameOver
	Score int
}

// Frame is a read-only copy of everything needed to draw one picture.
type Frame struct {
	State   State
	Score   int
	Lives   int
	Surface core.Vec
	Paddle  core.RectF
	Ball    core.Circle
	Bricks  []BrickView
	Result  *Result // Set once the session is over
}

// frame copies the world into a Frame.
func (w *World) frame(state State) Frame {
	f := Frame{
		State:   state,
		Score:   w.score,
		Lives:   w.lives,
		Surface: w.Surface(),
		Paddle:  w.paddle.Rect(),
		Ball:    w.ball.Circle(),
		Bricks:  make([]BrickView, 0, w.bricks.Rows*w.bricks.Cols),
	}
	for row := range w.bricks.Rows {
		for col := range w.bricks.Cols {
			b := w.bricks.At(row, col)
			f.Bricks = append(f.Bricks, BrickView{
				Rect:       w.bricks.Rect(row, col),
				Alive:      b.Alive,
				ColorIndex: b.ColorIndex,
			})
		}
	}
	if state == StateWon || state == StateGameOver {
		f.Result = &Result{Kind: state, Score: w.score}
	}
	return f
}
