package breakout

import "math"

// Snapshot contains the complete simulation state for replay and
// determinism checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	SessionID string // Not part of the hash
	Tick      uint64
	State     string

	PaddleX float64
	BallX   float64
	BallY   float64
	BallDX  float64
	BallDY  float64

	Score           int
	Lives           int
	BricksRemaining int

	// Brick states, row-major, 1 = alive
	BrickData []int

	RNGState uint64
}

// Snapshot returns the world state as a Snapshot. The run state is supplied
// by the caller because the world does not own it.
func (w *World) Snapshot(state string) Snapshot {
	brickData := make([]int, len(w.bricks.bricks))
	for i, b := range w.bricks.bricks {
		if b.Alive {
			brickData[i] = 1
		}
	}

	return Snapshot{
		SessionID: w.sessionID,
		Tick:      uint64(w.tick), //#nosec G115 -- tick count is always positive
		State:     state,

		PaddleX: w.paddle.X,
		BallX:   w.ball.X,
		BallY:   w.ball.Y,
		BallDX:  w.ball.DX,
		BallDY:  w.ball.DY,

		Score:           w.score,
		Lives:           w.lives,
		BricksRemaining: w.bricks.CountAlive(),

		BrickData: brickData,
		RNGState:  w.rng.state,
	}
}

// ApplySnapshot restores world state from a snapshot taken from a world
// with the same configuration.
func (w *World) ApplySnapshot(snap Snapshot) {
	w.sessionID = snap.SessionID
	w.tick = int(snap.Tick) //#nosec G115 -- tick count fits in int
	w.paddle.X = snap.PaddleX
	w.ball.X, w.ball.Y = snap.BallX, snap.BallY
	w.ball.DX, w.ball.DY = snap.BallDX, snap.BallDY
	w.score = snap.Score
	w.lives = snap.Lives

	if len(snap.BrickData) == len(w.bricks.bricks) {
		for i := range w.bricks.bricks {
			w.bricks.bricks[i].Alive = snap.BrickData[i] == 1
		}
	}
	w.finished = w.lives == 0 || w.bricks.CountAlive() == 0

	w.rng.state = snap.RNGState
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
