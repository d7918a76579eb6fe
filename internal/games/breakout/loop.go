package breakout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// State is the loop's run state.
type State int

const (
	StateIdle State = iota // Laid out, waiting for Start
	StateRunning
	StatePaused
	StateGameOver
	StateWon
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Renderer receives frames and the result message. Implementations must not
// hold on to the Frame's slices after Draw returns.
type Renderer interface {
	Draw(f Frame)
	ShowResult(r Result)
	HideResult()
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the loop's logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loop owns the world and drives it one tick per scheduled frame.
type Loop struct {
	world  *World
	input  *InputController
	sched  Scheduler
	view   Renderer // May be nil
	state  State
	result *Result
	logger *log.Logger
}

// NewLoop creates an idle loop. Nothing ticks until Start.
func NewLoop(cfg config.BreakoutConfig, seed int64, sched Scheduler, view Renderer, opts ...Option) *Loop {
	l := &Loop{
		world:  NewWorld(cfg, seed),
		input:  NewInputController(),
		sched:  sched,
		view:   view,
		state:  StateIdle,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start begins a fresh session from any state.
func (l *Loop) Start() {
	l.sched.Cancel()
	l.world.Reset()
	l.input.Reset()
	l.result = nil
	l.state = StateRunning

	if l.view != nil {
		l.view.HideResult()
	}
	l.draw()
	l.logger.Info("session started",
		"session", l.world.SessionID(),
		"lives", l.world.Lives(),
		"bricks", l.world.Bricks().CountAlive())
	l.sched.Schedule(l.tick)
}

// Restart is Start; it is valid in every state.
func (l *Loop) Restart() {
	l.Start()
}

// Pause suspends a running session. The pending tick is revoked.
func (l *Loop) Pause() {
	if l.state != StateRunning {
		return
	}
	l.sched.Cancel()
	l.state = StatePaused
	l.draw()
	l.logger.Debug("paused", "session", l.world.SessionID(), "tick", l.world.Tick())
}

// Resume continues a paused session.
func (l *Loop) Resume() {
	if l.state != StatePaused {
		return
	}
	l.state = StateRunning
	l.draw()
	l.logger.Debug("resumed", "session", l.world.SessionID(), "tick", l.world.Tick())
	l.sched.Schedule(l.tick)
}

// TogglePause switches between Running and Paused.
func (l *Loop) TogglePause() {
	switch l.state {
	case StateRunning:
		l.Pause()
	case StatePaused:
		l.Resume()
	}
}

// Stop revokes the pending tick without changing state.
func (l *Loop) Stop() {
	l.sched.Cancel()
}

// State returns the current run state.
func (l *Loop) State() State {
	return l.state
}

// Frame returns a copy of the current picture.
func (l *Loop) Frame() Frame {
	return l.world.frame(l.state)
}

// Result returns the end-of-session message once the session is over.
func (l *Loop) Result() (Result, bool) {
	if l.result == nil {
		return Result{}, false
	}
	return *l.result, true
}

// Input returns the controller the UI records key and pointer events on.
func (l *Loop) Input() *InputController {
	return l.input
}

// Ticks returns the number of steps since the session started.
func (l *Loop) Ticks() int {
	return l.world.Tick()
}

// Snapshot returns the simulation state including the run state.
func (l *Loop) Snapshot() Snapshot {
	return l.world.Snapshot(l.state.String())
}

// tick draws the current state, advances the world one step and schedules
// the next tick unless the session ended.
func (l *Loop) tick() {
	if l.state != StateRunning {
		return
	}
	l.draw()

	res := l.world.Step(l.input.Intent())
	if res.BrickHit {
		l.logger.Debug("brick destroyed",
			"session", l.world.SessionID(),
			"row", res.BrickRow,
			"col", res.BrickCol,
			"score", l.world.Score(),
			"tick", l.world.Tick())
	}

	switch res.Outcome {
	case OutcomeWon:
		l.finish(StateWon)
		return
	case OutcomeGameOver:
		l.finish(StateGameOver)
		return
	case OutcomeLifeLost:
		l.logger.Debug("life lost",
			"session", l.world.SessionID(),
			"lives", l.world.Lives(),
			"tick", l.world.Tick())
	}

	l.sched.Schedule(l.tick)
}

// finish moves to a terminal state and shows the result.
func (l *Loop) finish(state State) {
	l.sched.Cancel()
	l.state = state
	l.result = &Result{Kind: state, Score: l.world.Score()}

	l.draw()
	if l.view != nil {
		l.view.ShowResult(*l.result)
	}
	l.logger.Info("session ended",
		"session", l.world.SessionID(),
		"state", state,
		"score", l.world.Score(),
		"lives", l.world.Lives(),
		"tick", l.world.Tick())
}

func (l *Loop) draw() {
	if l.view != nil {
		l.view.Draw(l.Frame())
	}
}
