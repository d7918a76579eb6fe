package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// footerRows is the space below the play area reserved for help.
const footerRows = 1

// frameSink is the breakout.Renderer for the TUI. It keeps the latest frame
// for View, which Bubble Tea calls after every Update.
type frameSink struct {
	frame  breakout.Frame
	result *breakout.Result
}

var _ breakout.Renderer = (*frameSink)(nil)

func (s *frameSink) Draw(f breakout.Frame) { s.frame = f }

func (s *frameSink) ShowResult(r breakout.Result) { s.result = &r }

func (s *frameSink) HideResult() { s.result = nil }

// Model is the Bubble Tea model for playing breakout.
type Model struct {
	loop     *breakout.Loop
	sched    *frameScheduler
	sink     *frameSink
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	surfaceW float64
	holdSeq  [3]uint64 // Indexed by breakout.Direction
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model with an idle loop. The player starts the session.
func NewModel(cfg config.BreakoutConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := newFrameScheduler(rt.Interval())
	sink := &frameSink{}
	loop := breakout.NewLoop(cfg, rt.Seed, sched, sink, breakout.WithLogger(logger))
	sink.Draw(loop.Frame())

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		loop:     loop,
		sched:    sched,
		sink:     sink,
		screen:   core.NewScreen(rt.ScreenW, max(rt.ScreenH-footerRows, 0)),
		keys:     DefaultKeyMap(),
		help:     h,
		surfaceW: cfg.Surface.Width,
		logger:   logger,
	}
}

// Loop returns the loop the model drives.
func (m Model) Loop() *breakout.Loop {
	return m.loop
}

// Init implements tea.Model. Nothing ticks until the player starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case TickMsg:
		m.sched.Handle(msg)

	case releaseMsg:
		if msg.Seq == m.holdSeq[msg.Dir] {
			m.loop.Input().KeyUp(msg.Dir)
		}
	}

	return m, tea.Batch(cmd, m.sched.Cmd())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.loop.Stop()
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight:
		d := directionFor(action)
		input := m.loop.Input()
		repeat := input.Held(d)
		input.KeyUp(opposite(d))
		input.KeyDown(d)
		m.holdSeq[d]++
		return m, releaseCmd(d, m.holdSeq[d], holdWindow(repeat))

	case core.ActionStart:
		switch m.loop.State() {
		case breakout.StatePaused:
			m.loop.Resume()
		case breakout.StateRunning:
		default:
			m.loop.Start()
		}

	case core.ActionRestart:
		m.loop.Restart()

	case core.ActionPause:
		m.loop.TogglePause()
	}

	return m, nil
}

// handleMouse feeds pointer motion into the input controller.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if m.screen.Width() == 0 {
		return
	}
	x := breakout.SurfaceX(msg.X, m.screen.Width(), m.surfaceW)
	m.loop.Input().PointerMove(x)
}

// handleResize processes window resize events. The surface is fixed, so
// the session keeps going at the new scale.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 0))
	m.help.Width = msg.Width
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	breakout.Render(m.screen, m.sink.frame)

	footer := helpStyle.Render(m.help.View(m.keys))
	if status := statusLine(m.sink.frame.State, m.sink.result); status != "" {
		footer = status + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program with a new model.
func Run(cfg config.BreakoutConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer steering without a button held
	)

	_, err := p.Run()
	model.Loop().Stop()
	return err
}
