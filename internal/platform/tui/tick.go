// Package tui provides the Bubble Tea integration for breakout.
// It handles the terminal UI loop, input mapping, and frame scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// TickMsg is sent to run the scheduled simulation tick. Gen identifies the
// Schedule call that produced it.
type TickMsg struct {
	Gen uint64
}

// frameScheduler implements breakout.Scheduler on top of tea.Tick. Bubble Tea
// commands cannot be cancelled, so every Schedule or Cancel bumps a
// generation counter and stale TickMsgs are dropped on arrival.
type frameScheduler struct {
	interval time.Duration
	gen      uint64
	pending  func()
	armed    bool // A tick command must be issued for gen
}

var _ breakout.Scheduler = (*frameScheduler)(nil)

func newFrameScheduler(interval time.Duration) *frameScheduler {
	return &frameScheduler{interval: interval}
}

// Schedule implements breakout.Scheduler.
func (s *frameScheduler) Schedule(fn func()) {
	s.gen++
	s.pending = fn
	s.armed = true
}

// Cancel implements breakout.Scheduler.
func (s *frameScheduler) Cancel() {
	s.gen++
	s.pending = nil
	s.armed = false
}

// Cmd returns the tick command for the latest Schedule call, once.
func (s *frameScheduler) Cmd() tea.Cmd {
	if !s.armed {
		return nil
	}
	s.armed = false
	gen := s.gen
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}

// Handle runs the pending callback if msg is current. It reports whether
// anything ran.
func (s *frameScheduler) Handle(msg TickMsg) bool {
	if msg.Gen != s.gen || s.pending == nil {
		return false
	}
	fn := s.pending
	s.pending = nil
	fn()
	return true
}
