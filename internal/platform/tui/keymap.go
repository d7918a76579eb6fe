package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Terminals send repeated presses while a key is down but no release, and
// the first repeat only arrives after the auto-repeat delay. A fresh press is
// held long enough to bridge that delay; once repeats flow, a short window
// ends the hold soon after the key comes up.
const (
	pressHold  = 500 * time.Millisecond
	repeatHold = 150 * time.Millisecond
)

// holdWindow is how long a steering key counts as held after a press.
func holdWindow(repeat bool) time.Duration {
	if repeat {
		return repeatHold
	}
	return pressHold
}

// KeyMap defines the key bindings for the play view.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Start   key.Binding
	Restart key.Binding
	Pause   key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Start, k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// directionFor maps steering actions to paddle directions.
func directionFor(a core.Action) breakout.Direction {
	switch a {
	case core.ActionLeft:
		return breakout.DirLeft
	case core.ActionRight:
		return breakout.DirRight
	}
	return breakout.DirNone
}

// opposite returns the other steering direction.
func opposite(d breakout.Direction) breakout.Direction {
	switch d {
	case breakout.DirLeft:
		return breakout.DirRight
	case breakout.DirRight:
		return breakout.DirLeft
	}
	return breakout.DirNone
}

// releaseMsg synthesizes a key release once the hold window passes without
// another press of the same key.
type releaseMsg struct {
	Dir breakout.Direction
	Seq uint64
}

func releaseCmd(d breakout.Direction, seq uint64, hold time.Duration) tea.Cmd {
	return tea.Tick(hold, func(time.Time) tea.Msg {
		return releaseMsg{Dir: d, Seq: seq}
	})
}
