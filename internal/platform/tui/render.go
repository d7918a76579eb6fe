package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// colorStyles caches one lipgloss style per core.Color.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}()

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	wonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	lostStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		runColor := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(runColor).Render(run.String()))
			run.Reset()
		}
	}
	return sb.String()
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// statusLine is the footer prefix describing the session outcome or pause.
func statusLine(state breakout.State, result *breakout.Result) string {
	switch {
	case result != nil && result.Kind == breakout.StateWon:
		return wonStyle.Render(fmt.Sprintf("YOU WIN! %d", result.Score))
	case result != nil:
		return lostStyle.Render(fmt.Sprintf("GAME OVER %d", result.Score))
	case state == breakout.StatePaused:
		return pausedStyle.Render("PAUSED")
	}
	return ""
}
