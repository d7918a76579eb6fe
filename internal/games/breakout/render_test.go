package breakout

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestRenderIdleFrame(t *testing.T) {
	l := NewLoop(config.DefaultBreakoutConfig(), 1, NewManualScheduler(), nil)
	screen := core.NewScreen(80, 24)

	Render(screen, l.Frame())

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Lives: 3") {
		t.Errorf("HUD = %q", hud)
	}
	if !strings.Contains(screen.String(), "Press SPACE to start") {
		t.Error("idle frame should show the start prompt")
	}

	// Brick (0,0) starts at surface (35, 80).
	cell := screen.GetCell(3, 4)
	if cell.Rune != BrickGlyph || cell.Color != core.ColorRed {
		t.Errorf("brick cell = %+v, want red %q", cell, BrickGlyph)
	}
}

func TestRenderPaddleAndBall(t *testing.T) {
	l := NewLoop(config.DefaultBreakoutConfig(), 1, NewManualScheduler(), nil)
	l.Start()
	screen := core.NewScreen(80, 24)

	f := l.Frame()
	Render(screen, f)

	v := newViewport(screen, f.Surface)
	px, py := v.point(f.Paddle.X+f.Paddle.W/2, f.Paddle.Y)
	if got := screen.Get(px, py); got != PaddleChar {
		t.Errorf("paddle cell (%d, %d) = %q, want %q", px, py, got, PaddleChar)
	}
	bx, by := v.point(f.Ball.X, f.Ball.Y)
	if got := screen.Get(bx, by); got != BallChar {
		t.Errorf("ball cell (%d, %d) = %q, want %q", bx, by, got, BallChar)
	}
}

func TestRenderSkipsDestroyedBricks(t *testing.T) {
	l := NewLoop(config.DefaultBreakoutConfig(), 1, NewManualScheduler(), nil)
	l.world.bricks.destroy(0, 0)
	screen := core.NewScreen(80, 24)

	Render(screen, l.Frame())

	if got := screen.Get(3, 4); got == BrickGlyph {
		t.Error("destroyed brick was drawn")
	}
}

func TestRenderResult(t *testing.T) {
	tests := []struct {
		name  string
		state State
		title string
	}{
		{"game over", StateGameOver, "GAME OVER"},
		{"won", StateWon, "YOU WIN!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(config.DefaultBreakoutConfig(), 1)
			w.score = 70
			screen := core.NewScreen(80, 24)

			Render(screen, w.frame(tt.state))

			out := screen.String()
			if !strings.Contains(out, tt.title) {
				t.Errorf("missing %q", tt.title)
			}
			if !strings.Contains(out, "Score: 70  |  Press R to restart") {
				t.Error("missing restart hint")
			}
		})
	}
}

func TestRenderPaused(t *testing.T) {
	w := NewWorld(config.DefaultBreakoutConfig(), 1)
	screen := core.NewScreen(80, 24)

	Render(screen, w.frame(StatePaused))

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused frame should show PAUSED")
	}
}

func TestRenderTooSmall(t *testing.T) {
	w := NewWorld(config.DefaultBreakoutConfig(), 1)
	screen := core.NewScreen(20, 10)

	Render(screen, w.frame(StateRunning))

	out := screen.String()
	if !strings.Contains(out, "too small") {
		t.Errorf("expected placeholder, got:\n%s", out)
	}
	if strings.ContainsRune(out, BrickGlyph) {
		t.Error("bricks drawn on a too-small screen")
	}
}

func TestRenderEmptyFrame(t *testing.T) {
	screen := core.NewScreen(80, 24)

	// A zero Frame must not panic.
	Render(screen, Frame{})
}

func TestSurfaceX(t *testing.T) {
	tests := []struct {
		col, screenW int
		want         float64
	}{
		{0, 80, 5},
		{40, 80, 405},
		{79, 80, 795},
		{10, 0, 0},
	}

	for _, tt := range tests {
		if got := SurfaceX(tt.col, tt.screenW, 800); got != tt.want {
			t.Errorf("SurfaceX(%d, %d) = %v, want %v", tt.col, tt.screenW, got, tt.want)
		}
	}
}
