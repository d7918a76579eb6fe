package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Rendering constants
const (
	PaddleChar  = '='
	BallChar    = '●'
	BrickGlyph  = '█'
	BorderHoriz = '─'

	// Smallest terminal the play area still makes sense on.
	MinScreenW = 30
	MinScreenH = 15

	hudRows = 2 // Score line + separator
)

// BrickColors maps a brick's ColorIndex to a cell color.
var BrickColors = [PaletteSize]core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorMagenta,
}

// Render draws a frame onto dst. The surface is scaled to the area below
// the HUD; anything that maps outside the screen is skipped.
func Render(dst *core.Screen, f Frame) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	v := newViewport(dst, f.Surface)

	renderHUD(dst, f)

	for _, b := range f.Bricks {
		if !b.Alive {
			continue
		}
		color := BrickColors[b.ColorIndex%PaletteSize]
		dst.FillRect(v.rect(b.Rect), BrickGlyph, color)
	}

	paddle := v.rect(f.Paddle)
	dst.FillRect(core.NewRect(paddle.X, paddle.Y, paddle.W, 1), PaddleChar, core.ColorCyan)

	bx, by := v.point(f.Ball.X, f.Ball.Y)
	if by >= hudRows {
		dst.SetColored(bx, by, BallChar, core.ColorWhite)
	}

	renderOverlay(dst, f)
}

// renderHUD draws the score, the lives and a separator.
func renderHUD(dst *core.Screen, f Frame) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", f.Score))

	lives := fmt.Sprintf("Lives: %d", f.Lives)
	dst.DrawText(dst.Width()-len(lives)-1, 0, lives)

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
}

// renderOverlay draws state messages on top of the play area.
func renderOverlay(dst *core.Screen, f Frame) {
	switch f.State {
	case StateIdle:
		drawCenteredBox(dst, "BREAKOUT", "Press SPACE to start")

	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver, StateWon:
		if f.Result != nil {
			title, subtitle := ResultText(*f.Result)
			drawCenteredBox(dst, title, subtitle)
		}
	}
}

// ResultText returns the title and subtitle of the end-of-session message.
func ResultText(r Result) (string, string) {
	title := "GAME OVER"
	if r.Kind == StateWon {
		title = "YOU WIN!"
	}
	return title, fmt.Sprintf("Score: %d  |  Press R to restart", r.Score)
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// viewport maps surface coordinates to screen cells.
type viewport struct {
	scaleX, scaleY float64
	top            int
}

func newViewport(dst *core.Screen, surface core.Vec) viewport {
	rows := dst.Height() - hudRows
	v := viewport{top: hudRows}
	if surface.X > 0 {
		v.scaleX = float64(dst.Width()) / surface.X
	}
	if surface.Y > 0 {
		v.scaleY = float64(rows) / surface.Y
	}
	return v
}

func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(x * v.scaleX)), v.top + int(math.Floor(y*v.scaleY))
}

// rect converts a surface rectangle to cells. Every visible rectangle
// covers at least one cell.
func (v viewport) rect(r core.RectF) core.Rect {
	x0, y0 := v.point(r.X, r.Y)
	x1, y1 := v.point(r.Right(), r.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// SurfaceX converts a screen column back to a surface x coordinate, used to
// feed mouse motion into the input controller.
func SurfaceX(col, screenW int, surfaceW float64) float64 {
	if screenW <= 0 {
		return 0
	}
	return (float64(col) + 0.5) * surfaceW / float64(screenW)
}
