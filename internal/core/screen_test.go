package core

import (
	"strings"
	"testing"
	"time"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '█', ColorRed)
	c := s.GetCell(5, 5)
	if c.Rune != '█' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red block", c)
	}
	if s.Get(5, 5) != '█' {
		t.Errorf("Get(5, 5) = %q, expected '█'", s.Get(5, 5))
	}

	// Out of bounds writes are ignored, reads are blank
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.FillRect(NewRect(0, 0, 4, 3), '#', ColorBlue)
	s.Clear()

	if strings.TrimSpace(strings.ReplaceAll(s.String(), "\n", "")) != "" {
		t.Errorf("after Clear, screen should be blank, got %q", s.String())
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Score: 10", ColorYellow)

	if !strings.HasPrefix(s.Row(1), "  Score: 10") {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.GetCell(2, 1).Color != ColorYellow {
		t.Error("DrawTextColored should set the color")
	}

	// Clipped at the right boundary
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("DrawTextCentered placed text wrong: %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawHLine(0, 1, 3, '-')

	if got := s.String(); got != "abc\n---" {
		t.Errorf("String() = %q, expected %q", got, "abc\n---")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if len(s.Row(3)) != 8 {
		t.Errorf("row length should be 8, got %d", len(s.Row(3)))
	}

	// Negative sizes collapse to empty
	s.Resize(-1, -1)
	if s.String() != "" {
		t.Errorf("empty screen should render as empty string, got %q", s.String())
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(200), ""},
	}

	for _, tt := range tests {
		if got := tt.c.ANSI(); got != tt.want {
			t.Errorf("Color(%d).ANSI() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestRuntimeConfigInterval(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Interval(); got != time.Second/60 {
		t.Errorf("Interval() = %v, want %v", got, time.Second/60)
	}

	cfg.TickRate = 0
	if got := cfg.Interval(); got != time.Second/DefaultTickRate {
		t.Errorf("Interval() with no rate = %v", got)
	}
}
