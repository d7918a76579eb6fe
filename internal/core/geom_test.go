package core

import (
	"math"
	"testing"
)

func TestCircleRectOverlap(t *testing.T) {
	brick := RectF{X: 100, Y: 100, W: 60, H: 30}

	tests := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{"center inside", Circle{X: 130, Y: 115, R: 5}, true},
		{"touching left edge is not overlap", Circle{X: 90, Y: 115, R: 10}, false},
		{"just past left edge", Circle{X: 90.5, Y: 115, R: 10}, true},
		{"touching top edge is not overlap", Circle{X: 130, Y: 80, R: 20}, false},
		{"below rect", Circle{X: 130, Y: 160, R: 20}, false},
		{"overlapping right edge", Circle{X: 175, Y: 115, R: 20}, true},
		{"far right", Circle{X: 200, Y: 115, R: 20}, false},
		// Bounding box overlaps the corner even though the circle itself does not.
		{"corner false positive", Circle{X: 85, Y: 85, R: 20}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleRectOverlap(tc.c, brick); got != tc.expected {
				t.Errorf("CircleRectOverlap(%+v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestCornerFalsePositiveIsOutsideCircle(t *testing.T) {
	c := Circle{X: 85, Y: 85, R: 20}
	dist := math.Hypot(100-c.X, 100-c.Y)
	if dist <= c.R {
		t.Fatalf("test setup: corner distance %f should exceed radius %f", dist, c.R)
	}
	if !CircleRectOverlap(c, RectF{X: 100, Y: 100, W: 60, H: 30}) {
		t.Error("bounding-box test should report overlap near the corner")
	}
}

func TestReflect(t *testing.T) {
	v := Vec{X: 4, Y: -4}

	rx := Reflect(v, AxisX)
	if rx.X != -4 || rx.Y != -4 {
		t.Errorf("Reflect(AxisX) = %+v, expected {-4 -4}", rx)
	}

	ry := Reflect(v, AxisY)
	if ry.X != 4 || ry.Y != 4 {
		t.Errorf("Reflect(AxisY) = %+v, expected {4 4}", ry)
	}

	if rx.Len() != v.Len() || ry.Len() != v.Len() {
		t.Error("Reflect should preserve magnitude")
	}

	// Input must not be modified
	if v.X != 4 || v.Y != -4 {
		t.Errorf("Reflect modified its input: %+v", v)
	}
}

func TestVecLen(t *testing.T) {
	if got := (Vec{X: 3, Y: 4}).Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
}

func TestRectFEdges(t *testing.T) {
	r := RectF{X: 35, Y: 80, W: 60, H: 30}
	if r.Right() != 95 {
		t.Errorf("Right() = %f, expected 95", r.Right())
	}
	if r.Bottom() != 110 {
		t.Errorf("Bottom() = %f, expected 110", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{340, 0, 680, 340},
		{-5.5, 0, 680, 0},
		{700, 0, 680, 680},
		{0, 0, 680, 0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 || Max(10, 5) != 10 || Max(-1, -3) != -1 {
		t.Error("Max returned wrong values")
	}
}
