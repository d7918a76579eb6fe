package breakout

import "testing"

func TestInputIntent(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *InputController)
		want  Intent
	}{
		{
			name:  "nothing held",
			setup: func(c *InputController) {},
			want:  Intent{Kind: IntentStationary},
		},
		{
			name:  "left",
			setup: func(c *InputController) { c.KeyDown(DirLeft) },
			want:  Intent{Kind: IntentLeft},
		},
		{
			name:  "right",
			setup: func(c *InputController) { c.KeyDown(DirRight) },
			want:  Intent{Kind: IntentRight},
		},
		{
			name: "left wins ties",
			setup: func(c *InputController) {
				c.KeyDown(DirRight)
				c.KeyDown(DirLeft)
			},
			want: Intent{Kind: IntentLeft},
		},
		{
			name: "release left falls back to right",
			setup: func(c *InputController) {
				c.KeyDown(DirLeft)
				c.KeyDown(DirRight)
				c.KeyUp(DirLeft)
			},
			want: Intent{Kind: IntentRight},
		},
		{
			name:  "pointer tracks",
			setup: func(c *InputController) { c.PointerMove(250) },
			want:  Intent{Kind: IntentTrack, X: 250},
		},
		{
			name: "pointer wins over held keys",
			setup: func(c *InputController) {
				c.KeyDown(DirLeft)
				c.PointerMove(300)
			},
			want: Intent{Kind: IntentTrack, X: 300},
		},
		{
			name: "key press takes control from pointer",
			setup: func(c *InputController) {
				c.PointerMove(300)
				c.KeyDown(DirRight)
			},
			want: Intent{Kind: IntentRight},
		},
		{
			name: "key release keeps pointer mode",
			setup: func(c *InputController) {
				c.KeyDown(DirLeft)
				c.PointerMove(120)
				c.KeyUp(DirLeft)
			},
			want: Intent{Kind: IntentTrack, X: 120},
		},
		{
			name: "other keys are ignored",
			setup: func(c *InputController) {
				c.PointerMove(80)
				c.KeyDown(DirNone)
			},
			want: Intent{Kind: IntentTrack, X: 80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewInputController()
			tt.setup(c)
			if got := c.Intent(); got != tt.want {
				t.Errorf("Intent() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInputIntentIsIdempotent(t *testing.T) {
	c := NewInputController()
	c.KeyDown(DirRight)

	for range 3 {
		if got := c.Intent(); got.Kind != IntentRight {
			t.Fatalf("Intent() = %+v, want right", got)
		}
	}
}

func TestInputReset(t *testing.T) {
	c := NewInputController()
	c.KeyDown(DirLeft)
	c.KeyDown(DirRight)
	c.PointerMove(10)

	c.Reset()

	if c.Held(DirLeft) || c.Held(DirRight) {
		t.Error("keys still held after Reset")
	}
	if got := c.Intent(); got.Kind != IntentStationary {
		t.Errorf("Intent() = %+v, want stationary", got)
	}
}
