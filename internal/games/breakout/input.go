package breakout

// Direction classifies a key event.
type Direction int

const (
	DirNone Direction = iota // Any key that does not steer the paddle
	DirLeft
	DirRight
)

// IntentKind is what the paddle should do this tick.
type IntentKind int

const (
	IntentStationary IntentKind = iota
	IntentLeft
	IntentRight
	IntentTrack // Center the paddle on X
)

// String returns a human-readable name for the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentStationary:
		return "stationary"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentTrack:
		return "track"
	default:
		return "unknown"
	}
}

// Intent is the paddle command consumed by one simulation step.
type Intent struct {
	Kind IntentKind
	X    float64 // Pointer x in surface coordinates, for IntentTrack
}

// InputController accumulates key and pointer events between ticks. It never
// touches the world; the simulation reads Intent() once per tick.
type InputController struct {
	leftHeld      bool
	rightHeld     bool
	pointerActive bool
	pointerX      float64
}

// NewInputController creates a controller with nothing held.
func NewInputController() *InputController {
	return &InputController{}
}

// KeyDown records a direction key press. Steering keys take control away
// from the pointer until it moves again.
func (c *InputController) KeyDown(d Direction) {
	switch d {
	case DirLeft:
		c.leftHeld = true
		c.pointerActive = false
	case DirRight:
		c.rightHeld = true
		c.pointerActive = false
	}
}

// KeyUp records a direction key release. Pointer mode is unaffected.
func (c *InputController) KeyUp(d Direction) {
	switch d {
	case DirLeft:
		c.leftHeld = false
	case DirRight:
		c.rightHeld = false
	}
}

// PointerMove records the pointer x relative to the surface origin and hands
// control to the pointer.
func (c *InputController) PointerMove(x float64) {
	c.pointerActive = true
	c.pointerX = x
}

// Held reports whether a direction key is currently held.
func (c *InputController) Held(d Direction) bool {
	switch d {
	case DirLeft:
		return c.leftHeld
	case DirRight:
		return c.rightHeld
	}
	return false
}

// Intent resolves the accumulated flags. Pointer wins over keys; left wins
// over right.
func (c *InputController) Intent() Intent {
	switch {
	case c.pointerActive:
		return Intent{Kind: IntentTrack, X: c.pointerX}
	case c.leftHeld:
		return Intent{Kind: IntentLeft}
	case c.rightHeld:
		return Intent{Kind: IntentRight}
	default:
		return Intent{Kind: IntentStationary}
	}
}

// Reset releases everything.
func (c *InputController) Reset() {
	*c = InputController{}
}
