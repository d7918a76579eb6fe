package breakout

// SimpleRNG is a deterministic pseudo-random number generator (64-bit LCG).
// Sessions seeded with the same value serve the ball the same way.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Bool returns a coin flip. Uses the high bit; the low bits of an LCG
// alternate with a short period.
func (r *SimpleRNG) Bool() bool {
	return r.Next()>>63 == 1
}

// Sign returns -1 or +1 with equal probability.
func (r *SimpleRNG) Sign() float64 {
	if r.Bool() {
		return 1
	}
	return -1
}
