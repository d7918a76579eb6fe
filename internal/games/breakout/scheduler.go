package breakout

// Scheduler runs one pending callback at the next frame. Schedule replaces
// any callback that has not fired yet; Cancel revokes it.
type Scheduler interface {
	Schedule(fn func())
	Cancel()
}

// ManualScheduler is a Scheduler driven by explicit Fire calls. Tests and
// headless runs use it to step the loop synchronously.
type ManualScheduler struct {
	pending func()
}

// NewManualScheduler creates a scheduler with nothing pending.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule implements Scheduler.
func (s *ManualScheduler) Schedule(fn func()) {
	s.pending = fn
}

// Cancel implements Scheduler.
func (s *ManualScheduler) Cancel() {
	s.pending = nil
}

// Pending reports whether a callback is waiting.
func (s *ManualScheduler) Pending() bool {
	return s.pending != nil
}

// Fire runs the pending callback, if any, and reports whether one ran.
// The callback is cleared before it runs so it may schedule its successor.
func (s *ManualScheduler) Fire() bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn()
	return true
}

// FireN fires up to n times and returns how many callbacks ran. It stops
// early once nothing is pending.
func (s *ManualScheduler) FireN(n int) int {
	fired := 0
	for fired < n && s.Fire() {
		fired++
	}
	return fired
}
