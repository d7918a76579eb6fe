package breakout

// autopilotOffsets are paddle-width fractions added to the aim point so the
// ball leaves the paddle at varying angles. All stay inside the paddle span.
var autopilotOffsets = []float64{0, -0.3, 0.15, 0.35, -0.15, -0.35, 0.3}

// autopilotPeriod is how many ticks each offset is held.
const autopilotPeriod = 90

// Autopilot steers the paddle with pointer input. It is deterministic so
// headless runs with the same seed always end the same way.
type Autopilot struct {
	ticks int
}

// NewAutopilot creates an autopilot.
func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Aim returns the pointer x for the next tick.
func (a *Autopilot) Aim(f Frame) float64 {
	offset := autopilotOffsets[(a.ticks/autopilotPeriod)%len(autopilotOffsets)]
	a.ticks++
	return f.Ball.X + offset*f.Paddle.W
}

// RunHeadless drives a started loop with the autopilot until the session
// ends or maxTicks ticks have fired (maxTicks <= 0 means no cap). It returns
// the number of ticks fired.
func RunHeadless(loop *Loop, sched *ManualScheduler, pilot *Autopilot, maxTicks int) int {
	fired := 0
	for maxTicks <= 0 || fired < maxTicks {
		loop.Input().PointerMove(pilot.Aim(loop.Frame()))
		if !sched.Fire() {
			break
		}
		fired++
	}
	return fired
}
