package physics

import "time"

// DefaultTickRate is the physics simulation rate in Hz. The terminal
// frontend delivers frames at its own variable rate; the stepper banks
// real time and spends it in fixed-size ticks.
const DefaultTickRate = 120.0

// maxFrameDelta caps how much banked time a single frame may add, so a
// stalled process does not trigger an unbounded catch-up burst.
const maxFrameDelta = 0.25

// Clock supplies wall-clock time. Injecting it keeps the stepper (and
// everything above it) testable without real elapsed time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real-time Clock used outside of tests.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// Stepper decouples variable frame delivery from the constant physics
// rate using the accumulator pattern.
type Stepper struct {
	clock   Clock
	dt      float64
	acc     float64
	last    time.Time
	started bool
}

// NewStepper creates a stepper running at the given tick rate.
func NewStepper(clock Clock, tickRate float64) *Stepper {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Stepper{clock: clock, dt: 1 / tickRate}
}

// TickInterval returns the fixed tick duration in seconds.
func (s *Stepper) TickInterval() float64 { return s.dt }

// Reset discards banked time; the next Advance starts a fresh frame
// interval. Called when an attempt restarts.
func (s *Stepper) Reset() {
	s.acc = 0
	s.started = false
}

// Advance consumes the real time elapsed since the previous call and
// runs the tick function once per fixed interval it covers. Returns the
// residual interpolation fraction in [0, 1) for rendering between the
// last two physics states.
func (s *Stepper) Advance(tick func(dt float64)) float64 {
	now := s.clock.Now()
	if !s.started {
		s.last = now
		s.started = true
	}

	delta := now.Sub(s.last).Seconds()
	s.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > maxFrameDelta {
		delta = maxFrameDelta
	}

	s.acc += delta
	for s.acc >= s.dt {
		tick(s.dt)
		s.acc -= s.dt
	}
	return s.acc / s.dt
}
