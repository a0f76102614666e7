package physics

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced Clock for deterministic tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestStepperRunsFixedTicks(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	s := NewStepper(clock, 120)

	s.Advance(func(float64) { t.Fatal("first frame has no elapsed time") })

	ticks := 0
	clock.advance(time.Second)
	s.Advance(func(dt float64) {
		ticks++
		if dt != 1.0/120 {
			t.Fatalf("dt = %v, want %v", dt, 1.0/120)
		}
	})
	// One second is not an exact multiple of the float tick interval,
	// so allow the boundary tick to land either side.
	if ticks < 119 || ticks > 120 {
		t.Errorf("one second at 120 Hz ran %d ticks, want 119-120", ticks)
	}
}

func TestStepperClampsStall(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	s := NewStepper(clock, 120)
	s.Advance(func(float64) {})

	// A ten second stall must be clamped to the max frame delta.
	ticks := 0
	clock.advance(10 * time.Second)
	s.Advance(func(float64) { ticks++ })

	want := int(maxFrameDelta * 120)
	if ticks < want-1 || ticks > want {
		t.Errorf("stalled frame ran %d ticks, want about %d", ticks, want)
	}
}

func TestStepperResidualFraction(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	s := NewStepper(clock, 100) // dt = 10ms
	s.Advance(func(float64) {})

	clock.advance(25 * time.Millisecond)
	alpha := s.Advance(func(float64) {})

	if alpha < 0 || alpha >= 1 {
		t.Fatalf("alpha = %v, want [0, 1)", alpha)
	}
	// 25ms = 2 ticks + 5ms residual = 0.5 of a tick
	if alpha < 0.49 || alpha > 0.51 {
		t.Errorf("alpha = %v, want about 0.5", alpha)
	}
}

func TestStepperAccumulatesAcrossFrames(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	s := NewStepper(clock, 100)
	s.Advance(func(float64) {})

	ticks := 0
	for i := 0; i < 4; i++ {
		clock.advance(6 * time.Millisecond)
		s.Advance(func(float64) { ticks++ })
	}
	// 24ms total at 10ms per tick
	if ticks != 2 {
		t.Errorf("ran %d ticks over 24ms, want 2", ticks)
	}
}

func TestStepperReset(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	s := NewStepper(clock, 100)
	s.Advance(func(float64) {})

	clock.advance(7 * time.Millisecond)
	s.Advance(func(float64) {})

	s.Reset()
	clock.advance(time.Hour)

	// After a reset the next frame starts a fresh interval; the hour
	// that passed while paused must not run any ticks.
	ticks := 0
	s.Advance(func(float64) { ticks++ })
	if ticks != 0 {
		t.Errorf("reset stepper ran %d ticks, want 0", ticks)
	}
}

func TestStepperDefaultRate(t *testing.T) {
	s := NewStepper(&fakeClock{}, 0)
	if s.TickInterval() != 1/DefaultTickRate {
		t.Errorf("TickInterval = %v, want %v", s.TickInterval(), 1/DefaultTickRate)
	}
}
