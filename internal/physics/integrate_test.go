package physics

import (
	"math"
	"testing"

	"github.com/mkraev/tiltmaze/internal/geom"
)

const dt = 1.0 / DefaultTickRate

func TestSpeedNeverExceedsMax(t *testing.T) {
	tn := DefaultTuning()
	b := &Ball{Radius: 6}

	for i := 0; i < 5000; i++ {
		tn.Integrate(b, dt, 0)
		if s := b.Speed(); s > tn.MaxSpeed+1e-9 {
			t.Fatalf("tick %d: speed %v exceeds max %v", i, s, tn.MaxSpeed)
		}
	}
}

func TestFrictionDecaysSpeed(t *testing.T) {
	tn := DefaultTuning()
	tn.Gravity = 0
	b := &Ball{Vel: geom.Vec2{X: 100, Y: -40}, Radius: 6}

	prev := b.Speed()
	for i := 0; i < 2000; i++ {
		tn.Integrate(b, dt, 0)
		s := b.Speed()
		if s >= prev {
			t.Fatalf("tick %d: speed did not strictly decrease (%v -> %v)", i, prev, s)
		}
		prev = s
	}
	if prev > 1 {
		t.Errorf("speed %v after 2000 friction ticks, want near zero", prev)
	}
}

func TestGravityRotatesWithMaze(t *testing.T) {
	tn := DefaultTuning()
	tn.Friction = 1

	// Unrotated: gravity is +Y in the local frame.
	b := &Ball{Radius: 6}
	tn.Integrate(b, dt, 0)
	if b.Vel.X != 0 || b.Vel.Y <= 0 {
		t.Errorf("angle 0: velocity = %v, want pure +Y", b.Vel)
	}

	// Quarter turn: local gravity swings onto the X axis.
	b = &Ball{Radius: 6}
	tn.Integrate(b, dt, math.Pi/2)
	if math.Abs(b.Vel.Y) > 1e-9 || b.Vel.X <= 0 {
		t.Errorf("angle pi/2: velocity = %v, want pure +X", b.Vel)
	}
}

func TestBouncePushesOutAndReflects(t *testing.T) {
	tn := DefaultTuning()
	b := &Ball{
		Pos:    geom.Vec2{X: 0, Y: -1},
		Vel:    geom.Vec2{X: 3, Y: -10},
		Radius: 6,
	}
	normal := geom.Vec2{X: 0, Y: 1}

	tn.Bounce(b, normal, 2)

	if b.Pos.Y != 1 {
		t.Errorf("position not pushed out: %v", b.Pos)
	}
	wantVY := -10 + (1+tn.Restitution)*10
	if math.Abs(b.Vel.Y-wantVY) > 1e-9 {
		t.Errorf("reflected vy = %v, want %v", b.Vel.Y, wantVY)
	}
	if b.Vel.X != 3 {
		t.Errorf("tangential velocity changed: %v", b.Vel.X)
	}
}

func TestBounceSkipsSeparatingBall(t *testing.T) {
	tn := DefaultTuning()
	b := &Ball{Vel: geom.Vec2{X: 0, Y: 5}, Radius: 6}
	normal := geom.Vec2{X: 0, Y: 1}

	tn.Bounce(b, normal, 1)

	if b.Vel.Y != 5 {
		t.Errorf("separating ball was re-reflected: vy = %v", b.Vel.Y)
	}
	if b.Pos.Y != 1 {
		t.Errorf("positional correction must still apply: %v", b.Pos)
	}
}

func TestResolveCollisionsCountsHits(t *testing.T) {
	tn := DefaultTuning()
	segs := []geom.Segment{
		{A: geom.Vec2{X: -10, Y: 0}, B: geom.Vec2{X: 10, Y: 0}},   // close below
		{A: geom.Vec2{X: -10, Y: 100}, B: geom.Vec2{X: 10, Y: 100}}, // far away
	}
	b := &Ball{Pos: geom.Vec2{X: 0, Y: 4}, Vel: geom.Vec2{Y: -10}, Radius: 6}

	hits := ResolveCollisions(b, segs, tn.Bounce)
	if hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
	if b.Vel.Y <= 0 {
		t.Errorf("ball should bounce away from the wall, vy = %v", b.Vel.Y)
	}
}

func TestResolveCollisionsNoHits(t *testing.T) {
	tn := DefaultTuning()
	segs := []geom.Segment{
		{A: geom.Vec2{X: -10, Y: 50}, B: geom.Vec2{X: 10, Y: 50}},
	}
	b := &Ball{Pos: geom.Vec2{}, Radius: 6}

	if hits := ResolveCollisions(b, segs, tn.Bounce); hits != 0 {
		t.Errorf("hits = %d, want 0", hits)
	}
}
