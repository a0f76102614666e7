package physics

import (
	"math"

	"github.com/mkraev/tiltmaze/internal/geom"
)

// Tuning bundles the integrator constants. Values are units per second
// except Friction, which is a per-tick multiplicative factor, and
// Restitution, the fraction of incoming normal velocity preserved after
// a bounce.
type Tuning struct {
	Gravity     float64
	Friction    float64
	MaxSpeed    float64
	Restitution float64
}

// DefaultTuning returns the gameplay constants the game ships with.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:     380,
		Friction:    0.995,
		MaxSpeed:    320,
		Restitution: 0.35,
	}
}

// Integrate advances the ball by one fixed tick using semi-implicit
// Euler. Gravity points straight down in screen space; rotating it by
// the negative maze angle yields the local components
// (G*sin(angle), G*cos(angle)).
func (t Tuning) Integrate(b *Ball, dt, mazeAngle float64) {
	g := geom.Vec2{
		X: t.Gravity * math.Sin(mazeAngle),
		Y: t.Gravity * math.Cos(mazeAngle),
	}

	b.Vel = b.Vel.Add(g.Scale(dt))
	b.Vel = b.Vel.Scale(t.Friction)

	if speed := b.Vel.Len(); speed > t.MaxSpeed {
		b.Vel = b.Vel.Scale(t.MaxSpeed / speed)
	}

	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Bounce pushes the ball out of the wall along the contact normal and
// reflects the normal velocity component scaled by 1+restitution. The
// reflection only applies while the ball still moves into the wall, so
// a ball already separating is never re-reflected.
func (t Tuning) Bounce(b *Ball, normal geom.Vec2, penetration float64) {
	b.Pos = b.Pos.Add(normal.Scale(penetration))

	vn := b.Vel.Dot(normal)
	if vn < 0 {
		b.Vel = b.Vel.Sub(normal.Scale((1 + t.Restitution) * vn))
	}
}

// BounceFn is the collision response invoked per resolved hit.
type BounceFn func(b *Ball, normal geom.Vec2, penetration float64)

// ResolveCollisions tests the ball against every segment once, in the
// slice's fixed order, and applies the bounce response for each hit.
// Simultaneous multi-segment contacts are resolved sequentially; a true
// corner hit may resolve slightly asymmetrically depending on segment
// order, which is acceptable at this tick rate and ball size. Returns
// the number of hits resolved.
func ResolveCollisions(b *Ball, segs []geom.Segment, bounce BounceFn) int {
	hits := 0
	for _, s := range segs {
		if hit, ok := geom.CircleSegment(b.Pos, b.Radius, s); ok {
			bounce(b, hit.Normal, hit.Penetration)
			hits++
		}
	}
	return hits
}
