// Package physics advances a single circular body against static
// segment geometry. The ball lives in the maze's own un-rotated frame;
// screen-space gravity is rotated into that frame each tick, so the
// ball always falls visually downward no matter how far the labyrinth
// has been turned.
package physics

import "github.com/mkraev/tiltmaze/internal/geom"

// Ball is the only mutable kinematic state in the simulation, owned by
// the tick loop and updated in place.
type Ball struct {
	Pos    geom.Vec2
	Vel    geom.Vec2
	Radius float64
}

// Speed returns the current velocity magnitude.
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}
