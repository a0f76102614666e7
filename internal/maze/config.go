// Package maze generates and validates circular labyrinths. The
// lattice is a ring/slice grid: rings are concentric annuli around a
// central void, slices are angular wedges that wrap modulo the slice
// count. Generation carves a randomized spanning tree, shapes wall
// density, places an exit sector and verifies solvability with BFS,
// retrying with incremented seeds until a solvable maze exists or a
// deterministic fallback is synthesized.
package maze

import "math"

// Config describes the fixed geometry of one maze. It is immutable for
// the duration of an attempt; derived quantities are computed on
// demand, never stored.
type Config struct {
	Rings      int
	Slices     int
	Seed       uint32
	InnerRadius float64 // radius of the central void
	OuterRadius float64
	BallRadius  float64
}

// Normalized returns a copy with ring and slice counts raised to the
// minimum of 1.
func (c Config) Normalized() Config {
	if c.Rings < 1 {
		c.Rings = 1
	}
	if c.Slices < 1 {
		c.Slices = 1
	}
	return c
}

// RingWidth returns the radial thickness of one ring.
func (c Config) RingWidth() float64 {
	return (c.OuterRadius - c.InnerRadius) / float64(c.Rings)
}

// RingInnerRadius returns the inner radius of the given ring.
func (c Config) RingInnerRadius(ring int) float64 {
	return c.InnerRadius + float64(ring)*c.RingWidth()
}

// RingOuterRadius returns the outer radius of the given ring.
func (c Config) RingOuterRadius(ring int) float64 {
	return c.InnerRadius + float64(ring+1)*c.RingWidth()
}

// SliceAngle returns the angular width of one slice in radians.
func (c Config) SliceAngle() float64 {
	return 2 * math.Pi / float64(c.Slices)
}

// CellCount returns the total number of lattice cells.
func (c Config) CellCount() int {
	return c.Rings * c.Slices
}
