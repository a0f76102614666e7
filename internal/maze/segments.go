package maze

import (
	"math"

	"github.com/mkraev/tiltmaze/internal/geom"
)

// BuildSegments converts a validated maze into collision geometry:
// every arc wall becomes a run of straight chords, every radial wall a
// single segment, so the physics layer needs exactly one collision
// routine. Called once per attempt, right after generation; the per-tick
// hot path only reads the result.
//
// Shared walls are stored on both adjacent cells but emitted once: arcs
// come from each cell's outer flag (plus the ring-0 inner boundary) and
// radial walls from each cell's clockwise flag. Emission order is fixed,
// which keeps sequential collision resolution deterministic.
func BuildSegments(m *Maze) []geom.Segment {
	cfg := m.Config
	g := m.Grid
	da := cfg.SliceAngle()
	chords := arcChordCount(da)
	center := geom.Vec2{}

	var segs []geom.Segment

	// Ring-0 inner boundary around the central void. Gaps were opened
	// by the generator's entry step.
	for s := 0; s < cfg.Slices; s++ {
		if g.At(0, s).Inner {
			a0 := float64(s) * da
			segs = append(segs, geom.TessellateArc(center, cfg.InnerRadius, a0, a0+da, chords)...)
		}
	}

	for ring := 0; ring < cfg.Rings; ring++ {
		rIn := cfg.RingInnerRadius(ring)
		rOut := cfg.RingOuterRadius(ring)
		for s := 0; s < cfg.Slices; s++ {
			c := g.At(ring, s)
			a0 := float64(s) * da

			// Outer arc; on the last ring this is the rim minus the
			// exit sector.
			if c.Outer {
				segs = append(segs, geom.TessellateArc(center, rOut, a0, a0+da, chords)...)
			}

			// Clockwise radial wall at the slice's far edge.
			if c.CW {
				a1 := a0 + da
				segs = append(segs, geom.Segment{
					A: geom.Vec2{X: rIn * math.Cos(a1), Y: rIn * math.Sin(a1)},
					B: geom.Vec2{X: rOut * math.Cos(a1), Y: rOut * math.Sin(a1)},
				})
			}
		}
	}

	return segs
}

// arcChordCount picks the tessellation resolution for one slice span,
// about one chord per 15 degrees with a floor of two.
func arcChordCount(sliceAngle float64) int {
	n := int(math.Ceil(sliceAngle / (math.Pi / 12)))
	if n < 2 {
		n = 2
	}
	return n
}
