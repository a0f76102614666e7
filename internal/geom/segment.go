package geom

import "math"

// Segment is an immutable line between two endpoints. Segments are
// built once per attempt and only read inside the physics tick.
type Segment struct {
	A, B Vec2
}

// Hit describes a circle-vs-segment contact. Normal points from the
// wall toward the circle center and has unit length.
type Hit struct {
	Normal      Vec2
	Penetration float64
}

// TessellateArc subdivides the angular span [a0, a1] around center into
// count straight chords. A count below 1 is treated as 1.
func TessellateArc(center Vec2, radius, a0, a1 float64, count int) []Segment {
	if count < 1 {
		count = 1
	}
	segs := make([]Segment, 0, count)
	step := (a1 - a0) / float64(count)
	for i := 0; i < count; i++ {
		t0 := a0 + float64(i)*step
		t1 := t0 + step
		segs = append(segs, Segment{
			A: Vec2{center.X + radius*math.Cos(t0), center.Y + radius*math.Sin(t0)},
			B: Vec2{center.X + radius*math.Cos(t1), center.Y + radius*math.Sin(t1)},
		})
	}
	return segs
}

// CircleSegment tests a circle against a segment. It projects the
// circle center onto the segment (clamped to its extent) and reports a
// hit when the center is strictly closer than radius. Degenerate cases
// (zero-length segment, center exactly on the wall) have no defined
// contact normal and report no hit.
func CircleSegment(center Vec2, radius float64, s Segment) (Hit, bool) {
	d := s.B.Sub(s.A)
	lenSq := d.LenSq()
	if lenSq == 0 {
		return Hit{}, false
	}

	t := center.Sub(s.A).Dot(d) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := s.A.Add(d.Scale(t))
	offset := center.Sub(closest)
	dist := offset.Len()
	if dist >= radius || dist < 1e-9 {
		return Hit{}, false
	}

	return Hit{
		Normal:      offset.Scale(1 / dist),
		Penetration: radius - dist,
	}, true
}
