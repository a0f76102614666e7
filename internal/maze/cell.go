package maze

// Wall identifies one of a cell's four walls.
type Wall int

const (
	WallInner Wall = iota // toward the center
	WallOuter             // away from the center
	WallCW                // toward slice+1
	WallCCW               // toward slice-1
)

// Cell carries the four wall flags of one lattice cell. True means the
// wall is present. A wall shared between two adjacent cells is stored
// on both sides and always agrees; OpenWall clears both flags together.
type Cell struct {
	Inner, Outer, CW, CCW bool
}

// Grid is the flat cell storage for one maze, indexed by
// ring*slices+slice. Adjacency is arithmetic (slice wraps modulo the
// slice count), never stored as links.
type Grid struct {
	rings  int
	slices int
	cells  []Cell
}

// NewGrid creates a grid with every wall present.
func NewGrid(rings, slices int) *Grid {
	g := &Grid{
		rings:  rings,
		slices: slices,
		cells:  make([]Cell, rings*slices),
	}
	for i := range g.cells {
		g.cells[i] = Cell{Inner: true, Outer: true, CW: true, CCW: true}
	}
	return g
}

// Rings returns the ring count.
func (g *Grid) Rings() int { return g.rings }

// Slices returns the slice count.
func (g *Grid) Slices() int { return g.slices }

// WrapSlice normalizes a slice index into [0, slices).
func (g *Grid) WrapSlice(s int) int {
	s %= g.slices
	if s < 0 {
		s += g.slices
	}
	return s
}

// At returns the cell at (ring, slice). The slice index wraps.
func (g *Grid) At(ring, slice int) *Cell {
	return &g.cells[ring*g.slices+g.WrapSlice(slice)]
}

// OpenWall clears a wall and the matching flag on the neighboring cell,
// keeping the shared-wall invariant. Ring-0 inner walls and last-ring
// outer walls have no neighbor; only the local flag is cleared.
func (g *Grid) OpenWall(ring, slice int, w Wall) {
	c := g.At(ring, slice)
	switch w {
	case WallInner:
		c.Inner = false
		if ring > 0 {
			g.At(ring-1, slice).Outer = false
		}
	case WallOuter:
		c.Outer = false
		if ring < g.rings-1 {
			g.At(ring+1, slice).Inner = false
		}
	case WallCW:
		c.CW = false
		g.At(ring, slice+1).CCW = false
	case WallCCW:
		c.CCW = false
		g.At(ring, slice-1).CW = false
	}
}

// WallCount returns the number of wall flags currently set across the
// grid. Shared walls count twice; the value is only used for relative
// density statistics.
func (g *Grid) WallCount() int {
	n := 0
	for i := range g.cells {
		c := &g.cells[i]
		if c.Inner {
			n++
		}
		if c.Outer {
			n++
		}
		if c.CW {
			n++
		}
		if c.CCW {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have identical dimensions and wall
// flags.
func (g *Grid) Equal(o *Grid) bool {
	if g.rings != o.rings || g.slices != o.slices {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
