package maze

import (
	"github.com/mkraev/tiltmaze/internal/rng"
)

const (
	// maxRetries bounds how many seed increments one Generate call may
	// burn before synthesizing the fallback maze.
	maxRetries = 20

	// clearanceMargin is the slack required around the ball diameter
	// for a corridor to count as traversable.
	clearanceMargin = 2.0
)

// ExitSector is a contiguous run of slices on the outermost ring whose
// outer wall is cleared.
type ExitSector struct {
	SliceStart int
	SliceCount int
}

// Contains reports whether the given slice falls inside the sector,
// accounting for wrap-around.
func (e ExitSector) Contains(slice, slices int) bool {
	for i := 0; i < e.SliceCount; i++ {
		if (e.SliceStart+i)%slices == slice {
			return true
		}
	}
	return false
}

// Maze is a generated, validated labyrinth. It is replaced wholesale on
// reset and never mutated after construction.
type Maze struct {
	Grid   *Grid
	Config Config
	Params Params
	Exit   ExitSector

	// SeedUsed is the seed that actually produced the grid; it differs
	// from Config.Seed when retries were needed.
	SeedUsed uint32
	Retries  int
	Fallback bool
}

// Generate builds a solvable maze from the config and tunables.
// Unsolvable or geometrically infeasible outcomes trigger a retry with
// the seed incremented by one; after maxRetries the deterministic
// fallback maze is returned, so generation never fails.
func Generate(cfg Config, p Params) *Maze {
	cfg = cfg.Normalized()
	p = p.Clamped()

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if !feasible(cfg, p) {
			continue
		}

		seed := rng.AttemptSeed(cfg.Seed, attempt)
		r := rng.New(seed)

		g := carve(cfg, p, r)
		openEntryGaps(g, r)
		addBranchOpenings(g, p, r)
		capTangentialWalls(g, p, r)
		shaveRadialWalls(g, p, r)
		addDecoys(g, p, r)
		exit := placeExit(g, p, r)
		forceRadialPath(g, exit)

		if Solve(g, exit).Solvable {
			return &Maze{
				Grid:     g,
				Config:   cfg,
				Params:   p,
				Exit:     exit,
				SeedUsed: seed,
				Retries:  attempt,
			}
		}
	}

	return fallbackMaze(cfg, p)
}

// feasible rejects geometry the ball physically cannot traverse: both
// the ring thickness and the innermost arc length must exceed the ball
// diameter plus margin, scaled by the corridor width tunable.
func feasible(cfg Config, p Params) bool {
	need := (2*cfg.BallRadius + clearanceMargin) * p.CorridorWidth
	if cfg.RingWidth() <= need {
		return false
	}
	innerArc := cfg.SliceAngle() * cfg.InnerRadius
	return innerArc > need
}

// carve runs a randomized iterative depth-first search over the
// lattice, removing walls along the traversal so every cell becomes
// reachable. Tangential moves are weighted over radial ones, which
// winds corridors around the rings instead of radiating outward.
func carve(cfg Config, p Params, r *rng.Rand) *Grid {
	g := NewGrid(cfg.Rings, cfg.Slices)
	visited := make([]bool, cfg.CellCount())

	type move struct {
		ring, slice int
		wall        Wall
		weight      float64
	}

	tangential := 4 * (1 + p.PathLengthBias)

	start := r.IntN(0, cfg.Slices)
	stack := []CellRef{{Ring: 0, Slice: start}}
	visited[start] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var moves []move
		var total float64
		consider := func(ring, slice int, wall Wall, weight float64) {
			slice = g.WrapSlice(slice)
			if !visited[ring*cfg.Slices+slice] {
				moves = append(moves, move{ring, slice, wall, weight})
				total += weight
			}
		}
		if cur.Ring > 0 {
			consider(cur.Ring-1, cur.Slice, WallInner, 1)
		}
		if cur.Ring < cfg.Rings-1 {
			consider(cur.Ring+1, cur.Slice, WallOuter, 1)
		}
		consider(cur.Ring, cur.Slice+1, WallCW, tangential)
		consider(cur.Ring, cur.Slice-1, WallCCW, tangential)

		if len(moves) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		pick := r.Float() * total
		chosen := moves[len(moves)-1]
		for _, m := range moves {
			pick -= m.weight
			if pick < 0 {
				chosen = m
				break
			}
		}

		g.OpenWall(cur.Ring, cur.Slice, chosen.wall)
		visited[chosen.ring*cfg.Slices+chosen.slice] = true
		stack = append(stack, CellRef{Ring: chosen.ring, Slice: chosen.slice})
	}

	return g
}

// openEntryGaps clears 2-3 evenly spaced inner walls on ring 0 so the
// ball can enter the lattice from the central void at multiple points.
func openEntryGaps(g *Grid, r *rng.Rand) {
	count := r.IntN(2, 4)
	if count > g.Slices() {
		count = g.Slices()
	}
	base := r.IntN(0, g.Slices())
	for i := 0; i < count; i++ {
		g.OpenWall(0, base+i*g.Slices()/count, WallInner)
	}
}

// addBranchOpenings removes walls beyond the spanning tree to create
// alternate loops, preferring radial walls so the extra routes cut
// across rings rather than just widening corridors.
func addBranchOpenings(g *Grid, p Params, r *rng.Rand) {
	count := int(float64(g.Rings()*g.Slices()) * p.Branchiness)
	for i := 0; i < count; i++ {
		ring := r.IntN(0, g.Rings())
		slice := r.IntN(0, g.Slices())
		c := g.At(ring, slice)

		if r.Float() < 0.7 {
			if ring < g.Rings()-1 && c.Outer {
				g.OpenWall(ring, slice, WallOuter)
				continue
			}
			if ring > 0 && c.Inner {
				g.OpenWall(ring, slice, WallInner)
				continue
			}
		}
		if c.CW {
			g.OpenWall(ring, slice, WallCW)
		}
	}
}

// capTangentialWalls limits tangential wall density: alternating rings
// become full circular corridors, the rest retain each tangential wall
// only with probability RadialDensity.
func capTangentialWalls(g *Grid, p Params, r *rng.Rand) {
	for ring := 0; ring < g.Rings(); ring++ {
		for slice := 0; slice < g.Slices(); slice++ {
			if !g.At(ring, slice).CW {
				continue
			}
			if ring%2 == 0 || r.Float() >= p.RadialDensity {
				g.OpenWall(ring, slice, WallCW)
			}
		}
	}
}

// shaveRadialWalls applies the global wall-density shaping: each
// remaining interior radial wall survives with probability WallDensity.
// Ring-0 inner walls and the outer rim are never touched here.
func shaveRadialWalls(g *Grid, p Params, r *rng.Rand) {
	for ring := 0; ring < g.Rings()-1; ring++ {
		for slice := 0; slice < g.Slices(); slice++ {
			if g.At(ring, slice).Outer && r.Float() >= p.WallDensity {
				g.OpenWall(ring, slice, WallOuter)
			}
		}
	}
}

// addDecoys opens extra tangential walls at random, producing short
// false corridors that wind around rings without leading outward.
func addDecoys(g *Grid, p Params, r *rng.Rand) {
	count := int(float64(g.Rings()*g.Slices()) * p.DecoyRate * 0.5)
	for i := 0; i < count; i++ {
		ring := r.IntN(0, g.Rings())
		slice := r.IntN(0, g.Slices())
		if g.At(ring, slice).CW {
			g.OpenWall(ring, slice, WallCW)
		}
	}
}

// placeExit clears the outer wall of a contiguous run of slices on the
// outermost ring.
func placeExit(g *Grid, p Params, r *rng.Rand) ExitSector {
	width := p.ExitWidth
	if width > g.Slices() {
		width = g.Slices()
	}

	var start int
	if p.ExitOffset >= 0 {
		start = g.WrapSlice(p.ExitOffset)
	} else {
		start = r.IntN(0, g.Slices())
	}

	for i := 0; i < width; i++ {
		g.OpenWall(g.Rings()-1, start+i, WallOuter)
	}
	return ExitSector{SliceStart: start, SliceCount: width}
}

// forceRadialPath clears any remaining radial walls along the exit's
// start slice, guaranteeing an uninterrupted line from ring 0 to the
// outer ring regardless of how the randomized carving turned out.
func forceRadialPath(g *Grid, exit ExitSector) {
	for ring := 0; ring < g.Rings()-1; ring++ {
		if g.At(ring, exit.SliceStart).Outer {
			g.OpenWall(ring, exit.SliceStart, WallOuter)
		}
	}
}

// fallbackMaze synthesizes a maze that is solvable by construction: a
// full tangential corridor on every ring, one radial connection per
// ring boundary and an exit at least two slices wide.
func fallbackMaze(cfg Config, p Params) *Maze {
	g := NewGrid(cfg.Rings, cfg.Slices)

	for ring := 0; ring < cfg.Rings; ring++ {
		for slice := 0; slice < cfg.Slices; slice++ {
			g.OpenWall(ring, slice, WallCW)
		}
	}
	for ring := 0; ring < cfg.Rings-1; ring++ {
		g.OpenWall(ring, ring%cfg.Slices, WallOuter)
	}

	g.OpenWall(0, 0, WallInner)
	if cfg.Slices > 1 {
		g.OpenWall(0, cfg.Slices/2, WallInner)
	}

	width := p.ExitWidth
	if width < 2 {
		width = 2
	}
	if width > cfg.Slices {
		width = cfg.Slices
	}
	for i := 0; i < width; i++ {
		g.OpenWall(cfg.Rings-1, i, WallOuter)
	}

	return &Maze{
		Grid:     g,
		Config:   cfg,
		Params:   p,
		Exit:     ExitSector{SliceStart: 0, SliceCount: width},
		SeedUsed: rng.AttemptSeed(cfg.Seed, maxRetries),
		Retries:  maxRetries,
		Fallback: true,
	}
}
