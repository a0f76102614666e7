package maze

import "testing"

// corridorGrid builds a minimal hand-made maze: a radial corridor at
// slice 0 from ring 0 to the rim, exit at slice 0.
func corridorGrid(rings, slices int) (*Grid, ExitSector) {
	g := NewGrid(rings, slices)
	g.OpenWall(0, 0, WallInner)
	for ring := 0; ring < rings-1; ring++ {
		g.OpenWall(ring, 0, WallOuter)
	}
	g.OpenWall(rings-1, 0, WallOuter)
	return g, ExitSector{SliceStart: 0, SliceCount: 1}
}

func TestSolveStraightCorridor(t *testing.T) {
	g, exit := corridorGrid(4, 8)
	sol := Solve(g, exit)

	if !sol.Solvable {
		t.Fatal("straight corridor must be solvable")
	}
	if len(sol.Path) != 4 {
		t.Errorf("path length = %d, want 4", len(sol.Path))
	}
	for i, ref := range sol.Path {
		if ref.Ring != i || ref.Slice != 0 {
			t.Errorf("path[%d] = %+v, want ring %d slice 0", i, ref, i)
		}
	}
}

func TestSolveUnsolvable(t *testing.T) {
	g := NewGrid(3, 6)
	// Exit exists but no walls were ever opened toward it.
	g.At(2, 0).Outer = false
	sol := Solve(g, ExitSector{SliceStart: 0, SliceCount: 1})

	if sol.Solvable {
		t.Error("sealed grid must not be solvable")
	}
	if len(sol.Path) != 0 {
		t.Errorf("unsolvable result must carry an empty path, got %d cells", len(sol.Path))
	}
}

func TestSolveExitNeedsClearOuterWall(t *testing.T) {
	g := NewGrid(2, 4)
	// Full connectivity inside, but the exit sector's outer wall stays shut.
	for ring := 0; ring < 2; ring++ {
		for slice := 0; slice < 4; slice++ {
			g.OpenWall(ring, slice, WallCW)
		}
	}
	g.OpenWall(0, 0, WallOuter)

	if sol := Solve(g, ExitSector{SliceStart: 2, SliceCount: 1}); sol.Solvable {
		t.Error("reaching the exit cell is not enough; its outer wall must be clear")
	}
}

func TestSolveWrapsAroundSliceZero(t *testing.T) {
	g := NewGrid(2, 6)
	// Corridor that crosses the slice 5 -> 0 boundary.
	g.OpenWall(0, 5, WallCW) // connects slice 5 to slice 0
	g.OpenWall(0, 0, WallOuter)
	g.OpenWall(1, 0, WallOuter)

	sol := Solve(g, ExitSector{SliceStart: 0, SliceCount: 1})
	if !sol.Solvable {
		t.Fatal("wrap-around corridor must be solvable")
	}
}

func TestSolveDeterministicPath(t *testing.T) {
	cfg := feasibleConfig(4, 16, 21)
	m := Generate(cfg, DefaultParams())

	a := Solve(m.Grid, m.Exit)
	b := Solve(m.Grid, m.Exit)
	if len(a.Path) != len(b.Path) {
		t.Fatalf("path lengths differ: %d vs %d", len(a.Path), len(b.Path))
	}
	for i := range a.Path {
		if a.Path[i] != b.Path[i] {
			t.Fatalf("paths diverge at %d: %+v vs %+v", i, a.Path[i], b.Path[i])
		}
	}
}

func TestExitSectorContains(t *testing.T) {
	e := ExitSector{SliceStart: 6, SliceCount: 3}
	// Covers slices 6, 7, 0 in an 8-slice lattice.
	for _, want := range []int{6, 7, 0} {
		if !e.Contains(want, 8) {
			t.Errorf("sector should contain slice %d", want)
		}
	}
	for _, not := range []int{1, 5} {
		if e.Contains(not, 8) {
			t.Errorf("sector should not contain slice %d", not)
		}
	}
}
