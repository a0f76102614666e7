package maze

import "testing"

// feasibleConfig returns radii that pass the traversability check for
// the given lattice shape with a ball radius of 6.
func feasibleConfig(rings, slices int, seed uint32) Config {
	return Config{
		Rings:       rings,
		Slices:      slices,
		Seed:        seed,
		InnerRadius: 40,
		OuterRadius: 240,
		BallRadius:  6,
	}
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := feasibleConfig(4, 16, 1234)
	p := DefaultParams()
	p.ExitOffset = 5 // pin the exit so the whole outcome is comparable

	m1 := Generate(cfg, p)
	m2 := Generate(cfg, p)

	if !m1.Grid.Equal(m2.Grid) {
		t.Error("identical seed/config/params produced different grids")
	}
	if m1.Exit != m2.Exit {
		t.Errorf("exit sectors differ: %+v vs %+v", m1.Exit, m2.Exit)
	}
	if m1.SeedUsed != m2.SeedUsed {
		t.Errorf("seeds used differ: %d vs %d", m1.SeedUsed, m2.SeedUsed)
	}
}

func TestUniversalSolvability(t *testing.T) {
	shapes := []struct{ rings, slices int }{
		{2, 4},
		{4, 16},
		{6, 12},
	}
	for _, shape := range shapes {
		for seed := uint32(0); seed < 50; seed++ {
			cfg := feasibleConfig(shape.rings, shape.slices, seed)
			m := Generate(cfg, DefaultParams())
			sol := Solve(m.Grid, m.Exit)
			if !sol.Solvable {
				t.Fatalf("rings=%d slices=%d seed=%d: unsolvable maze", shape.rings, shape.slices, seed)
			}
		}
	}
}

func TestPathShape(t *testing.T) {
	cfg := feasibleConfig(6, 12, 7)
	m := Generate(cfg, DefaultParams())
	sol := Solve(m.Grid, m.Exit)

	if !sol.Solvable || len(sol.Path) == 0 {
		t.Fatal("expected a solvable maze with a non-empty path")
	}
	if sol.Path[0].Ring != 0 {
		t.Errorf("path starts at ring %d, want 0", sol.Path[0].Ring)
	}
	if last := sol.Path[len(sol.Path)-1]; last.Ring != cfg.Rings-1 {
		t.Errorf("path ends at ring %d, want %d", last.Ring, cfg.Rings-1)
	}
}

func TestExitWallsCleared(t *testing.T) {
	for seed := uint32(0); seed < 10; seed++ {
		cfg := feasibleConfig(4, 16, seed)
		m := Generate(cfg, DefaultParams())

		for i := 0; i < m.Exit.SliceCount; i++ {
			slice := (m.Exit.SliceStart + i) % cfg.Slices
			if m.Grid.At(cfg.Rings-1, slice).Outer {
				t.Errorf("seed %d: exit slice %d still has its outer wall", seed, slice)
			}
		}
	}
}

func TestWallPairsAgree(t *testing.T) {
	cfg := feasibleConfig(6, 12, 99)
	m := Generate(cfg, DefaultParams())
	g := m.Grid

	for ring := 0; ring < cfg.Rings; ring++ {
		for slice := 0; slice < cfg.Slices; slice++ {
			c := g.At(ring, slice)
			if ring < cfg.Rings-1 && c.Outer != g.At(ring+1, slice).Inner {
				t.Errorf("outer/inner mismatch at ring=%d slice=%d", ring, slice)
			}
			if c.CW != g.At(ring, slice+1).CCW {
				t.Errorf("cw/ccw mismatch at ring=%d slice=%d", ring, slice)
			}
		}
	}
}

func TestEntryGapsExist(t *testing.T) {
	cfg := feasibleConfig(4, 16, 3)
	m := Generate(cfg, DefaultParams())

	gaps := 0
	for s := 0; s < cfg.Slices; s++ {
		if !m.Grid.At(0, s).Inner {
			gaps++
		}
	}
	if gaps < 2 {
		t.Errorf("found %d entry gaps on ring 0, want at least 2", gaps)
	}
}

func TestExitOffsetHonored(t *testing.T) {
	cfg := feasibleConfig(4, 16, 11)
	p := DefaultParams()
	p.ExitOffset = 9
	m := Generate(cfg, p)
	if m.Fallback {
		t.Skip("fallback maze ignores the exit offset")
	}
	if m.Exit.SliceStart != 9 {
		t.Errorf("exit starts at slice %d, want 9", m.Exit.SliceStart)
	}
}

func TestInfeasibleGeometryFallsBack(t *testing.T) {
	cfg := Config{
		Rings:       4,
		Slices:      8,
		Seed:        1,
		InnerRadius: 2,
		OuterRadius: 10,
		BallRadius:  6,
	}
	m := Generate(cfg, DefaultParams())

	if !m.Fallback {
		t.Fatal("infeasible geometry must produce the fallback maze")
	}
	if m.Exit.SliceCount < 2 {
		t.Errorf("fallback exit width = %d, want >= 2", m.Exit.SliceCount)
	}
	if sol := Solve(m.Grid, m.Exit); !sol.Solvable {
		t.Error("fallback maze must be solvable by construction")
	}
}

func TestConcreteScenario(t *testing.T) {
	cfg := Config{
		Rings:       4,
		Slices:      8,
		Seed:        42,
		InnerRadius: 30,
		OuterRadius: 200,
		BallRadius:  6,
	}
	m := Generate(cfg, DefaultParams())
	sol := Solve(m.Grid, m.Exit)

	if !sol.Solvable {
		t.Fatal("scenario maze must be solvable")
	}
	if len(sol.Path) == 0 {
		t.Fatal("scenario path must be non-empty")
	}
	if sol.Path[0].Ring != 0 {
		t.Errorf("path[0].Ring = %d, want 0", sol.Path[0].Ring)
	}
	if last := sol.Path[len(sol.Path)-1]; last.Ring != 3 {
		t.Errorf("last path ring = %d, want 3", last.Ring)
	}
}

func TestNormalizedMinimums(t *testing.T) {
	cfg := Config{Rings: 0, Slices: -3}.Normalized()
	if cfg.Rings != 1 || cfg.Slices != 1 {
		t.Errorf("Normalized() = rings %d slices %d, want 1 and 1", cfg.Rings, cfg.Slices)
	}
}

func TestParamsClamped(t *testing.T) {
	p := Params{
		WallDensity:    5,
		Branchiness:    -1,
		CorridorWidth:  0,
		RadialDensity:  2,
		DecoyRate:      9,
		PathLengthBias: -4,
		ExitOffset:     -7,
		ExitWidth:      100,
	}.Clamped()

	if p.WallDensity != MaxWallDensity {
		t.Errorf("WallDensity = %v", p.WallDensity)
	}
	if p.Branchiness != MinBranchiness {
		t.Errorf("Branchiness = %v", p.Branchiness)
	}
	if p.CorridorWidth != MinCorridorWidth {
		t.Errorf("CorridorWidth = %v", p.CorridorWidth)
	}
	if p.RadialDensity != MaxRadialDensity {
		t.Errorf("RadialDensity = %v", p.RadialDensity)
	}
	if p.DecoyRate != MaxDecoyRate {
		t.Errorf("DecoyRate = %v", p.DecoyRate)
	}
	if p.PathLengthBias != MinPathLengthBias {
		t.Errorf("PathLengthBias = %v", p.PathLengthBias)
	}
	if p.ExitOffset != -1 {
		t.Errorf("ExitOffset = %v, want -1", p.ExitOffset)
	}
	if p.ExitWidth != MaxExitWidth {
		t.Errorf("ExitWidth = %v", p.ExitWidth)
	}
}
