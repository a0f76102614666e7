package maze

// CellRef identifies a lattice cell by ring and slice.
type CellRef struct {
	Ring  int
	Slice int
}

// Solution is the result of a solvability check. When Solvable, Path
// runs from a ring-0 cell to a cell inside the exit sector.
type Solution struct {
	Solvable bool
	Path     []CellRef
}

// Solve runs a breadth-first search seeded from every ring-0 cell (the
// ball may enter the lattice through any opened hole) and explores
// through cleared walls only. It succeeds the first time it dequeues a
// cell inside the exit sector whose outer wall is clear; standard BFS
// layer order with a fixed neighbor enumeration makes the reconstructed
// path deterministic.
func Solve(g *Grid, exit ExitSector) Solution {
	rings, slices := g.Rings(), g.Slices()
	total := rings * slices

	parent := make([]int, total)
	visited := make([]bool, total)
	for i := range parent {
		parent[i] = -1
	}

	queue := make([]int, 0, total)
	for s := 0; s < slices; s++ {
		visited[s] = true
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]

		ring, slice := idx/slices, idx%slices
		c := g.At(ring, slice)

		if ring == rings-1 && !c.Outer && exit.Contains(slice, slices) {
			return Solution{Solvable: true, Path: reconstruct(parent, idx, slices)}
		}

		visit := func(nRing, nSlice int) {
			nSlice = g.WrapSlice(nSlice)
			nIdx := nRing*slices + nSlice
			if !visited[nIdx] {
				visited[nIdx] = true
				parent[nIdx] = idx
				queue = append(queue, nIdx)
			}
		}
		if ring > 0 && !c.Inner {
			visit(ring-1, slice)
		}
		if ring < rings-1 && !c.Outer {
			visit(ring+1, slice)
		}
		if !c.CW {
			visit(ring, slice+1)
		}
		if !c.CCW {
			visit(ring, slice-1)
		}
	}

	return Solution{}
}

// reconstruct walks parent back-pointers from the exit cell to the
// ring-0 start cell that discovered it, then reverses into start→exit
// order.
func reconstruct(parent []int, idx, slices int) []CellRef {
	var path []CellRef
	for i := idx; i != -1; i = parent[i] {
		path = append(path, CellRef{Ring: i / slices, Slice: i % slices})
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
