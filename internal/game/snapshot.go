package game

import "math"

// Snapshot captures the simulation state for determinism checks.
// Float fields are stored as raw bits so two runs either match exactly
// or not at all.
type Snapshot struct {
	Tick      int
	Attempt   int
	Completed int
	State     string

	Angle  uint64
	BallX  uint64
	BallY  uint64
	BallVX uint64
	BallVY uint64

	SeedUsed  uint32
	Fallback  bool
	WallCount int
	ExitStart int
	ExitWidth int
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tickCount,
		Attempt:   g.attempt,
		Completed: g.completed,
		State:     g.state,

		Angle:  math.Float64bits(g.angle),
		BallX:  math.Float64bits(g.ball.Pos.X),
		BallY:  math.Float64bits(g.ball.Pos.Y),
		BallVX: math.Float64bits(g.ball.Vel.X),
		BallVY: math.Float64bits(g.ball.Vel.Y),

		SeedUsed:  g.labyrinth.SeedUsed,
		Fallback:  g.labyrinth.Fallback,
		WallCount: g.labyrinth.Grid.WallCount(),
		ExitStart: g.labyrinth.Exit.SliceStart,
		ExitWidth: g.labyrinth.Exit.SliceCount,
	}
}

// Hash folds the snapshot into a single value for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- tick count is always positive
	h = h*31 + uint64(snap.Attempt)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Completed) //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	h = h*31 + snap.Angle
	h = h*31 + snap.BallX
	h = h*31 + snap.BallY
	h = h*31 + snap.BallVX
	h = h*31 + snap.BallVY
	h = h*31 + uint64(snap.SeedUsed)
	if snap.Fallback {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.WallCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ExitStart) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ExitWidth) //#nosec G115 -- hash computation
	return h
}
