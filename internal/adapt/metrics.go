// Package adapt closes the difficulty loop: it observes the player's
// behavior during an attempt, folds it into a smoothed cross-attempt
// profile and maps the profile back into generation parameters for the
// next maze.
package adapt

import (
	"math"

	"github.com/mkraev/tiltmaze/internal/geom"
	"github.com/mkraev/tiltmaze/internal/maze"
)

// Behavioral thresholds used by the tracker.
const (
	// IdleSpeedThreshold is the speed below which a tick counts as idle.
	IdleSpeedThreshold = 8.0

	// RiskRadiusFraction of the outer radius beyond which a tick counts
	// as boundary-risk time.
	RiskRadiusFraction = 0.8
)

// Tracker accumulates behavioral statistics during exactly one attempt.
// A new attempt gets a new tracker.
type Tracker struct {
	cfg maze.Config

	ticks            int
	elapsed          float64
	speedSum         float64
	idleTicks        int
	riskTicks        int
	collisions       int
	directionChanges int
	visited          map[int]struct{}
}

// NewTracker creates a tracker scoped to one attempt on the given maze
// geometry.
func NewTracker(cfg maze.Config) *Tracker {
	return &Tracker{
		cfg:     cfg.Normalized(),
		visited: make(map[int]struct{}),
	}
}

// RecordTick observes one physics tick: the ball's position in the
// maze's local frame, its speed and the tick duration.
func (t *Tracker) RecordTick(pos geom.Vec2, speed, dt float64) {
	t.ticks++
	t.elapsed += dt
	t.speedSum += speed

	if speed < IdleSpeedThreshold {
		t.idleTicks++
	}
	r := pos.Len()
	if r > t.cfg.OuterRadius*RiskRadiusFraction {
		t.riskTicks++
	}

	if ring, slice, ok := t.cellAt(pos, r); ok {
		t.visited[ring*t.cfg.Slices+slice] = struct{}{}
	}
}

// RecordCollision adds resolved wall hits from the physics layer.
func (t *Tracker) RecordCollision(hits int) {
	t.collisions += hits
}

// RecordDirectionChange notes that the player's steering input
// reversed.
func (t *Tracker) RecordDirectionChange() {
	t.directionChanges++
}

// cellAt converts a local-frame position to a lattice cell. Positions
// inside the central void or beyond the rim are not lattice cells.
func (t *Tracker) cellAt(pos geom.Vec2, r float64) (ring, slice int, ok bool) {
	if r < t.cfg.InnerRadius || r >= t.cfg.OuterRadius {
		return 0, 0, false
	}
	ring = int((r - t.cfg.InnerRadius) / t.cfg.RingWidth())
	if ring >= t.cfg.Rings {
		ring = t.cfg.Rings - 1
	}

	angle := math.Atan2(pos.Y, pos.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	slice = int(angle/t.cfg.SliceAngle()) % t.cfg.Slices
	return ring, slice, true
}

// Snapshot is the immutable, normalized summary of one finished
// attempt: averages and ratios instead of running sums.
type Snapshot struct {
	Ticks            int
	Elapsed          float64
	AvgSpeed         float64
	IdleRatio        float64
	RiskRatio        float64
	Collisions       int
	DirectionChanges int
	Coverage         float64
}

// Snapshot normalizes the accumulated values. A tracker that never saw
// a tick yields a zero snapshot.
func (t *Tracker) Snapshot() Snapshot {
	s := Snapshot{
		Ticks:            t.ticks,
		Elapsed:          t.elapsed,
		Collisions:       t.collisions,
		DirectionChanges: t.directionChanges,
	}
	if t.ticks > 0 {
		n := float64(t.ticks)
		s.AvgSpeed = t.speedSum / n
		s.IdleRatio = float64(t.idleTicks) / n
		s.RiskRatio = float64(t.riskTicks) / n
	}
	if total := t.cfg.CellCount(); total > 0 {
		s.Coverage = float64(len(t.visited)) / float64(total)
	}
	return s
}
