package adapt

import "github.com/mkraev/tiltmaze/internal/maze"

// Per-attempt rate limits: the most any parameter may move between two
// consecutive attempts, so one outlier run never whiplashes the maze.
const (
	rateWallDensity    = 0.08
	rateBranchiness    = 0.06
	rateCorridorWidth  = 0.08
	rateRadialDensity  = 0.08
	rateDecoyRate      = 0.06
	ratePathLengthBias = 0.10
	rateExitWidth      = 1
)

// Profile field scales used to normalize raw metrics into [0, 1]
// before mapping them onto parameter ranges.
const (
	speedScale   = 200.0
	fumbleScale  = 40.0 // collisions + direction changes of a struggling run
	elapsedScale = 90.0 // seconds considered a slow completion
)

// MapProfileToParams derives the next attempt's generation tunables
// from the player profile. Pure: identical (profile, prev) always
// yields identical output. With no attempts recorded it returns prev
// unchanged; otherwise each tunable gets a monotone target, is
// rate-limited against its previous value and clamped to its
// documented range. The exit offset is always re-randomized.
func MapProfileToParams(p Profile, prev maze.Params) maze.Params {
	if p.Attempts == 0 {
		return prev
	}

	speed := unit(p.AvgSpeed / speedScale)
	calm := unit(1 - (p.Collisions+p.DirectionChanges)/fumbleScale)
	explore := unit(p.Coverage)
	risk := unit(p.RiskRatio)
	slow := unit(p.Elapsed / elapsedScale)

	next := prev

	// Faster play earns denser walls and longer winding paths.
	next.WallDensity = approach(prev.WallDensity,
		span(speed, maze.MinWallDensity, maze.MaxWallDensity), rateWallDensity)
	next.PathLengthBias = approach(prev.PathLengthBias,
		span(speed, maze.MinPathLengthBias, maze.MaxPathLengthBias), ratePathLengthBias)

	// Clean runs (few collisions, few reversals) earn more false
	// branches and decoys.
	next.Branchiness = approach(prev.Branchiness,
		span(calm, maze.MinBranchiness, maze.MaxBranchiness), rateBranchiness)
	next.DecoyRate = approach(prev.DecoyRate,
		span(calm, maze.MinDecoyRate, maze.MaxDecoyRate), rateDecoyRate)

	// Thorough explorers get narrower corridors.
	next.CorridorWidth = approach(prev.CorridorWidth,
		maze.MaxCorridorWidth-explore*(maze.MaxCorridorWidth-maze.MinCorridorWidth),
		rateCorridorWidth)

	// Time spent hugging the rim nudges tangential density up.
	next.RadialDensity = approach(prev.RadialDensity,
		span(risk, maze.MinRadialDensity, maze.MaxRadialDensity), rateRadialDensity)

	// Slow completions widen the exit.
	targetWidth := maze.MinExitWidth + int(slow*float64(maze.MaxExitWidth-maze.MinExitWidth)+0.5)
	next.ExitWidth = stepToward(prev.ExitWidth, targetWidth, rateExitWidth)

	next.ExitOffset = -1

	return next.Clamped()
}

// approach moves prev toward target, capping the change magnitude.
func approach(prev, target, maxStep float64) float64 {
	d := target - prev
	if d > maxStep {
		d = maxStep
	} else if d < -maxStep {
		d = -maxStep
	}
	return prev + d
}

// stepToward is the integer counterpart of approach.
func stepToward(prev, target, maxStep int) int {
	d := target - prev
	if d > maxStep {
		d = maxStep
	} else if d < -maxStep {
		d = -maxStep
	}
	return prev + d
}

// span maps a [0, 1] factor onto [lo, hi].
func span(f, lo, hi float64) float64 {
	return lo + f*(hi-lo)
}

// unit clamps to [0, 1].
func unit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
