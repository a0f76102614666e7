package maze

// Params are the generation tunables the adaptive controller mutates
// between attempts. They are read-only during one generation call.
//
// Documented safe ranges (enforced by Clamped and by the difficulty
// mapper):
//
//	WallDensity    [0.30, 0.90]  fraction of shapeable walls retained
//	Branchiness    [0.00, 0.50]  extra loop openings per cell
//	CorridorWidth  [0.80, 1.50]  clearance multiplier for feasibility
//	RadialDensity  [0.20, 0.90]  tangential wall retention cap
//	DecoyRate      [0.00, 0.60]  false-corridor openings per cell
//	PathLengthBias [0.00, 1.00]  extra arc bias during carving
//	ExitOffset     -1 or [0, slices)  -1 selects a random slice
//	ExitWidth      [1, 4]        exit sector width in slices
type Params struct {
	WallDensity    float64
	Branchiness    float64
	CorridorWidth  float64
	RadialDensity  float64
	DecoyRate      float64
	PathLengthBias float64
	ExitOffset     int
	ExitWidth      int
}

// Parameter range bounds, shared with the difficulty mapper.
const (
	MinWallDensity    = 0.30
	MaxWallDensity    = 0.90
	MinBranchiness    = 0.00
	MaxBranchiness    = 0.50
	MinCorridorWidth  = 0.80
	MaxCorridorWidth  = 1.50
	MinRadialDensity  = 0.20
	MaxRadialDensity  = 0.90
	MinDecoyRate      = 0.00
	MaxDecoyRate      = 0.60
	MinPathLengthBias = 0.00
	MaxPathLengthBias = 1.00
	MinExitWidth      = 1
	MaxExitWidth      = 4
)

// DefaultParams returns the mid-difficulty starting tunables.
func DefaultParams() Params {
	return Params{
		WallDensity:    0.60,
		Branchiness:    0.15,
		CorridorWidth:  1.00,
		RadialDensity:  0.50,
		DecoyRate:      0.20,
		PathLengthBias: 0.30,
		ExitOffset:     -1,
		ExitWidth:      2,
	}
}

// Clamped returns a copy with every field forced into its documented
// range. ExitOffset is left untouched; -1 is the random marker and the
// generator wraps non-negative offsets modulo the slice count.
func (p Params) Clamped() Params {
	p.WallDensity = clamp(p.WallDensity, MinWallDensity, MaxWallDensity)
	p.Branchiness = clamp(p.Branchiness, MinBranchiness, MaxBranchiness)
	p.CorridorWidth = clamp(p.CorridorWidth, MinCorridorWidth, MaxCorridorWidth)
	p.RadialDensity = clamp(p.RadialDensity, MinRadialDensity, MaxRadialDensity)
	p.DecoyRate = clamp(p.DecoyRate, MinDecoyRate, MaxDecoyRate)
	p.PathLengthBias = clamp(p.PathLengthBias, MinPathLengthBias, MaxPathLengthBias)
	if p.ExitWidth < MinExitWidth {
		p.ExitWidth = MinExitWidth
	}
	if p.ExitWidth > MaxExitWidth {
		p.ExitWidth = MaxExitWidth
	}
	if p.ExitOffset < -1 {
		p.ExitOffset = -1
	}
	return p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
