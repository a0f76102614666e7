package adapt

// EMAWeight is the fraction a new attempt contributes to each profile
// field; the prior average keeps the rest.
const EMAWeight = 0.3

// Profile is the exponentially smoothed aggregate of attempt snapshots
// across one session. It is mutated only by Update and reset only at
// session start.
type Profile struct {
	Attempts int

	AvgSpeed         float64
	IdleRatio        float64
	RiskRatio        float64
	Collisions       float64
	DirectionChanges float64
	Coverage         float64
	Elapsed          float64
}

// Update folds a finished attempt into the profile. The very first
// attempt sets the profile to the snapshot values exactly; later
// attempts blend by exponential moving average.
func (p *Profile) Update(s Snapshot) {
	p.Attempts++
	if p.Attempts == 1 {
		p.AvgSpeed = s.AvgSpeed
		p.IdleRatio = s.IdleRatio
		p.RiskRatio = s.RiskRatio
		p.Collisions = float64(s.Collisions)
		p.DirectionChanges = float64(s.DirectionChanges)
		p.Coverage = s.Coverage
		p.Elapsed = s.Elapsed
		return
	}

	blend := func(prev, next float64) float64 {
		return prev + EMAWeight*(next-prev)
	}
	p.AvgSpeed = blend(p.AvgSpeed, s.AvgSpeed)
	p.IdleRatio = blend(p.IdleRatio, s.IdleRatio)
	p.RiskRatio = blend(p.RiskRatio, s.RiskRatio)
	p.Collisions = blend(p.Collisions, float64(s.Collisions))
	p.DirectionChanges = blend(p.DirectionChanges, float64(s.DirectionChanges))
	p.Coverage = blend(p.Coverage, s.Coverage)
	p.Elapsed = blend(p.Elapsed, s.Elapsed)
}
