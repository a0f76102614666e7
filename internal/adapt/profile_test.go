package adapt

import (
	"math"
	"testing"
)

func TestFirstUpdateCopiesSnapshot(t *testing.T) {
	var p Profile
	s := Snapshot{
		Ticks:            1200,
		Elapsed:          10,
		AvgSpeed:         150,
		IdleRatio:        0.2,
		RiskRatio:        0.1,
		Collisions:       7,
		DirectionChanges: 12,
		Coverage:         0.4,
	}
	p.Update(s)

	if p.Attempts != 1 {
		t.Fatalf("Attempts = %d, want 1", p.Attempts)
	}
	if p.AvgSpeed != 150 || p.IdleRatio != 0.2 || p.RiskRatio != 0.1 {
		t.Errorf("ratios not copied exactly: %+v", p)
	}
	if p.Collisions != 7 || p.DirectionChanges != 12 {
		t.Errorf("counts not copied exactly: %+v", p)
	}
	if p.Coverage != 0.4 || p.Elapsed != 10 {
		t.Errorf("coverage/elapsed not copied exactly: %+v", p)
	}
}

func TestEMABlending(t *testing.T) {
	var p Profile
	p.Update(Snapshot{AvgSpeed: 100})
	p.Update(Snapshot{AvgSpeed: 200})

	want := 100 + EMAWeight*(200-100)
	if math.Abs(p.AvgSpeed-want) > 1e-9 {
		t.Errorf("AvgSpeed = %v, want %v", p.AvgSpeed, want)
	}
	if p.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", p.Attempts)
	}
}

func TestEMAConvergesMonotonically(t *testing.T) {
	var p Profile
	p.Update(Snapshot{AvgSpeed: 0})

	prevGap := 300.0
	for i := 0; i < 50; i++ {
		p.Update(Snapshot{AvgSpeed: 300})
		gap := 300 - p.AvgSpeed
		if gap < 0 {
			t.Fatalf("attempt %d: overshot the constant target (%v)", i, p.AvgSpeed)
		}
		if gap >= prevGap {
			t.Fatalf("attempt %d: gap %v did not shrink from %v", i, gap, prevGap)
		}
		prevGap = gap
	}
	if prevGap > 1 {
		t.Errorf("after 50 constant updates, still %v away from target", prevGap)
	}
}
