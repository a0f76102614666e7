// Package rng provides a deterministic pseudo-random number generator
// for maze generation. Identical seeds produce identical streams across
// platforms and process lifetimes, which makes a maze reproducible from
// its stored seed alone.
package rng

// Rand is a mulberry32 generator. The entire state is one 32-bit
// counter, so instances are cheap and fully independent; there is no
// package-level shared state.
type Rand struct {
	seed  uint32
	state uint32
}

// New creates a generator seeded with the given value.
func New(seed uint32) *Rand {
	return &Rand{seed: seed, state: seed}
}

// Seed returns the construction-time seed. It is not affected by draws.
func (r *Rand) Seed() uint32 {
	return r.seed
}

// Float returns the next value in [0, 1).
func (r *Rand) Float() float64 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	return float64(z) / (1 << 32)
}

// IntN returns an integer in [min, max). Returns min if the range is empty.
func (r *Rand) IntN(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(r.Float()*float64(max-min))
}

// FloatN returns a float in [min, max).
func (r *Rand) FloatN(min, max float64) float64 {
	return min + r.Float()*(max-min)
}

// Shuffle performs an in-place Fisher-Yates permutation of n elements
// using the provided swap function.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.IntN(0, i+1)
		swap(i, j)
	}
}

// AttemptSeed derives the seed for a given attempt index from a base
// seed. Generation retries apply further +1 increments on top.
func AttemptSeed(base uint32, attempt int) uint32 {
	return base + uint32(attempt)
}
