package ink

import "math/rand/v2"

// streamSession keeps the session stream apart from the noise stream,
// which is seeded with the same value.
const streamSession = 0x62727573

// RNG is the single random stream of one rendering session. Every stochastic
// decision (drift, variation, glyph states, erosion offsets, jitter) draws
// from it in call order, which is what makes a render reproducible.
//
// An RNG is not safe for concurrent use.
type RNG struct {
	r *rand.Rand
}

// NewRNG returns a PCG-backed stream for seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), streamSession))} //nolint:gosec // seed bits are reinterpreted
}

// Float64 returns a uniform value in [0, 1).
func (g *RNG) Float64() float64 { return g.r.Float64() }

// Uniform returns a uniform value in [lo, hi).
func (g *RNG) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.r.Float64()
}

// IntRange returns a uniform integer in [lo, hi], both ends inclusive.
func (g *RNG) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + g.r.IntN(hi-lo+1)
}

// IntN returns a uniform integer in [0, n). n must be positive.
func (g *RNG) IntN(n int) int { return g.r.IntN(n) }
