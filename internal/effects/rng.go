package effects

// RNG is a simple seeded random number generator (LCG).
// Every simulator and scene owns its own RNG; there is no package-level seed.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed
func NewRNG(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Uint64 returns a pseudo-random uint64
func (r *RNG) Uint64() uint64 {
	// LCG parameters from Numerical Recipes
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a pseudo-random float64 in [0, 1)
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Intn returns a pseudo-random int in [0, n)
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// the low bits of an LCG cycle with a short period
	return int((r.Uint64() >> 33) % uint64(n))
}

// Between returns a pseudo-random float64 in [min, max)
func (r *RNG) Between(min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + r.Float64()*(max-min)
}

// Chance reports true with probability p
func (r *RNG) Chance(p float64) bool {
	return r.Float64() < p
}

// Sign returns +1 or -1 with equal probability
func (r *RNG) Sign() float64 {
	if r.Chance(0.5) {
		return 1
	}
	return -1
}

// Choice returns a random element from a slice
func (r *RNG) Choice(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[r.Intn(len(items))]
}
