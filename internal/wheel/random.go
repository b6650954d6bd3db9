package wheel

import "math/rand/v2"

// Source is the randomness the controller draws from. *rand.Rand
// satisfies it; tests pass a seeded one.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// NewSource returns a PCG-backed source for the seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
