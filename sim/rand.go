package sim

import "math/rand/v2"

// Random supplies uniform samples in [0, 1)
// *rand.Rand satisfies it, tests inject a seeded one for repeatable bursts
type Random interface {
	Float64() float64
}

// NewRand returns a PCG generator seeded from seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
