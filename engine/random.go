package engine

import "math/rand/v2"

// Random is the source of randomness for game outcomes
// Not cryptographically secure, rewards are not adversarial
type Random interface {
	IntN(n int) int
	Float64() float64
}

// NewRandom returns a PCG-backed Random; equal seeds yield equal sequences
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
