package service

import "math/rand/v2"

// RandomSource supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewSeededSource returns a generator that always yields the same sequence for the same seed.
// The returned value is not safe for concurrent use; create one per analysis.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeed draws a fresh seed from the process-wide generator.
func NewSeed() uint64 {
	return rand.Uint64()
}
