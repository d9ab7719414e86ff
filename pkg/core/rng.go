package core

import "math/rand/v2"

// BoolSource supplies independent fair coin flips.
type BoolSource interface {
	Bool() bool
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillBinary fills the buffer with random alive/dead values.
func FillBinary(src BoolSource, buf []bool) {
	for i := range buf {
		buf[i] = src.Bool()
	}
}
