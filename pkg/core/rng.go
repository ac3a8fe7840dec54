package core

import (
	"encoding/binary"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// The PCG source carries 128 bits of state, which is exactly one Seed.
type RNG struct {
	src *rand.PCG
	r   *rand.Rand
}

// NewRNG creates a deterministic RNG whose state is the provided seed.
func NewRNG(seed Seed) *RNG {
	src := rand.NewPCG(seed.hi(), seed.lo())
	return &RNG{src: src, r: rand.New(src)}
}

// State returns the current generator state. NewRNG(r.State()) continues the
// stream from exactly this point.
func (r *RNG) State() Seed {
	b, err := r.src.MarshalBinary()
	if err != nil || len(b) != 20 {
		return Seed{}
	}
	// "pcg:" followed by hi and lo, big endian.
	return seedFromHalves(binary.BigEndian.Uint64(b[4:12]), binary.BigEndian.Uint64(b[12:20]))
}

// SetState rewinds or advances the generator to the provided seed in place.
func (r *RNG) SetState(seed Seed) {
	r.src.Seed(seed.hi(), seed.lo())
}

// IntN returns a uniform int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Percent returns a uniform roll in [0, 100).
func (r *RNG) Percent() int {
	return r.r.IntN(100)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
