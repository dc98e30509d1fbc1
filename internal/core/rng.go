package core

import "math/rand/v2"

// DirectionPicker chooses a horizontal step for a cell that cannot fall.
// PickDirection returns -1 for left and +1 for right.
type DirectionPicker interface {
	PickDirection() int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	src *rand.PCG
	r   *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	src := rand.NewPCG(uint64(seed), 0)
	return &RNG{src: src, r: rand.New(src)}
}

// Reseed restarts the sequence as if the RNG had been created with seed.
func (r *RNG) Reseed(seed int64) {
	r.src.Seed(uint64(seed), 0)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// PickDirection returns -1 or +1 with equal probability.
func (r *RNG) PickDirection() int {
	if r.Bool() {
		return 1
	}
	return -1
}
