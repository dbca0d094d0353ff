// Package rng provides the random source shared by dungeon generation and
// combat so that a seed reproduces an entire game.
package rng

import (
	"math/rand"
	"time"
)

// Source yields uniform integers in [0, n). n must be positive.
type Source interface {
	Intn(n int) int
}

// RNG wraps math/rand.Rand with deterministic position tracking.
// Position increments with every draw.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// New creates a deterministic RNG from a seed.
func New(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// NewUnseeded creates an RNG seeded from the clock. The chosen seed is
// still recorded so the game can be replayed with New(r.Seed()).
func NewUnseeded() *RNG {
	return New(time.Now().UnixNano())
}

// Intn returns a random integer in [0, n).
func (r *RNG) Intn(n int) int {
	r.pos++
	return r.src.Intn(n)
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}

var _ Source = (*RNG)(nil)
