package adapter

import (
	"math/rand"
	"time"
)

// Rand defines the randomness operations the sampler depends on, so tests
// can pin offsets and shuffles.
type Rand interface {
	// IntN returns a uniformly random int in [0, n). n must be > 0.
	IntN(n int) int
	// Shuffle pseudo-randomizes the order of n elements via swap
	Shuffle(n int, swap func(i, j int))
}

type realRand struct {
	rng *rand.Rand
}

// NewRand creates a time-seeded randomness source
func NewRand() Rand {
	return &realRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *realRand) IntN(n int) int {
	return r.rng.Intn(n)
}

func (r *realRand) Shuffle(n int, swap func(i, j int)) {
	r.rng.Shuffle(n, swap)
}
