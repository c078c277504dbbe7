package random

import (
	"math/rand"
	"sync"
	"time"

	"insights-api/internal/dashboard/core/ports"
)

// LockedRand wraps a seeded math/rand source behind a mutex. A bare
// rand.Rand is not safe for concurrent use, and the generators run on every
// request goroutine.
type LockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedRand seeds from the current time.
func NewLockedRand() *LockedRand {
	return NewLockedRandFromSeed(time.Now().UnixNano())
}

// NewLockedRandFromSeed builds a deterministic instance, intended for tests.
func NewLockedRandFromSeed(seed int64) *LockedRand {
	return &LockedRand{
		rng: rand.New(rand.NewSource(seed)),
	}
}

var _ ports.RandomPort = (*LockedRand)(nil)

// IntBetween returns a random integer in [min, max], both bounds inclusive.
func (r *LockedRand) IntBetween(min, max int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.rng.Intn(max-min+1)
}

// Float64 returns a uniform random float in [0, 1).
func (r *LockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}
