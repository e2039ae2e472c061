package services

import (
	"math/rand"
	"sync"
)

// Rand is a seedable random source safe for use from concurrent
// request handlers. Scoring and message selection draw from an injected
// source only, never from ambient randomness, so tests can pin the seed.
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand wraps a seed into a source usable by the services.
func NewRand(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}
