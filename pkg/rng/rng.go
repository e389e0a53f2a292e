// Package rng provides the random source injected into probabilistic game
// logic, so tests can substitute a seeded generator.
package rng

import (
	"math/rand"
	"sync"
	"time"
)

type Rand interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// LockedRand is a math/rand generator safe for concurrent callers.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func New() *LockedRand {
	return NewSeeded(time.Now().UnixNano())
}

func NewSeeded(seed int64) *LockedRand {
	return &LockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *LockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *LockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// Roll draws a uniform value in [1, 100] for percent-chance checks.
func Roll(r Rand) int {
	return r.Intn(100) + 1
}

// Between draws a uniform int in [min, max].
func Between(r Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// BetweenFloat draws a uniform float64 in [min, max).
func BetweenFloat(r Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.Float64()*(max-min)
}
