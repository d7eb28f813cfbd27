package vmath

import (
	"math/rand/v2"
)

// Rand is the random source consumed by spawning, effects and upgrade draws
// Float64 returns a value in [0, 1)
type Rand interface {
	Float64() float64
}

// NewRand returns a non-seeded source backed by math/rand/v2
func NewRand() Rand {
	return globalRand{}
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// FastRand is a xorshift64 generator, used where a reproducible sequence is needed (tests, tooling)
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 uses the top 53 bits for a uniform value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [lo, hi)
func Range(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance returns true with probability p
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// Intn returns a uniform int in [0, n) drawn from any Rand
func Intn(r Rand, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// SignOf returns -1 or +1 with equal probability
func SignOf(r Rand) float64 {
	if r.Float64() < 0.5 {
		return -1
	}
	return 1
}

// ScriptedRand replays a fixed sequence of values, cycling when exhausted
// An empty script always returns 0
type ScriptedRand struct {
	Values []float64
	pos    int
}

func (s *ScriptedRand) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}
