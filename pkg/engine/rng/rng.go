// Package rng provides the single seeded random stream threaded through generation.
package rng

import "math/rand"

// Stream is a reseedable deterministic random source.
// It is not safe for concurrent use.
type Stream struct {
	r *rand.Rand
}

// New creates a stream seeded with seed
func New(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed))}
}

// Seed resets the stream to the state of New(seed)
func (s *Stream) Seed(seed int64) {
	s.r.Seed(seed)
}

// Next returns a fresh 32-bit value, used to derive sub-seeds
func (s *Stream) Next() int64 {
	return int64(s.r.Uint32())
}

// IntRange returns a uniform integer in [lo, hi]
func (s *Stream) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// Intn returns a uniform integer in [0, n)
func (s *Stream) Intn(n int) int {
	return s.r.Intn(n)
}

// Float64 returns a uniform float in [0, 1)
func (s *Stream) Float64() float64 {
	return s.r.Float64()
}

// Float32Range returns a uniform float in [lo, hi)
func (s *Stream) Float32Range(lo, hi float32) float32 {
	return lo + (hi-lo)*s.r.Float32()
}

// Chance returns true with probability p
func (s *Stream) Chance(p float64) bool {
	return s.r.Float64() < p
}

// Shuffle pseudo-randomizes the order of n elements
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// Weighted returns an index chosen with probability proportional to weights[i].
// Non-positive weights are never chosen. Returns -1 if no weight is positive.
func (s *Stream) Weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}
	x := s.r.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if x < w {
			return i
		}
		x -= w
	}
	return last
}
