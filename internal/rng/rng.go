// Package rng provides explicit, seedable pseudorandom streams for donor
// selection. No global generator is ever used; each matching task derives
// its own stream from the base seed so parallel execution stays
// reproducible.
package rng

import "math/rand"

// Source is a single pseudorandom stream. It is not safe for concurrent
// use; derive one per task.
type Source struct {
	rand *rand.Rand
}

// New creates a stream from seed.
func New(seed int64) *Source {
	return &Source{rand: rand.New(rand.NewSource(seed))}
}

// Derive creates an independent stream for the task identified by ids,
// deterministically mixed into the base seed. Tasks with different ids get
// uncorrelated streams; the same (seed, ids) always yields the same stream.
func Derive(seed int64, ids ...int) *Source {
	x := uint64(seed)
	for _, id := range ids {
		x = splitmix64(x + uint64(id) + 0x9e3779b97f4a7c15)
	}
	return New(int64(x))
}

// Intn returns a pseudorandom int in [0,n).
func (s *Source) Intn(n int) int { return s.rand.Intn(n) }

// Float64 returns a pseudorandom float64 in [0,1).
func (s *Source) Float64() float64 { return s.rand.Float64() }

func splitmix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
