// Package matchrand provides the single seedable pseudo-random generator
// owned by a Match. AI plug-ins and the referee's penalty-shootout decision
// draw from it; because it is shared state it
// follows the same single-threaded-cooperative rule as everything else the
// scheduler touches.
package matchrand

import "github.com/cespare/xxhash/v2"

// Source is a 32-bit-state, 32-bit-output SplitMix32 generator. It is not
// cryptographically secure and is not safe for concurrent use; a Match owns
// exactly one, invoked only from within event callbacks.
type Source struct {
	state uint32
}

// NewSource builds a Source from a raw 32-bit seed.
func NewSource(seed uint32) *Source {
	return &Source{state: seed}
}

// NewSourceFromFixtureID derives a 32-bit seed from an arbitrary fixture
// identifier (e.g. "2026-07-31/home-vs-away") via xxhash, a stable hash of
// a domain key. This keeps seeding ergonomic for callers while the
// generator itself stays a plain SplitMix32 core.
func NewSourceFromFixtureID(fixtureID string) *Source {
	h := xxhash.Sum64String(fixtureID)
	// Fold the 64-bit hash down to 32 bits instead of truncating, so both
	// halves of the digest influence the seed.
	return NewSource(uint32(h) ^ uint32(h>>32))
}

// Uint32 returns the next 32-bit output and advances the generator state.
func (s *Source) Uint32() uint32 {
	s.state += 0x9e3779b9
	z := s.state
	z = (z ^ (z >> 16)) * 0x85ebca6b
	z = (z ^ (z >> 13)) * 0xc2b2ae35
	return z ^ (z >> 16)
}

// Float64 returns a pseudo-random value in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Uint32()) / (1 << 32)
}

// IntN returns a pseudo-random value in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		panic("matchrand: IntN called with n <= 0")
	}
	return int(s.Uint32() % uint32(n))
}

// Bool returns true with probability p, clamped to [0, 1].
func (s *Source) Bool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.Float64() < p
}
