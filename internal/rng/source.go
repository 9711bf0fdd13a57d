// Package rng provides the deterministic random source used by tree generation.
//
// A Source is seeded from a 64-bit value and produces the same draw
// sequence on every platform, so a config plus a seed always generates
// the same tree. Child sources derive their own seed from the parent,
// which keeps sibling subtrees independent but reproducible.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// Source is a seedable deterministic random source backed by ChaCha8.
type Source struct {
	rng *mrand.Rand
}

// New returns a source seeded with the given value.
func New(seed uint64) *Source {
	return &Source{rng: mrand.New(mrand.NewChaCha8(expandSeed(seed)))}
}

// NewFromEntropy returns a source seeded from the OS entropy pool.
func NewFromEntropy() *Source {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// a fixed seed rather than aborting generation.
		return New(0)
	}
	return New(binary.LittleEndian.Uint64(b[:]))
}

// Float32 returns a uniform value in [lo, hi). A zero-width range
// returns lo exactly.
func (s *Source) Float32(lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float32()*(hi-lo)
}

// Bool returns a uniform boolean.
func (s *Source) Bool() bool {
	return s.rng.Uint64()&1 == 1
}

// IntN returns a uniform int in [0, n). n must be > 0.
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

// Uint64 returns a raw draw, typically used to seed derived sources.
func (s *Source) Uint64() uint64 {
	return s.rng.Uint64()
}

// Child returns a new independent source seeded from this one.
func (s *Source) Child() *Source {
	return New(s.rng.Uint64())
}

// expandSeed stretches a 64-bit seed into the 32-byte ChaCha8 key using
// the splitmix64 sequence.
func expandSeed(seed uint64) [32]byte {
	var key [32]byte
	s := seed
	for i := 0; i < 4; i++ {
		s += 0x9e3779b97f4a7c15
		z := s
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		z ^= z >> 31
		binary.LittleEndian.PutUint64(key[i*8:], z)
	}
	return key
}
