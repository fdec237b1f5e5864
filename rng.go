package rapidhash

import "encoding/binary"

// RNG is a deterministic pseudo-random generator that advances a single
// 64-bit counter through the rapidhash mixing primitive. It is fast and
// well distributed but not suitable for security-sensitive randomness.
//
// RNG satisfies math/rand/v2's Source. An RNG is not safe for concurrent
// use; give each goroutine its own.
type RNG struct {
	state uint64
}

// NewRNG returns a generator positioned at seed. A zero seed is replaced
// with DefaultSeed so the stream cannot start at the degenerate fixed
// point.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &RNG{state: seed}
}

// Uint64 advances the generator and returns the next value.
func (r *RNG) Uint64() uint64 {
	r.state += secret0
	return mix(r.state, r.state^secret1)
}

// Fill overwrites all of p with pseudo-random bytes, drawing one word per
// 8 bytes and keeping only the low bytes of the final word when len(p) is
// not a multiple of 8.
func (r *RNG) Fill(p []byte) {
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, r.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var w [8]byte
		binary.LittleEndian.PutUint64(w[:], r.Uint64())
		copy(p, w[:len(p)])
	}
}
