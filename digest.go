package rapidhash

import "hash"

// Digest is the streaming form of Sum64Seeded. Bytes may arrive in chunks of
// any size, including empty; once a full block has accumulated and another
// byte arrives, the block is folded into the three accumulator lanes and
// dropped from the buffer. For any way of splitting an input across Write
// calls, Sum64 returns exactly what Sum64Seeded returns for the
// concatenation.
//
// A Digest is not safe for concurrent use; give each goroutine its own.
type Digest struct {
	seed uint64
	// mix(seed^secret0, secret1), computed once per Reset and reused by
	// every short-stream finalization.
	pert  uint64
	lane0 uint64
	lane1 uint64
	lane2 uint64
	total uint64

	buf [blockSize]byte
	n   int
	// Last 16 bytes of the most recently folded block. Finalization reads
	// the stream's final 16 bytes, which reach across the fold boundary
	// when fewer than 16 bytes are pending.
	carry [16]byte
}

var _ hash.Hash64 = (*Digest)(nil)

// New returns a Digest seeded with DefaultSeed.
func New() *Digest {
	return NewSeeded(DefaultSeed)
}

// NewSeeded returns a fresh Digest for the hash family selected by seed.
// Every call manufactures an independent instance, which is the contract
// hash-table build-hasher wrappers rely on: one Digest per key, never
// shared.
func NewSeeded(seed uint64) *Digest {
	d := &Digest{seed: seed}
	d.Reset()
	return d
}

// Reset discards all written bytes. The seed is kept.
func (d *Digest) Reset() {
	d.pert = mix(d.seed^secret0, secret1)
	base := d.seed ^ d.pert
	d.lane0 = base
	d.lane1 = base
	d.lane2 = base
	d.total = 0
	d.n = 0
	d.carry = [16]byte{}
}

// Size returns the fingerprint width in bytes.
func (d *Digest) Size() int { return 8 }

// BlockSize returns the accumulator block unit in bytes.
func (d *Digest) BlockSize() int { return blockSize }

// Write absorbs p into the stream. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	n := len(p)
	d.total += uint64(n)
	for len(p) > 0 {
		if d.n == blockSize {
			d.round()
		}
		c := copy(d.buf[d.n:], p)
		d.n += c
		p = p[c:]
	}
	return n, nil
}

// round folds the full pending block into the lanes. The flush schedule
// depends only on the total byte count, never on how Write calls were
// sized.
func (d *Digest) round() {
	b := d.buf[:]
	d.lane0 = mix(readU64(b, 0)^secret0, readU64(b, 8)^d.lane0)
	d.lane1 = mix(readU64(b, 16)^secret1, readU64(b, 24)^d.lane1)
	d.lane2 = mix(readU64(b, 32)^secret2, readU64(b, 40)^d.lane2)
	copy(d.carry[:], b[32:])
	d.n = 0
}

// Sum64 returns the fingerprint of everything written so far. It does not
// mutate the Digest: it may be called repeatedly, and further Writes extend
// the stream rather than starting over.
func (d *Digest) Sum64() uint64 {
	if d.total <= blockSize {
		// Nothing folded yet; the whole input is pending.
		return sum64Tail(d.buf[:d.n], d.seed^d.pert^d.total)
	}

	seed := d.lane0 ^ d.lane1 ^ d.lane2
	rem := d.buf[:d.n]
	if len(rem) > 16 {
		seed = mix(readU64(rem, 0)^secret2, readU64(rem, 8)^seed^secret1)
		if len(rem) > 32 {
			seed = mix(readU64(rem, 16)^secret2, readU64(rem, 24)^seed)
		}
	}

	var tail [16]byte
	if d.n >= 16 {
		copy(tail[:], rem[d.n-16:])
	} else {
		copy(tail[:], d.carry[d.n:])
		copy(tail[16-d.n:], rem)
	}
	a := readU64(tail[:], 0) ^ secret1
	b := readU64(tail[:], 8) ^ seed
	a, b = mum(a, b)
	return mix(a^secret0^d.total, b^secret1)
}

// Sum appends the big-endian fingerprint to b.
func (d *Digest) Sum(b []byte) []byte {
	h := d.Sum64()
	return append(b,
		byte(h>>56), byte(h>>48), byte(h>>40), byte(h>>32),
		byte(h>>24), byte(h>>16), byte(h>>8), byte(h),
	)
}
