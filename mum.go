package rapidhash

import "math/bits"

// mum returns the low and high halves of the full 128-bit product a*b.
// Overflow is the point: both halves are kept exactly.
func mum(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// mumEmulated computes the same product from four 32-bit partial products,
// for word widths without a native widening multiply. It must stay
// bit-identical to mum on every input; the tests hold the two together.
func mumEmulated(a, b uint64) (lo, hi uint64) {
	alo := a & 0xffffffff
	ahi := a >> 32
	blo := b & 0xffffffff
	bhi := b >> 32

	ll := alo * blo
	lh := alo * bhi
	hl := ahi * blo
	hh := ahi * bhi

	cross := ll>>32 + lh&0xffffffff + hl&0xffffffff
	lo = cross<<32 | ll&0xffffffff
	hi = hh + lh>>32 + hl>>32 + cross>>32
	return lo, hi
}

// mix folds the two halves of the wide product into 64 bits.
func mix(a, b uint64) uint64 {
	lo, hi := mum(a, b)
	return lo ^ hi
}
