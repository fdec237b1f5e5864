//go:build !rapidhash_unsafe

package rapidhash

import "encoding/binary"

// Reads are fixed little-endian so fingerprints do not depend on the host
// byte order. The bounds-checked readers are the default; build with
// -tags rapidhash_unsafe for the raw-pointer variant.

func readU64(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off:])
}

func readU32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off:])
}
