//go:build rapidhash_unsafe

package rapidhash

import "unsafe"

// Raw unaligned loads with no bounds checks. Every call site proves
// off+8 (or off+4) is within the slice before reaching these, so the loads
// cannot run past the input. Only for little-endian targets that tolerate
// unaligned access; other targets must build without the tag.

func readU64(b []byte, off int) uint64 {
	return *(*uint64)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(b)), off))
}

func readU32(b []byte, off int) uint32 {
	return *(*uint32)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(b)), off))
}
