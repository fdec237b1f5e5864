package rapidhash

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// RandomSeed draws a seed from the operating system's entropy source, for
// callers that want a per-process hash family instead of the fixed
// DefaultSeed. The core never calls this itself: seed randomization is the
// caller's choice.
func RandomSeed() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read entropy: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
