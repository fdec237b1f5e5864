package rapidhash

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestMatchesSum64SingleWrite(t *testing.T) {
	for n := 0; n <= 256; n++ {
		data := pattern(n)
		d := New()
		written, err := d.Write(data)
		require.NoError(t, err)
		require.Equal(t, n, written)
		require.Equal(t, Sum64(data), d.Sum64(), "length %d", n)
	}
}

// The defining property: the fingerprint depends only on the concatenated
// bytes, never on where the chunk boundaries fell. Splits are placed at
// every position for band-edge lengths, so partitions crossing the 8, 16 and
// 48 byte edges are all exercised.
func TestDigestTwoChunkSplits(t *testing.T) {
	for _, n := range []int{1, 7, 8, 9, 15, 16, 17, 47, 48, 49, 96, 97, 100} {
		data := pattern(n)
		want := Sum64(data)
		for split := 0; split <= n; split++ {
			d := New()
			d.Write(data[:split])
			d.Write(data[split:])
			require.Equal(t, want, d.Sum64(), "length %d split %d", n, split)
		}
	}
}

func TestDigestRandomPartitions(t *testing.T) {
	rnd := rand.New(rand.NewSource(301))
	for trial := 0; trial < 500; trial++ {
		n := rnd.Intn(600)
		data := make([]byte, n)
		rnd.Read(data)
		seed := rnd.Uint64()
		want := Sum64Seeded(data, seed)

		d := NewSeeded(seed)
		for i := 0; i < n; {
			k := rnd.Intn(n - i + 1)
			d.Write(data[i : i+k])
			i += k
			if rnd.Intn(10) == 0 {
				d.Write(nil)
			}
		}
		require.Equal(t, want, d.Sum64(), "length %d", n)
	}
}

func TestDigestByteAtATime(t *testing.T) {
	data := pattern(1280)
	d := New()
	for _, b := range data {
		d.Write([]byte{b})
	}
	assert.Equal(t, Sum64(data), d.Sum64())
}

func TestDigestSum64IsRepeatable(t *testing.T) {
	for _, n := range []int{0, 11, 48, 49, 100} {
		d := New()
		d.Write(pattern(n))
		first := d.Sum64()
		require.Equal(t, first, d.Sum64(), "length %d", n)
		require.Equal(t, first, d.Sum64(), "length %d", n)
	}
}

// Finalizing must not disturb the stream: writing more bytes afterwards
// continues the longer input.
func TestDigestWriteAfterSum(t *testing.T) {
	full := pattern(200)
	for _, cut := range []int{0, 5, 48, 60, 144, 199} {
		d := New()
		d.Write(full[:cut])
		_ = d.Sum64()
		d.Write(full[cut:])
		require.Equal(t, Sum64(full), d.Sum64(), "cut %d", cut)
	}
}

func TestDigestZeroLengthWrites(t *testing.T) {
	d := New()
	written, err := d.Write(nil)
	require.NoError(t, err)
	require.Zero(t, written)
	d.Write([]byte{})
	assert.Equal(t, Sum64(nil), d.Sum64())
}

func TestDigestReset(t *testing.T) {
	d := NewSeeded(7)
	d.Write(pattern(500))
	d.Reset()
	d.Write([]byte("abc"))
	assert.Equal(t, Sum64Seeded([]byte("abc"), 7), d.Sum64())
}

func TestDigestSeedSelectsFamily(t *testing.T) {
	data := []byte("same bytes, different family")
	a := NewSeeded(1)
	b := NewSeeded(2)
	a.Write(data)
	b.Write(data)
	assert.NotEqual(t, a.Sum64(), b.Sum64())
	assert.Equal(t, Sum64Seeded(data, 1), a.Sum64())
}

func TestDigestSum(t *testing.T) {
	d := New()
	d.Write([]byte("hello world"))
	h := d.Sum64()
	want := []byte{
		byte(h >> 56), byte(h >> 48), byte(h >> 40), byte(h >> 32),
		byte(h >> 24), byte(h >> 16), byte(h >> 8), byte(h),
	}
	assert.Equal(t, want, d.Sum(nil))
	assert.Equal(t, append([]byte("prefix"), want...), d.Sum([]byte("prefix")))
	assert.Equal(t, 8, d.Size())
	assert.Equal(t, blockSize, d.BlockSize())
}
