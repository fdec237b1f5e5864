package rapidhash

import (
	"fmt"
	"testing"
)

func BenchmarkSum64(b *testing.B) {
	for _, n := range []int{8, 16, 48, 256, 4096, 65536} {
		data := pattern(n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				_ = Sum64(data)
			}
		})
	}
}

func BenchmarkDigest(b *testing.B) {
	data := pattern(4096)
	b.SetBytes(int64(len(data)))
	d := New()
	for i := 0; i < b.N; i++ {
		d.Reset()
		d.Write(data)
		_ = d.Sum64()
	}
}

func BenchmarkRNGUint64(b *testing.B) {
	r := NewRNG(301)
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink = r.Uint64()
	}
	_ = sink
}

func BenchmarkRNGFill(b *testing.B) {
	r := NewRNG(301)
	buf := make([]byte, 4096)
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		r.Fill(buf)
	}
}
