// hashbench measures rapidhash throughput and latency across input size
// bands, next to crc32c and snappy baselines on the same payloads.
//
// Example:
//
//	hashbench -benchmarks=sum64,digest,crc32c -histogram
package main

import (
	"flag"
	"fmt"
	"hash/crc32"
	"os"
	"strings"
	"time"

	"github.com/golang/snappy"

	"github.com/sosozhuang/rapidhash"
)

var (
	flagsBenchmarks = flag.String("benchmarks",
		"sum64small,sum64,sum64large,digest,rngfill,crc32c,snappycomp,snappyuncomp",
		"comma-separated list of benchmarks to run")
	flagsNum              = flag.Int("num", 1000000, "operations per benchmark")
	flagsValueSize        = flag.Int("value_size", 4096, "payload bytes per op for the main benchmarks")
	flagsSmallSize        = flag.Int("small_size", 16, "payload bytes per op for sum64small")
	flagsLargeSize        = flag.Int("large_size", 65536, "payload bytes per op for sum64large")
	flagsCompressionRatio = flag.Float64("compression_ratio", 0.5, "compressibility of generated payloads")
	flagsHistogram        = flag.Bool("histogram", false, "print a latency histogram per benchmark")
	flagsSeed             = flag.Uint64("seed", rapidhash.DefaultSeed, "hash family seed")
)

func nowMicros() float64 {
	return float64(time.Now().UnixNano()) / 1e3
}

type stats struct {
	start        float64
	finish       float64
	done         int
	nextReport   int
	bytes        int64
	lastOpFinish float64
	hist         histogram
	message      string
}

func newStats() *stats {
	s := &stats{nextReport: 100}
	s.hist.clear()
	s.start = nowMicros()
	s.finish = s.start
	s.lastOpFinish = s.start
	return s
}

func (s *stats) stop() {
	s.finish = nowMicros()
}

func (s *stats) finishSingleOp() {
	if *flagsHistogram {
		now := nowMicros()
		micros := now - s.lastOpFinish
		s.hist.add(micros)
		if micros > 20000 {
			fmt.Fprintf(os.Stderr, "long op: %.1f micros%30s\r", micros, "")
		}
		s.lastOpFinish = now
	}
	s.done++
	if s.done >= s.nextReport {
		switch {
		case s.nextReport < 1000:
			s.nextReport += 100
		case s.nextReport < 10000:
			s.nextReport += 1000
		case s.nextReport < 100000:
			s.nextReport += 10000
		default:
			s.nextReport += 100000
		}
		fmt.Fprintf(os.Stderr, "... finished %d ops%30s\r", s.done, "")
	}
}

func (s *stats) addBytes(n int64) {
	s.bytes += n
}

func (s *stats) addMessage(msg string) {
	if s.message != "" {
		s.message += " "
	}
	s.message += msg
}

func (s *stats) report(name string) {
	if s.done < 1 {
		s.done = 1
	}
	elapsed := (s.finish - s.start) * 1e-6
	extra := ""
	if s.bytes > 0 {
		extra = fmt.Sprintf("%6.1f MB/s", float64(s.bytes)/1048576.0/elapsed)
	}
	if s.message != "" {
		if extra != "" {
			extra += " "
		}
		extra += s.message
	}
	sep := ""
	if extra != "" {
		sep = " "
	}
	fmt.Fprintf(os.Stdout, "%-12s : %11.3f micros/op;%s%s\n",
		name, (s.finish-s.start)/float64(s.done), sep, extra)
	if *flagsHistogram {
		fmt.Fprintf(os.Stdout, "Microseconds per op:\n%s\n", s.hist.String())
	}
}

// generator hands out slices of a pre-built buffer whose compressibility is
// controlled by -compression_ratio, so the snappy baselines see realistic
// input.
type generator struct {
	data []byte
	pos  int
}

func newGenerator() *generator {
	g := &generator{data: make([]byte, 0, 1048576)}
	rng := rapidhash.NewRNG(301)
	for len(g.data) < 1048576 {
		g.data = append(g.data, compressibleChunk(rng, *flagsCompressionRatio, 100)...)
	}
	return g
}

func compressibleChunk(rng *rapidhash.RNG, fraction float64, n int) []byte {
	raw := int(float64(n) * fraction)
	if raw < 1 {
		raw = 1
	}
	piece := make([]byte, raw)
	for i := range piece {
		piece[i] = byte(' ' + rng.Uint64()%95)
	}
	chunk := make([]byte, 0, n)
	for len(chunk) < n {
		chunk = append(chunk, piece...)
	}
	return chunk[:n]
}

func (g *generator) generate(n int) []byte {
	if g.pos+n > len(g.data) {
		g.pos = 0
		if n >= len(g.data) {
			panic("generator: requested slice larger than buffer")
		}
	}
	g.pos += n
	return g.data[g.pos-n : g.pos]
}

func benchSum64(s *stats, size int) {
	gen := newGenerator()
	var bs int64
	var h uint64
	for i := 0; i < *flagsNum; i++ {
		h = rapidhash.Sum64Seeded(gen.generate(size), *flagsSeed)
		s.finishSingleOp()
		bs += int64(size)
	}
	fmt.Fprintf(os.Stderr, "... hash=0x%016x\r", h)
	s.addBytes(bs)
	s.addMessage(fmt.Sprintf("(%d bytes per op)", size))
}

func benchDigest(s *stats) {
	gen := newGenerator()
	size := *flagsValueSize
	const chunk = 512
	var bs int64
	var h uint64
	d := rapidhash.NewSeeded(*flagsSeed)
	for i := 0; i < *flagsNum; i++ {
		d.Reset()
		for fed := 0; fed < size; fed += chunk {
			n := chunk
			if size-fed < n {
				n = size - fed
			}
			d.Write(gen.generate(n))
		}
		h = d.Sum64()
		s.finishSingleOp()
		bs += int64(size)
	}
	fmt.Fprintf(os.Stderr, "... hash=0x%016x\r", h)
	s.addBytes(bs)
	s.addMessage(fmt.Sprintf("(%d bytes per op, %d byte writes)", size, chunk))
}

func benchRNGFill(s *stats) {
	buf := make([]byte, *flagsValueSize)
	rng := rapidhash.NewRNG(*flagsSeed)
	var bs int64
	for i := 0; i < *flagsNum; i++ {
		rng.Fill(buf)
		s.finishSingleOp()
		bs += int64(len(buf))
	}
	s.addBytes(bs)
	s.addMessage(fmt.Sprintf("(%d bytes per op)", len(buf)))
}

func benchCRC32C(s *stats) {
	table := crc32.MakeTable(crc32.Castagnoli)
	data := strings.Repeat("x", *flagsValueSize)
	var bs int64
	var crc uint32
	for i := 0; i < *flagsNum; i++ {
		crc = crc32.Checksum([]byte(data), table)
		s.finishSingleOp()
		bs += int64(len(data))
	}
	fmt.Fprintf(os.Stderr, "... crc=0x%x\r", crc)
	s.addBytes(bs)
	s.addMessage(fmt.Sprintf("(%d bytes per op)", len(data)))
}

func benchSnappyCompress(s *stats) {
	gen := newGenerator()
	input := gen.generate(*flagsValueSize)
	var bs, produced int64
	for i := 0; i < *flagsNum; i++ {
		compressed := snappy.Encode(nil, input)
		produced += int64(len(compressed))
		bs += int64(len(input))
		s.finishSingleOp()
	}
	s.addMessage(fmt.Sprintf("(output: %.1f%%)", float64(produced*100)/float64(bs)))
	s.addBytes(bs)
}

func benchSnappyUncompress(s *stats) {
	gen := newGenerator()
	input := gen.generate(*flagsValueSize)
	compressed := snappy.Encode(nil, input)
	var bs int64
	var err error
	for i := 0; err == nil && i < *flagsNum; i++ {
		_, err = snappy.Decode(nil, compressed)
		bs += int64(len(input))
		s.finishSingleOp()
	}
	if err != nil {
		s.addMessage("(snappy failure)")
		return
	}
	s.addBytes(bs)
}

func printHeader() {
	fmt.Fprintf(os.Stdout, "Seed:       0x%016x\n", *flagsSeed)
	fmt.Fprintf(os.Stdout, "Values:     %d bytes each (%d bytes after compression)\n",
		*flagsValueSize, int64(float64(*flagsValueSize)**flagsCompressionRatio+0.5))
	fmt.Fprintf(os.Stdout, "Ops:        %d per benchmark\n", *flagsNum)
	fmt.Fprintf(os.Stdout, "------------------------------------------------\n")
}

func printEnvironment() {
	fmt.Fprintf(os.Stderr, "Date:       %s\n", time.Now().String())
	printCPUInfo()
}

func main() {
	flag.Parse()
	printEnvironment()
	printHeader()

	for _, name := range strings.Split(*flagsBenchmarks, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var method func(*stats)
		switch name {
		case "sum64":
			method = func(s *stats) { benchSum64(s, *flagsValueSize) }
		case "sum64small":
			method = func(s *stats) { benchSum64(s, *flagsSmallSize) }
		case "sum64large":
			method = func(s *stats) { benchSum64(s, *flagsLargeSize) }
		case "digest":
			method = benchDigest
		case "rngfill":
			method = benchRNGFill
		case "crc32c":
			method = benchCRC32C
		case "snappycomp":
			method = benchSnappyCompress
		case "snappyuncomp":
			method = benchSnappyUncompress
		default:
			fmt.Fprintf(os.Stderr, "unknown benchmark '%s'\n", name)
			continue
		}
		s := newStats()
		method(s)
		s.stop()
		s.report(name)
	}
}
