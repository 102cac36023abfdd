// Command audiodemo exercises the lilcom core codec end to end: it
// generates a synthetic audio-like waveform, decorrelates it block by block
// with a Walsh-Hadamard transform, and bit-packs the residual coefficients
// with lilcom.IntStream. It is a demonstration program only; none of its
// framing (the fixed sample count, the block size) is part of the lilcom
// wire format, which transmits neither.
package main

import (
	"fmt"
	"math"
	"time"
)

const (
	sampleCount = 4000
	blockSize   = 16 // must be a power of two for blocktransform.Transform
)

func synthesize(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		t := float64(i)
		envelope := math.Exp(-t / float64(n) * 3)
		tone := math.Sin(t*0.09) + 0.5*math.Sin(t*0.021)
		out[i] = int32(math.Round(tone * envelope * 12000))
	}
	return out
}

func main() {
	samples := synthesize(sampleCount)

	t0 := time.Now()
	code, err := encode(samples)
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}
	encodeElapsed := time.Since(t0)

	t0 = time.Now()
	decoded, err := decode(code, len(samples))
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}
	decodeElapsed := time.Since(t0)

	for i := range samples {
		if samples[i] != decoded[i] {
			panic(fmt.Sprintf("round trip mismatch at %d: %d != %d", i, samples[i], decoded[i]))
		}
	}

	naiveBytes := len(samples) * 4
	fmt.Printf("samples=%d block=%d\n", len(samples), blockSize)
	fmt.Printf("naive=%dB lilcom=%dB ratio=%.1f%%\n",
		naiveBytes, len(code), 100*float64(len(code))/float64(naiveBytes))
	fmt.Printf("encode=%s decode=%s\n", encodeElapsed, decodeElapsed)
}
