package main

import (
	"github.com/pkg/errors"

	"github.com/octu0/lilcom"
	"github.com/octu0/lilcom/blocktransform"
)

// encode decorrelates samples block-by-block with a Walsh-Hadamard transform
// then bit-packs the resulting coefficients with a single IntStream. A short
// final block whose length isn't a power of two passes through
// blocktransform.Transform untouched (it no-ops on such lengths), so the
// decoder only needs to mirror the same block boundaries, not track them out
// of band.
func encode(samples []int32) ([]byte, error) {
	s := lilcom.NewIntStream()
	for i := 0; i < len(samples); i += blockSize {
		end := i + blockSize
		if end > len(samples) {
			end = len(samples)
		}
		block := append([]int32(nil), samples[i:end]...)
		blocktransform.Transform(block)
		for _, c := range block {
			s.Write(c)
		}
	}
	s.Flush()
	return s.Code(), nil
}

// decode inverts encode, recovering the exact original samples.
func decode(code []byte, n int) ([]int32, error) {
	d, err := lilcom.NewReverseIntStream(code)
	if err != nil {
		return nil, errors.Wrap(err, "decode: opening stream")
	}
	out := make([]int32, n)
	for i := 0; i < n; i += blockSize {
		end := i + blockSize
		if end > n {
			end = n
		}
		block := out[i:end]
		for j := range block {
			if ok := d.Read(&block[j]); ok != true {
				return nil, errors.Errorf("decode: truncated stream at sample %d", i+j)
			}
		}
		blocktransform.Invert(block)
	}
	return out, nil
}
