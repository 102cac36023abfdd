// Package lilcom implements the core coder/decoder of a lossless-ish,
// audio-oriented integer stream compressor: a variable-width,
// context-adaptive bit-packer for sequences of 32-bit integers whose
// magnitudes are locally correlated (small values tend to follow small
// values, large values tend to follow large values).
//
// UintStream / ReverseUintStream encode and decode sequences of unsigned
// 32-bit integers. IntStream / ReverseIntStream wrap those with a zig-zag
// mapping for signed sequences.
//
// Each value v[i] is packed into a field of w[i] bits, where w[i] is at
// least nb(v[i]) (the number of bits needed to represent v[i]) and adjacent
// widths differ by at most one. The width sequence itself is coded as a
// 1-2 bit delta per symbol rather than transmitted outright, runs of
// zero-width symbols collapse into a single run-length code, and the
// leading bit of a value is elided whenever both neighbouring widths make
// it redundant. See bitstream.go, width.go, uintstream.go and intstream.go
// for the exact wire format.
//
// The format has no length header and no terminator: callers must track
// how many values they wrote and read that many back.
package lilcom
