package lilcom

// zigzagEncode maps a signed 32-bit integer onto an unsigned one so that
// small-magnitude values (positive or negative) end up as small unsigned
// values: 0, -1, 1, -2, 2, ... -> 0, 1, 2, 3, 4, ...
//
// Written as the bit trick uint32((s<<1)^(s>>31)) rather than the
// literal "s >= 0 ? 2*s : -(2*s)-1" from the defining relation, because the
// literal form overflows int32 at s == math.MinInt32 before the final -1;
// the bit trick is exact across the whole int32 range (same technique as
// the 16-bit zig-zag in the teacher's image codec encode.go toUint16).
func zigzagEncode(s int32) uint32 {
	return uint32((s << 1) ^ (s >> 31))
}

// zigzagDecode is the inverse of zigzagEncode.
func zigzagDecode(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

// IntStream packs signed 32-bit integers by zig-zag mapping them onto
// unsigned ones and delegating to UintStream. It owns its UintStream rather
// than extending it, so there is no virtual dispatch anywhere in the
// encode path.
type IntStream struct {
	u *UintStream
}

// NewIntStream returns an empty encoder.
func NewIntStream() *IntStream {
	return &IntStream{u: NewUintStream()}
}

// Write appends value to the stream.
func (s *IntStream) Write(value int32) {
	s.u.Write(zigzagEncode(value))
}

// Flush drains the stream; see UintStream.Flush.
func (s *IntStream) Flush() {
	s.u.Flush()
}

// Code returns the encoded bytes; see UintStream.Code.
func (s *IntStream) Code() []byte {
	return s.u.Code()
}

// ReverseIntStream decodes a stream written by IntStream.
type ReverseIntStream struct {
	u *ReverseUintStream
}

// NewReverseIntStream constructs a decoder over code; see
// NewReverseUintStream.
func NewReverseIntStream(code []byte) (*ReverseIntStream, error) {
	u, err := NewReverseUintStream(code)
	if err != nil {
		return nil, err
	}
	return &ReverseIntStream{u: u}, nil
}

// Read decodes the next value into *out; see ReverseUintStream.Read.
func (d *ReverseIntStream) Read(out *int32) bool {
	var u uint32
	if !d.u.Read(&u) {
		return false
	}
	*out = zigzagDecode(u)
	return true
}

// NextCode returns the byte offset one past the last byte read so far.
func (d *ReverseIntStream) NextCode() int {
	return d.u.NextCode()
}
