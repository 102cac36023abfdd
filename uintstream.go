package lilcom

import "github.com/pkg/errors"

// writeThreshold is the buffer size at which Write triggers a mid-stream
// FlushSome; drainCount is how many buffered symbols that flush drains.
// These are part of the wire format (they affect nothing observable about
// decoded values, but changing them changes the exact byte sequence a
// given input produces), so they are fixed constants, not options.
const (
	writeThreshold = 64
	drainCount     = 32
)

// UintStream packs a sequence of unsigned 32-bit integers into a
// variable-width, context-adaptive bit stream: nb(v[i]) <= w[i] <= 32, with
// |w[i] - w[i-1]| <= 1, and the top bit of v[i] elided whenever it is
// implied by both neighbouring widths. See the package doc for the full
// format.
//
// Call Write one or more times, then Flush exactly once, then Code.
type UintStream struct {
	buffer          []uint32
	mostRecentWidth int
	started         bool
	flushed         bool
	pendingZeros    uint32
	sink            *BitSink
}

// NewUintStream returns an empty encoder.
func NewUintStream() *UintStream {
	return &UintStream{sink: NewBitSink()}
}

// Write appends value to the stream. Writing after Flush is a programmer
// error and panics.
func (s *UintStream) Write(value uint32) {
	if s.flushed {
		panic("lilcom: Write called after Flush")
	}
	s.buffer = append(s.buffer, value)
	if len(s.buffer) >= writeThreshold {
		s.flushSome(drainCount)
	}
}

// Flush drains any buffered values, emits a pending zero run if one is open,
// and pads the bit sink to a byte boundary. Flush must be called exactly
// once, and only after at least one Write; violating either is a programmer
// error and panics.
func (s *UintStream) Flush() {
	if s.flushed {
		panic("lilcom: Flush called twice")
	}
	if len(s.buffer) == 0 {
		panic("lilcom: Flush called with nothing written")
	}
	s.flushed = true
	s.flushSome(len(s.buffer))
	if s.pendingZeros > 0 {
		s.emitZeroRun(s.pendingZeros)
		s.pendingZeros = 0
	}
	s.sink.Flush()
}

// Code returns the encoded bytes. Valid only after Flush; calling it
// earlier is a programmer error and panics.
func (s *UintStream) Code() []byte {
	if !s.flushed {
		panic("lilcom: Code called before Flush")
	}
	return s.sink.Code()
}

// flushSome plans widths for the entire current buffer, then emits codes
// for the first numToFlush symbols and drops them from the buffer.
func (s *UintStream) flushSome(numToFlush int) {
	size := len(s.buffer)
	if size == 0 {
		return
	}
	full := numToFlush == size
	w := planWidths(s.buffer, s.mostRecentWidth, s.started, full)

	if !s.started {
		s.writePrelude(w[0])
		s.started = true
		s.mostRecentWidth = w[0]
	}

	prev := s.mostRecentWidth
	cur := w[0]
	for i := 0; i < numToFlush; i++ {
		next := w[i+1]
		s.writeCode(prev, cur, next, s.buffer[i])
		prev = cur
		cur = next
	}
	s.mostRecentWidth = w[numToFlush-1]

	remaining := make([]uint32, size-numToFlush)
	copy(remaining, s.buffer[numToFlush:])
	s.buffer = remaining
}

// writePrelude emits w[0] in 5 bits, or 5 bits of 31 plus one extra bit for
// the two widths (31, 32) that don't fit in 5 bits alone.
func (s *UintStream) writePrelude(firstWidth int) {
	if firstWidth >= 31 {
		s.sink.Write(5, 31)
		s.sink.Write(1, uint32(firstWidth-31))
	} else {
		s.sink.Write(5, uint32(firstWidth))
	}
}

// writeCode emits the width-delta code and value bits for one symbol, or
// folds it into the pending zero run if its width is zero.
func (s *UintStream) writeCode(prev, cur, next int, value uint32) {
	if cur == 0 {
		s.pendingZeros++
		return
	}
	if s.pendingZeros > 0 {
		s.emitZeroRun(s.pendingZeros)
		s.pendingZeros = 0
	}

	switch next - cur {
	case 0:
		s.sink.Write(1, 0)
	case -1:
		s.sink.Write(2, 1)
	case 1:
		s.sink.Write(2, 3)
	default:
		panic("lilcom: width delta outside [-1, 1]")
	}

	topBitRedundant := prev <= cur && next <= cur
	if topBitRedundant {
		s.sink.Write(cur-1, value^(uint32(1)<<uint(cur-1)))
	} else {
		s.sink.Write(cur, value)
	}
}

// emitZeroRun writes the run-length code for k >= 1 consecutive zero-width
// symbols: a unary prefix of h = floor(log2(k)) zeros then a one bit,
// followed by h low bits of k.
func (s *UintStream) emitZeroRun(k uint32) {
	h := numBits(k) - 1
	s.sink.Write(h+1, uint32(1)<<uint(h))
	s.sink.Write(h, k&((uint32(1)<<uint(h))-1))
}

// ReverseUintStream decodes a stream written by UintStream.
type ReverseUintStream struct {
	source        *BitSource
	prevWidth     int
	curWidth      int
	zeroRunlength int // -1 means no zero run currently in progress
}

// NewReverseUintStream constructs a decoder over code, reading the 5- or
// 6-bit prelude immediately. code must start with encoded output and
// contain at least the first byte; a shorter slice is reported as an error
// rather than panicking, since it reflects corrupt/truncated input rather
// than caller misuse of the API.
func NewReverseUintStream(code []byte) (*ReverseUintStream, error) {
	src := NewBitSource(code)
	var width uint32
	if !src.Read(5, &width) {
		return nil, errors.Wrap(ErrTruncated, "reading prelude")
	}
	if width >= 31 {
		var extra uint32
		if !src.Read(1, &extra) {
			return nil, errors.Wrap(ErrTruncated, "reading prelude extra bit")
		}
		width += extra
	}
	return &ReverseUintStream{
		source:        src,
		prevWidth:     int(width),
		curWidth:      int(width),
		zeroRunlength: -1,
	}, nil
}

// Read decodes the next value into *out. It returns false on truncation or
// detected corruption, in which case *out and the decoder's internal state
// are unspecified and the caller must stop reading.
func (d *ReverseUintStream) Read(out *uint32) bool {
	prev, cur := d.prevWidth, d.curWidth

	next, ok := d.nextWidth(cur)
	if !ok {
		return false
	}

	topBitRedundant := cur > 0 && prev <= cur && next <= cur
	switch {
	case cur == 0:
		*out = 0
	case topBitRedundant:
		var v uint32
		if !d.source.Read(cur-1, &v) {
			return false
		}
		*out = v | (uint32(1) << uint(cur-1))
	default:
		var v uint32
		if !d.source.Read(cur, &v) {
			return false
		}
		*out = v
	}

	d.prevWidth = cur
	d.curWidth = next
	return true
}

// nextWidth determines w[i+1] from the bit stream given the current width,
// consuming either the 1-2 bit width-delta code or (when cur == 0) the
// zero-run machinery.
func (d *ReverseUintStream) nextWidth(cur int) (int, bool) {
	if cur > 0 {
		var bit1 uint32
		if !d.source.Read(1, &bit1) {
			return 0, false
		}
		if bit1 == 0 {
			return cur, true
		}
		var bit2 uint32
		if !d.source.Read(1, &bit2) {
			return 0, false
		}
		if bit2 != 0 {
			next := cur + 1
			if next > 32 {
				return 0, false
			}
			return next, true
		}
		next := cur - 1
		if next < 0 {
			return 0, false
		}
		return next, true
	}

	if d.zeroRunlength >= 0 {
		var next int
		if d.zeroRunlength == 0 {
			next = 1
		} else {
			next = 0
		}
		d.zeroRunlength--
		return next, true
	}

	numZerosRead := 0
	for {
		var bit uint32
		if !d.source.Read(1, &bit) || numZerosRead > 31 {
			return 0, false
		}
		if bit == 0 {
			numZerosRead++
		} else {
			break
		}
	}
	var x uint32
	if !d.source.Read(numZerosRead, &x) {
		return 0, false
	}
	k := (uint32(1) << uint(numZerosRead)) + x

	d.zeroRunlength = int(k) - 2
	if k == 1 {
		return 1, true
	}
	return 0, true
}

// NextCode returns the byte offset one past the last byte read so far.
func (d *ReverseUintStream) NextCode() int {
	return d.source.NextCode()
}
