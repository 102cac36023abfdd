package lilcom

import "math/bits"

// numBits returns nb(x): the position of the highest set bit plus one, with
// nb(0) == 0. Values are 32-bit so the result is in [0, 32].
func numBits(x uint32) int {
	return bits.Len32(x)
}

// planWidths computes the per-symbol field-width sequence w for buf, given
// the width carried over from the previously flushed symbol.
//
//   - If started is false, w[0] is unconstrained from the left (seeded from
//     buf[0] alone); otherwise the forward pass is seeded with
//     mostRecentWidth - 1, i.e. the ghost w[-1] = mostRecentWidth.
//   - If full is true this is the final flush of the buffer: a ghost
//     w[N] = w[N-1] is appended before the backward pass runs, so the
//     returned slice has len(buf)+1 entries. Otherwise it has len(buf)
//     entries, and the caller must already know w[len(buf)] from a later
//     element still sitting in the buffer.
//
// The result is, by construction, the pointwise-smallest sequence with
// w[i] >= nb(buf[i]) and |w[i] - w[i-1]| <= 1 (§3 of the format).
func planWidths(buf []uint32, mostRecentWidth int, started bool, full bool) []int {
	n := len(buf)
	w := make([]int, n, n+1)

	prev := mostRecentWidth
	for i, v := range buf {
		nb := numBits(v)
		if i == 0 && !started {
			w[i] = nb
		} else {
			w[i] = max(nb, prev-1)
		}
		prev = w[i]
	}

	if full {
		w = append(w, w[n-1])
	}

	next := 0
	for i := len(w) - 1; i >= 0; i-- {
		next = max(w[i], next-1)
		w[i] = next
	}
	return w
}
