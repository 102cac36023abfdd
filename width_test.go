package lilcom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNumBits(t *testing.T) {
	cases := []struct {
		x    uint32
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{7, 3},
		{0x7FFFFFFF, 31},
		{0x80000000, 32},
		{0xFFFFFFFF, 32},
	}
	for _, c := range cases {
		if got := numBits(c.x); got != c.want {
			t.Errorf("numBits(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestPlanWidths(t *testing.T) {
	t.Run("slope smoothing across a low-valued interior", func(tt *testing.T) {
		buf := []uint32{7, 0, 0, 7}
		w := planWidths(buf, 0, false, true)
		want := []int{3, 2, 2, 3, 3}
		if cmp.Equal(w, want) != true {
			tt.Errorf("%v != %v", w, want)
		}
	})
	t.Run("zero value can legitimately carry zero width", func(tt *testing.T) {
		// nb(1)=1, nb(0)=0, nb(1)=1; the floor sequence [1,0,1] already
		// satisfies the slope-1 bound on its own, so it IS the pointwise
		// minimal width sequence: no smoothing raises the middle width.
		// See DESIGN.md for why this differs from the spec's own
		// illustrative prose for this input.
		buf := []uint32{1, 0, 1}
		w := planWidths(buf, 0, false, true)
		want := []int{1, 0, 1, 1}
		if cmp.Equal(w, want) != true {
			tt.Errorf("%v != %v", w, want)
		}
	})
	t.Run("single value", func(tt *testing.T) {
		buf := []uint32{5}
		w := planWidths(buf, 0, false, true)
		want := []int{3, 3}
		if cmp.Equal(w, want) != true {
			tt.Errorf("%v != %v", w, want)
		}
	})
	t.Run("partial flush leaves tail unconstrained from the right", func(tt *testing.T) {
		buf := []uint32{5, 5}
		w := planWidths(buf, 0, false, false)
		want := []int{3, 3}
		if cmp.Equal(w, want) != true {
			tt.Errorf("%v != %v", w, want)
		}
	})
	t.Run("started carries width from the previous flush", func(tt *testing.T) {
		buf := []uint32{1}
		w := planWidths(buf, 10, true, true)
		// prev = 10, so forward pass seeds w[0] = max(nb(1), 10-1) = 9.
		want := []int{9, 9}
		if cmp.Equal(w, want) != true {
			tt.Errorf("%v != %v", w, want)
		}
	})
	t.Run("slope bound holds for random-ish input", func(tt *testing.T) {
		buf := []uint32{1, 1000000, 2, 500, 0, 0, 0, 9999999}
		w := planWidths(buf, 0, false, true)
		for i := 1; i < len(w); i++ {
			d := w[i] - w[i-1]
			if d > 1 || d < -1 {
				tt.Errorf("slope violated at %d: %d -> %d", i, w[i-1], w[i])
			}
		}
		for i, v := range buf {
			if w[i] < numBits(v) {
				tt.Errorf("w[%d]=%d insufficient for nb(%d)=%d", i, w[i], v, numBits(v))
			}
		}
	})
}
