package sha256

import (
	"math/bits"

	"github.com/zeebo/sha256/internal/consts"
)

// compress runs the 64 rounds over the schedule starting from state and
// returns the resulting registers. The caller folds them into its state.
func compress(state *[8]uint32, w *schedule) [8]uint32 {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < consts.Rounds; i++ {
		s1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		t1 := h + s1 + ch + consts.K[i] + w[i]

		s0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		h, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	return [8]uint32{a, b, c, d, e, f, g, h}
}
