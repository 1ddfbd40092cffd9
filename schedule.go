package sha256

import (
	"math/bits"

	"github.com/zeebo/sha256/internal/consts"
)

type schedule = [consts.Rounds]uint32

func expand(b *block, w *schedule) {
	copy(w[:16], b[:])

	for i := 16; i < consts.Rounds; i++ {
		x := w[i-15]
		s0 := bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)

		y := w[i-2]
		s1 := bits.RotateLeft32(y, -17) ^ bits.RotateLeft32(y, -19) ^ (y >> 10)

		w[i] = w[i-16] + s0 + w[i-7] + s1
	}
}
