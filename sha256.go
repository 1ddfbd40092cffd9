package sha256

import (
	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

const (
	stateIdle uint8 = iota
	stateAccumulating
	stateFinalized
)

//
// hasher holds the running hash of one message
//

type hasher struct {
	h     [8]uint32
	state uint8
}

func (a *hasher) reset() {
	a.h = consts.IV
	a.state = stateIdle
}

func (a *hasher) absorb(b *block) {
	if a.state == stateFinalized {
		panic("sha256: absorb after finalize")
	}

	var w schedule
	expand(b, &w)
	out := compress(&a.h, &w)

	a.h[0] += out[0]
	a.h[1] += out[1]
	a.h[2] += out[2]
	a.h[3] += out[3]
	a.h[4] += out[4]
	a.h[5] += out[5]
	a.h[6] += out[6]
	a.h[7] += out[7]

	a.state = stateAccumulating
}

func (a *hasher) finalize(out *[consts.Size]byte) {
	utils.WordsToBytes(&a.h, out)
	a.state = stateFinalized
}
