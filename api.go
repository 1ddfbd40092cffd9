// Package sha256 implements the SHA-256 hash algorithm as defined in
// FIPS 180-4, in portable Go.
package sha256

import (
	"github.com/pkg/errors"

	"github.com/zeebo/sha256/internal/consts"
)

// Size is the number of bytes in a SHA-256 digest.
const Size = consts.Size

// BlockSize is the number of bytes consumed by one compression.
const BlockSize = consts.BlockLen

// ErrInputTooLarge is returned when the bit length of a message does not fit
// in the 64-bit length field. Use errors.Is to match it.
var ErrInputTooLarge = errors.New("sha256: input too large")

// Sum256 returns the SHA-256 digest of the data. It fails only with
// ErrInputTooLarge.
func Sum256(data []byte) (out [Size]byte, err error) {
	blocks, err := preprocess(data)
	if err != nil {
		return out, err
	}

	var h hasher
	h.reset()
	for i := range blocks {
		h.absorb(&blocks[i])
	}
	h.finalize(&out)

	return out, nil
}

// MustSum256 is like Sum256 but panics if the data cannot be hashed.
func MustSum256(data []byte) [Size]byte {
	out, err := Sum256(data)
	if err != nil {
		panic(err)
	}
	return out
}
