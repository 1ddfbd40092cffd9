package sha256

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

type block = [16]uint32

// bitLength returns the message length in bits for a message of n bytes.
func bitLength(n uint64) (uint64, error) {
	if n > consts.MaxMessageLen {
		return 0, errors.Wrapf(ErrInputTooLarge, "message of %d bytes", n)
	}
	return n * 8, nil
}

// blockCount returns how many blocks a message of n bytes pads out to: the
// message, one 0x80 byte and the length field must all fit.
func blockCount(n uint64) uint64 {
	return (n+consts.LenFieldLen)/consts.BlockLen + 1
}

// preprocess pads msg and splits it into blocks in message order.
func preprocess(msg []byte) ([]block, error) {
	bits, err := bitLength(uint64(len(msg)))
	if err != nil {
		return nil, err
	}

	blocks := make([]block, blockCount(uint64(len(msg))))

	full := len(msg) / consts.BlockLen
	for i := 0; i < full; i++ {
		utils.BytesToWords((*[consts.BlockLen]byte)(msg[i*consts.BlockLen:]), &blocks[i])
	}

	// the remainder, the 1 bit and the length field span one or two blocks.
	var tail [2 * consts.BlockLen]byte
	rem := copy(tail[:], msg[full*consts.BlockLen:])
	tail[rem] = 0x80

	ntail := len(blocks) - full
	binary.BigEndian.PutUint64(tail[ntail*consts.BlockLen-consts.LenFieldLen:], bits)

	for i := 0; i < ntail; i++ {
		utils.BytesToWords((*[consts.BlockLen]byte)(tail[i*consts.BlockLen:]), &blocks[full+i])
	}

	return blocks, nil
}
