package utils

import (
	"encoding/binary"
)

// BytesToWords decodes a 64 byte block into 16 big-endian words.
func BytesToWords(bytes *[64]uint8, words *[16]uint32) {
	words[0] = binary.BigEndian.Uint32(bytes[0*4:])
	words[1] = binary.BigEndian.Uint32(bytes[1*4:])
	words[2] = binary.BigEndian.Uint32(bytes[2*4:])
	words[3] = binary.BigEndian.Uint32(bytes[3*4:])
	words[4] = binary.BigEndian.Uint32(bytes[4*4:])
	words[5] = binary.BigEndian.Uint32(bytes[5*4:])
	words[6] = binary.BigEndian.Uint32(bytes[6*4:])
	words[7] = binary.BigEndian.Uint32(bytes[7*4:])
	words[8] = binary.BigEndian.Uint32(bytes[8*4:])
	words[9] = binary.BigEndian.Uint32(bytes[9*4:])
	words[10] = binary.BigEndian.Uint32(bytes[10*4:])
	words[11] = binary.BigEndian.Uint32(bytes[11*4:])
	words[12] = binary.BigEndian.Uint32(bytes[12*4:])
	words[13] = binary.BigEndian.Uint32(bytes[13*4:])
	words[14] = binary.BigEndian.Uint32(bytes[14*4:])
	words[15] = binary.BigEndian.Uint32(bytes[15*4:])
}

// WordsToBytes serializes 8 words as 32 big-endian bytes in order.
func WordsToBytes(words *[8]uint32, bytes *[32]uint8) {
	binary.BigEndian.PutUint32(bytes[0*4:], words[0])
	binary.BigEndian.PutUint32(bytes[1*4:], words[1])
	binary.BigEndian.PutUint32(bytes[2*4:], words[2])
	binary.BigEndian.PutUint32(bytes[3*4:], words[3])
	binary.BigEndian.PutUint32(bytes[4*4:], words[4])
	binary.BigEndian.PutUint32(bytes[5*4:], words[5])
	binary.BigEndian.PutUint32(bytes[6*4:], words[6])
	binary.BigEndian.PutUint32(bytes[7*4:], words[7])
}
