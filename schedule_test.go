package sha256

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestExpand_ABC(t *testing.T) {
	blocks, err := preprocess([]byte("abc"))
	assert.NoError(t, err)

	var w schedule
	expand(&blocks[0], &w)

	for i := 0; i < 16; i++ {
		assert.Equal(t, w[i], blocks[0][i])
	}
	assert.Equal(t, w[16], uint32(0x61626380))
	assert.Equal(t, w[17], uint32(0x000f0000))
}

func TestExpand_Wraparound(t *testing.T) {
	var b block
	for i := range b {
		b[i] = 0xffffffff
	}

	var w schedule
	expand(&b, &w)

	// sigma0(0xffffffff) = 0x1fffffff and sigma1(0xffffffff) = 0x003fffff,
	// so the sum wraps modulo 2^32.
	assert.Equal(t, w[16], uint32(0x203ffffc))
}

func TestExpand_Independent(t *testing.T) {
	var b1, b2 block
	b1[0], b2[0] = 1, 2

	var w1, w2 schedule
	expand(&b1, &w1)
	expand(&b2, &w2)
	expand(&b1, &w2)

	assert.Equal(t, w1, w2)
}
