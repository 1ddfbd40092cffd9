package sha256

import "strings"

var vectors = []struct {
	name   string
	data   string
	repeat int
	hash   string
}{
	{
		name: "empty",
		data: "",
		hash: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	},
	{
		name: "abc",
		data: "abc",
		hash: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	},
	{
		name: "448 bits",
		data: "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		hash: "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
	},
	{
		name: "896 bits",
		data: "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		hash: "cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1",
	},
	{
		name: "hello world",
		data: "hello world",
		hash: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
	},
	{
		name: "quick brown fox",
		data: "The quick brown fox jumps over the lazy dog",
		hash: "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592",
	},
	{
		name:   "million a",
		data:   "a",
		repeat: 1000000,
		hash:   "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
	},
}

func vectorInput(data string, repeat int) []byte {
	if repeat > 0 {
		data = strings.Repeat(data, repeat)
	}
	return []byte(data)
}
