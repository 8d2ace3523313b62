package hmac

import (
	"crypto/sha1"   //nolint:gosec
	"crypto/sha256"
	"hash"
)

type hmacVector struct {
	hash      func() hash.Hash
	key       []byte
	in        []byte
	out       string
	size      int
	blocksize int
}

// hmacTests returns RFC 2202 test case 2 (HMAC-SHA1) and RFC 4231 test
// case 1 (HMAC-SHA256), used to exercise both the pooled and unpooled
// constructions the same way.
func hmacTests() []hmacVector {
	return []hmacVector{
		{
			hash:      sha1.New,
			key:       []byte("Jefe"),
			in:        []byte("what do ya want for nothing?"),
			out:       "effcdf6ae5eb2fa2d27416d5f184df9c259a7c79",
			size:      sha1.Size,
			blocksize: sha1.BlockSize,
		},
		{
			hash: sha256.New,
			key: []byte{
				0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b,
				0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b,
				0x0b, 0x0b, 0x0b, 0x0b,
			},
			in:        []byte("Hi There"),
			out:       "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
			size:      sha256.Size,
			blocksize: sha256.BlockSize,
		},
	}
}
