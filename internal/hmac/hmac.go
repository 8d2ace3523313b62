// Package hmac implements a poolable HMAC construction so that
// MESSAGE-INTEGRITY computation (crypto/hmac wrapped in crypto/sha1)
// does not allocate a fresh hasher per STUN message. See pool.go for
// the sync.Pool wiring; this file carries the construction itself.
package hmac

import (
	"crypto/subtle"
	"hash"
)

// hmac implements hash.Hash by maintaining the inner and outer hash
// states directly, rather than allocating a new pair of them (and a
// fresh key pad) on every message the way crypto/hmac.New does. resetTo
// rekeys an existing instance in place so it can be reused from a
// sync.Pool.
type hmac struct {
	size      int
	blocksize int
	inner     hash.Hash
	outer     hash.Hash
	ipad      []byte
	opad      []byte
}

// New returns a new HMAC hash using the given hash constructor and key.
func New(h func() hash.Hash, key []byte) hash.Hash {
	hm := &hmac{
		inner: h(),
		outer: h(),
	}
	hm.size = hm.inner.Size()
	hm.blocksize = hm.inner.BlockSize()
	hm.ipad = make([]byte, hm.blocksize)
	hm.opad = make([]byte, hm.blocksize)
	hm.resetTo(key)
	return hm
}

func (h *hmac) Write(p []byte) (int, error) {
	return h.inner.Write(p)
}

func (h *hmac) Sum(in []byte) []byte {
	origLen := len(in)
	in = h.inner.Sum(in)
	h.outer.Reset()
	h.outer.Write(h.opad) //nolint:errcheck // hash.Hash.Write never errors.
	h.outer.Write(in[origLen:])
	return h.outer.Sum(in[:origLen])
}

// Reset rewinds the inner hash to just after the ipad write, matching
// the state New/resetTo left it in. It does not rekey: use resetTo for
// that.
func (h *hmac) Reset() {
	h.inner.Reset()
	h.inner.Write(h.ipad) //nolint:errcheck // hash.Hash.Write never errors.
}

func (h *hmac) Size() int { return h.size }

func (h *hmac) BlockSize() int { return h.blocksize }

// assertHMACSize panics if h does not report the expected digest and
// block size. Used to catch pool misuse (e.g. handing a SHA-1 instance
// back through the SHA-256 pool) early and loudly rather than
// producing a silently wrong MAC.
func assertHMACSize(h *hmac, size, blocksize int) {
	if h.Size() != size || h.BlockSize() != blocksize {
		panic("stun/internal/hmac: hash size mismatch")
	}
}

// Equal does a constant-time comparison of two MACs.
func Equal(got, expected []byte) bool {
	return subtle.ConstantTimeCompare(got, expected) == 1
}
