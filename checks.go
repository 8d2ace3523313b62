package stun

import "github.com/halfwave/stun/internal/hmac"

// CheckSize returns an *AttrLengthErr if got is not equal to expected.
//
// Earlier generations of this codec generated two versions of this
// function behind a "debug" build tag: a plain sentinel error for
// release builds, and a detailed *AttrLengthErr for troubleshooting
// builds. That meta-programming buys nothing a single function with a
// typed error can't, so there is exactly one CheckSize now.
func CheckSize(a AttrType, got, expected int) error {
	if got == expected {
		return nil
	}
	return &AttrLengthErr{Attr: a, Got: got, Expected: expected}
}

// CheckOverflow returns an error if got is smaller than expected,
// which would under-read the address family's declared length.
func CheckOverflow(a AttrType, got, expected int) error {
	if got < expected {
		return &AttrLengthErr{Attr: a, Got: got, Expected: expected}
	}
	return nil
}

func checkHMAC(got, expected []byte) error {
	if hmac.Equal(got, expected) {
		return nil
	}
	return ErrIntegrityMismatch
}
