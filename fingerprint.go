package stun

import (
	"fmt"
	"hash/crc32"
)

// FingerprintAttr is the Setter/Checker for the FINGERPRINT attribute.
// Its zero value, Fingerprint, is the value callers use.
//
// https://tools.ietf.org/html/rfc5389#section-15.5
type FingerprintAttr byte

// CRCMismatch reports that a FINGERPRINT attribute's CRC-32 did not
// match the bytes that preceded it.
type CRCMismatch struct {
	Expected uint32
	Actual   uint32
}

func (m CRCMismatch) Error() string {
	return fmt.Sprintf("CRC mismatch: %x (expected) != %x (actual)",
		m.Expected,
		m.Actual,
	)
}

// Fingerprint is the FINGERPRINT Setter/Checker.
//
//	m := New()
//	Fingerprint.AddTo(m)
var Fingerprint FingerprintAttr

const (
	fingerprintXORValue uint32 = 0x5354554e
	fingerprintSize            = 4 // 32 bit
)

// FingerprintValue returns the CRC-32 of b XOR'd with 0x5354554e. b is
// the STUN message up to but excluding the FINGERPRINT attribute
// itself; the XOR keeps the value from colliding with an application
// payload that also happens to use a bare CRC-32.
func FingerprintValue(b []byte) uint32 {
	return crc32.ChecksumIEEE(b) ^ fingerprintXORValue
}

// AddTo appends FINGERPRINT to m, computing its CRC-32 over the header
// and attributes already written, with the header length field first
// rewritten to include the trailer itself. MessageIntegrity.AddTo
// performs the same fixup for MESSAGE-INTEGRITY.
func (FingerprintAttr) AddTo(m *Message) error {
	original := m.Length
	m.Length += fingerprintSize + attributeHeaderSize
	m.WriteLength()
	crc := FingerprintValue(m.Raw)
	m.Length = original

	v := make([]byte, fingerprintSize)
	bin.PutUint32(v, crc)
	m.Add(AttrFingerprint, v)
	return nil
}

// Check verifies the FINGERPRINT attribute on m, returning
// *AttrLengthErr, ErrAttributeNotFound, or *CRCMismatch on failure.
func (FingerprintAttr) Check(m *Message) error {
	v, err := m.Get(AttrFingerprint)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrFingerprint, len(v), fingerprintSize); err != nil {
		return err
	}
	got := bin.Uint32(v)
	bodyEnd := len(m.Raw) - (fingerprintSize + attributeHeaderSize)
	expected := FingerprintValue(m.Raw[:bodyEnd])
	if expected != got {
		return &CRCMismatch{Expected: expected, Actual: got}
	}
	return nil
}
