package stun

import (
	"bytes"
	"errors"
	"fmt"
)

// RawAttribute is a decoded TLV as it sits on the wire: a type code,
// its unpadded length, and its payload bytes. Higher-level attribute
// values (MappedAddress, XORMappedAddress, ErrorCodeAttribute, ...)
// are derived from a RawAttribute by the relevant Getter/Setter pair.
type RawAttribute struct {
	Type   AttrType
	Length uint16
	Value  []byte
}

// Equal returns true if a equals b.
func (a RawAttribute) Equal(b RawAttribute) bool {
	if a.Type != b.Type {
		return false
	}
	if a.Length != b.Length {
		return false
	}
	return bytes.Equal(a.Value, b.Value)
}

func (a RawAttribute) String() string {
	return fmt.Sprintf("%s: 0x%x", a.Type, a.Value)
}

// Attributes is an ordered collection of decoded TLVs, in the order
// they appeared on (or will appear on) the wire. Order is preserved
// for round-tripping, while Get offers the unordered-mapping view
// consumers most often want: on duplicate names, the later value
// wins.
type Attributes []RawAttribute

// Get returns the last occurrence of the attribute with type t, and
// whether it was found.
func (a Attributes) Get(t AttrType) (RawAttribute, bool) {
	var (
		found RawAttribute
		ok    bool
	)
	for _, candidate := range a {
		if candidate.Type == t {
			found = candidate
			ok = true
		}
	}
	return found, ok
}

// GetAll returns every occurrence of attribute type t, in wire order.
func (a Attributes) GetAll(t AttrType) []RawAttribute {
	var out []RawAttribute
	for _, candidate := range a {
		if candidate.Type == t {
			out = append(out, candidate)
		}
	}
	return out
}

// ErrAttributeNotFound means that the attribute was not found in the
// message, which is also what is returned when the peer simply did not
// send it; callers distinguish "not present" from "present but
// malformed" via the error type.
var ErrAttributeNotFound = errors.New("attribute not found")

// Get returns the value of the attribute with type t, or
// ErrAttributeNotFound.
func (m *Message) Get(t AttrType) ([]byte, error) {
	v, ok := m.Attributes.Get(t)
	if !ok {
		return nil, ErrAttributeNotFound
	}
	return v.Value, nil
}

// AttrLengthErr means that the length of an attribute's payload did
// not match what its shape requires.
type AttrLengthErr struct {
	Expected int
	Got      int
	Attr     AttrType
}

func (e *AttrLengthErr) Error() string {
	return fmt.Sprintf(
		"incorrect length of %v attribute: got %d, expected %d",
		e.Attr, e.Got, e.Expected,
	)
}

// ErrAttrSizeInvalid means that a fixed-size attribute's payload was
// not of the expected size.
var ErrAttrSizeInvalid = errors.New("attribute size is invalid")

// ErrAttrSizeOverflow means that a fixed-size attribute's payload
// would have under-read the address family it declares.
var ErrAttrSizeOverflow = errors.New("attribute size too small for declared family")

// STUN aligns attributes on 32-bit boundaries: attributes whose content
// is not a multiple of 4 bytes are padded with 1, 2, or 3 bytes so that
// its value contains a multiple of 4 bytes. The padding bits are
// ignored, and may be any value.
//
// https://tools.ietf.org/html/rfc5389#section-15
const attributePadding = 4

// nearestPaddedValueLength rounds l up to the nearest multiple of
// attributePadding.
func nearestPaddedValueLength(l int) int {
	n := attributePadding * (l / attributePadding)
	if n < l {
		n += attributePadding
	}
	return n
}
