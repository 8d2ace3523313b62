package stun

import "fmt"

// UnknownAttributes is the UNKNOWN-ATTRIBUTES attribute (RFC 5389
// Section 15.9), present in a 420 (Unknown Attribute) error response.
// Each entry is an attribute type the responder did not understand.
//
// Note: RFC 3489 padded this field by duplicating the last entry; this
// codec follows RFC 5389's normal attribute padding rules instead.
type UnknownAttributes struct {
	Types []AttrType
}

// AddTo adds UNKNOWN-ATTRIBUTES to m.
func (u *UnknownAttributes) AddTo(m *Message) error {
	v := make([]byte, len(u.Types)*2)
	for i, t := range u.Types {
		bin.PutUint16(v[i*2:], uint16(t))
	}
	m.Add(AttrUnknownAttributes, v)
	return nil
}

// GetFrom decodes UNKNOWN-ATTRIBUTES from m.
func (u *UnknownAttributes) GetFrom(m *Message) error {
	v, err := m.Get(AttrUnknownAttributes)
	if err != nil {
		return err
	}
	if len(v)%2 != 0 {
		return fmt.Errorf("stun: UNKNOWN-ATTRIBUTES value has odd length %d", len(v))
	}
	u.Types = u.Types[:0]
	for i := 0; i+1 < len(v); i += 2 {
		u.Types = append(u.Types, AttrType(bin.Uint16(v[i:i+2])))
	}
	return nil
}
