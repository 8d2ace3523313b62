package stun

import "fmt"

// RequestedFamilyIPv4 and RequestedFamilyIPv6 are the address family
// codes used by REQUESTED-ADDRESS-FAMILY (RFC 8656 Section 18.2),
// matching the family codes used in XOR-MAPPED-ADDRESS.
const (
	RequestedFamilyIPv4 byte = 0x01
	RequestedFamilyIPv6 byte = 0x02
)

// RequestedAddressFamilyAttr is the TURN REQUESTED-ADDRESS-FAMILY
// attribute (RFC 8656 Section 18.2).
type RequestedAddressFamilyAttr struct {
	Family byte
}

// AddTo adds REQUESTED-ADDRESS-FAMILY to m.
func (r *RequestedAddressFamilyAttr) AddTo(m *Message) error {
	v := make([]byte, 4)
	v[0] = r.Family
	m.Add(AttrRequestedAddressFamily, v)
	return nil
}

// GetFrom decodes REQUESTED-ADDRESS-FAMILY from m.
func (r *RequestedAddressFamilyAttr) GetFrom(m *Message) error {
	v, err := m.Get(AttrRequestedAddressFamily)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrRequestedAddressFamily, len(v), 4); err != nil {
		return err
	}
	r.Family = v[0]
	if r.Family != RequestedFamilyIPv4 && r.Family != RequestedFamilyIPv6 {
		return fmt.Errorf("stun: invalid REQUESTED-ADDRESS-FAMILY value %d", r.Family)
	}
	return nil
}
