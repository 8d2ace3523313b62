package stun

// CHANGE-REQUEST bit positions, RFC 3489 Section 11.2.4.
const (
	changeIPFlag   = 0x04
	changePortFlag = 0x02
)

// ChangeRequest is the legacy CHANGE-REQUEST attribute (RFC 3489
// Section 11.2.4), used by a client to ask a server to respond from a
// different IP, port, or both, as a test for NAT behavior discovery.
type ChangeRequest struct {
	ChangeIP   bool
	ChangePort bool
}

// AddTo adds CHANGE-REQUEST to m.
func (c *ChangeRequest) AddTo(m *Message) error {
	v := make([]byte, 4)
	var flags uint32
	if c.ChangeIP {
		flags |= changeIPFlag
	}
	if c.ChangePort {
		flags |= changePortFlag
	}
	bin.PutUint32(v, flags)
	m.Add(AttrChangeRequest, v)
	return nil
}

// GetFrom decodes CHANGE-REQUEST from m.
func (c *ChangeRequest) GetFrom(m *Message) error {
	v, err := m.Get(AttrChangeRequest)
	if err != nil {
		return err
	}
	return decodeChangeRequestValue(v, c)
}

func decodeChangeRequestValue(v []byte, c *ChangeRequest) error {
	if err := CheckSize(AttrChangeRequest, len(v), 4); err != nil {
		return err
	}
	flags := bin.Uint32(v)
	c.ChangeIP = flags&changeIPFlag != 0
	c.ChangePort = flags&changePortFlag != 0
	return nil
}
