package stun

// ConnectionIDAttr is the TURN CONNECTION-ID attribute (RFC 8656
// Section 14.10), identifying a TCP connection created with the
// Connect method.
type ConnectionIDAttr struct {
	ID uint32
}

// AddTo adds CONNECTION-ID to m.
func (c *ConnectionIDAttr) AddTo(m *Message) error {
	v := make([]byte, 4)
	bin.PutUint32(v, c.ID)
	m.Add(AttrConnectionID, v)
	return nil
}

// GetFrom decodes CONNECTION-ID from m.
func (c *ConnectionIDAttr) GetFrom(m *Message) error {
	v, err := m.Get(AttrConnectionID)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrConnectionID, len(v), 4); err != nil {
		return err
	}
	c.ID = bin.Uint32(v)
	return nil
}
