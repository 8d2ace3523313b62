package stun

// ChannelNumberAttr is the TURN CHANNEL-NUMBER attribute (RFC 8656
// Section 14.1).
type ChannelNumberAttr struct {
	Number uint16
}

// AddTo adds CHANNEL-NUMBER to m.
func (c *ChannelNumberAttr) AddTo(m *Message) error {
	v := make([]byte, 4)
	bin.PutUint16(v[0:2], c.Number)
	m.Add(AttrChannelNumber, v)
	return nil
}

// GetFrom decodes CHANNEL-NUMBER from m.
func (c *ChannelNumberAttr) GetFrom(m *Message) error {
	v, err := m.Get(AttrChannelNumber)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrChannelNumber, len(v), 4); err != nil {
		return err
	}
	c.Number = bin.Uint16(v[0:2])
	return nil
}
