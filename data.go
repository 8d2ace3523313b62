package stun

// DataAttr is the TURN DATA attribute (RFC 8656 Section 14.4),
// carrying the raw application payload being relayed.
type DataAttr struct {
	Raw []byte
}

// AddTo adds DATA to m.
func (d *DataAttr) AddTo(m *Message) error {
	m.Add(AttrData, d.Raw)
	return nil
}

// GetFrom decodes DATA from m.
func (d *DataAttr) GetFrom(m *Message) error {
	v, err := m.Get(AttrData)
	if err != nil {
		return err
	}
	d.Raw = v
	return nil
}
