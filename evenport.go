package stun

const evenPortReserveBit = 0x80

// EvenPortAttr is the TURN EVEN-PORT attribute (RFC 8656 Section
// 14.6): a request that the relayed transport address use an even
// port, optionally reserving the next-higher odd port too.
type EvenPortAttr struct {
	ReserveNext bool
}

// AddTo adds EVEN-PORT to m.
func (e *EvenPortAttr) AddTo(m *Message) error {
	var b byte
	if e.ReserveNext {
		b = evenPortReserveBit
	}
	m.Add(AttrEvenPort, []byte{b})
	return nil
}

// GetFrom decodes EVEN-PORT from m.
func (e *EvenPortAttr) GetFrom(m *Message) error {
	v, err := m.Get(AttrEvenPort)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrEvenPort, len(v), 1); err != nil {
		return err
	}
	e.ReserveNext = v[0]&evenPortReserveBit != 0
	return nil
}
