package stun

// PriorityAttr is the ICE PRIORITY attribute (RFC 8445 Section 16.1).
type PriorityAttr struct {
	Priority uint32
}

// AddTo adds PRIORITY to m.
func (p *PriorityAttr) AddTo(m *Message) error {
	v := make([]byte, 4)
	bin.PutUint32(v, p.Priority)
	m.Add(AttrPriority, v)
	return nil
}

// GetFrom decodes PRIORITY from m.
func (p *PriorityAttr) GetFrom(m *Message) error {
	v, err := m.Get(AttrPriority)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrPriority, len(v), 4); err != nil {
		return err
	}
	p.Priority = bin.Uint32(v)
	return nil
}
