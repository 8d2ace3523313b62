package stun

// IceControlled is the ICE-CONTROLLED attribute (RFC 8445 Section
// 16.3), carrying the sending agent's tiebreaker value.
type IceControlled struct {
	TieBreaker uint64
}

// AddTo adds ICE-CONTROLLED to m.
func (c *IceControlled) AddTo(m *Message) error {
	v := make([]byte, 8)
	bin.PutUint64(v, c.TieBreaker)
	m.Add(AttrICEControlled, v)
	return nil
}

// GetFrom decodes ICE-CONTROLLED from m.
func (c *IceControlled) GetFrom(m *Message) error {
	v, err := m.Get(AttrICEControlled)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrICEControlled, len(v), 8); err != nil {
		return err
	}
	c.TieBreaker = bin.Uint64(v)
	return nil
}

// IceControlling is the ICE-CONTROLLING attribute (RFC 8445 Section
// 16.3), carrying the sending agent's tiebreaker value.
type IceControlling struct {
	TieBreaker uint64
}

// AddTo adds ICE-CONTROLLING to m.
func (c *IceControlling) AddTo(m *Message) error {
	v := make([]byte, 8)
	bin.PutUint64(v, c.TieBreaker)
	m.Add(AttrICEControlling, v)
	return nil
}

// GetFrom decodes ICE-CONTROLLING from m.
func (c *IceControlling) GetFrom(m *Message) error {
	v, err := m.Get(AttrICEControlling)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrICEControlling, len(v), 8); err != nil {
		return err
	}
	c.TieBreaker = bin.Uint64(v)
	return nil
}
