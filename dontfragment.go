package stun

// DontFragmentAttr is the TURN DONT-FRAGMENT attribute (RFC 8656
// Section 14.8), a flag with no value requesting the server set the
// IP "don't fragment" bit on relayed UDP datagrams.
type DontFragmentAttr struct{}

// DontFragment is shorthand for DontFragmentAttr.
var DontFragment DontFragmentAttr

// AddTo adds DONT-FRAGMENT to m.
func (DontFragmentAttr) AddTo(m *Message) error {
	m.Add(AttrDontFragment, nil)
	return nil
}

// GetFrom reports whether DONT-FRAGMENT is present in m.
func (DontFragmentAttr) GetFrom(m *Message) error {
	_, err := m.Get(AttrDontFragment)
	return err
}
