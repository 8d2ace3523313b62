package stun

// XORPeerAddress is the TURN XOR-PEER-ADDRESS attribute (RFC 8656
// Section 14.3), the peer's transport address as seen by the server.
// Encoded identically to XOR-MAPPED-ADDRESS.
type XORPeerAddress struct {
	XORMappedAddress
}

// AddTo adds XOR-PEER-ADDRESS to m.
func (a *XORPeerAddress) AddTo(m *Message) error {
	return a.AddToAs(m, AttrXORPeerAddress)
}

// GetFrom decodes XOR-PEER-ADDRESS from m.
func (a *XORPeerAddress) GetFrom(m *Message) error {
	return a.GetFromAs(m, AttrXORPeerAddress)
}

// XORRelayedAddress is the TURN XOR-RELAYED-ADDRESS attribute (RFC
// 8656 Section 14.5), the transport address the server allocated for
// the client. Encoded identically to XOR-MAPPED-ADDRESS.
type XORRelayedAddress struct {
	XORMappedAddress
}

// AddTo adds XOR-RELAYED-ADDRESS to m.
func (a *XORRelayedAddress) AddTo(m *Message) error {
	return a.AddToAs(m, AttrXORRelayedAddress)
}

// GetFrom decodes XOR-RELAYED-ADDRESS from m.
func (a *XORRelayedAddress) GetFrom(m *Message) error {
	return a.GetFromAs(m, AttrXORRelayedAddress)
}
