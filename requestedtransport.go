package stun

import "fmt"

// ProtocolUDP is the IANA protocol number for UDP, the only transport
// protocol RFC 8656 allows in REQUESTED-TRANSPORT.
const ProtocolUDP byte = 17

// RequestedTransportAttr is the TURN REQUESTED-TRANSPORT attribute
// (RFC 8656 Section 14.7): a protocol number in the high byte, three
// reserved-for-future-use bytes that must be zero.
type RequestedTransportAttr struct {
	Protocol byte
}

// AddTo adds REQUESTED-TRANSPORT to m.
func (r *RequestedTransportAttr) AddTo(m *Message) error {
	v := make([]byte, 4)
	v[0] = r.Protocol
	m.Add(AttrRequestedTransport, v)
	return nil
}

// GetFrom decodes REQUESTED-TRANSPORT from m.
func (r *RequestedTransportAttr) GetFrom(m *Message) error {
	v, err := m.Get(AttrRequestedTransport)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrRequestedTransport, len(v), 4); err != nil {
		return err
	}
	r.Protocol = v[0]
	if r.Protocol != ProtocolUDP {
		return fmt.Errorf("stun: unsupported REQUESTED-TRANSPORT protocol %d", r.Protocol)
	}
	return nil
}
