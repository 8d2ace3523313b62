package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestedTransportAttrRoundTrip(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodAllocate}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(&RequestedTransportAttr{Protocol: ProtocolUDP}))

	got := new(RequestedTransportAttr)
	require.NoError(t, got.GetFrom(m))
	assert.Equal(t, ProtocolUDP, got.Protocol)
}

func TestRequestedTransportAttrRejectsNonUDP(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodAllocate}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(&RequestedTransportAttr{Protocol: 6})) // TCP

	got := new(RequestedTransportAttr)
	assert.Error(t, got.GetFrom(m))
}
