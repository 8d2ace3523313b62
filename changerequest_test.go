package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeRequestRoundTrip(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())

	cr := &ChangeRequest{ChangeIP: true, ChangePort: false}
	require.NoError(t, m.Build(cr))

	got := new(ChangeRequest)
	require.NoError(t, got.GetFrom(m))
	assert.True(t, got.ChangeIP)
	assert.False(t, got.ChangePort)
}

func TestChangeRequestBothFlags(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(&ChangeRequest{ChangeIP: true, ChangePort: true}))

	values, err := m.Values()
	require.NoError(t, err)
	cr, ok := values["change_request"].(ChangeRequestValue)
	require.True(t, ok)
	assert.True(t, cr.IP)
	assert.True(t, cr.Port)
}

func TestChangeRequestRejectsBadSize(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	m.Add(AttrChangeRequest, []byte{0x00, 0x00})

	got := new(ChangeRequest)
	assert.Error(t, got.GetFrom(m))
}
