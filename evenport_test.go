package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvenPortAttrRoundTrip(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodAllocate}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(&EvenPortAttr{ReserveNext: true}))

	got := new(EvenPortAttr)
	require.NoError(t, got.GetFrom(m))
	assert.True(t, got.ReserveNext)
}

func TestEvenPortAttrNotReserving(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodAllocate}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(&EvenPortAttr{ReserveNext: false}))

	got := new(EvenPortAttr)
	require.NoError(t, got.GetFrom(m))
	assert.False(t, got.ReserveNext)
}
