package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityAttrRoundTrip(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(&PriorityAttr{Priority: 0x6e0001ff}))

	got := new(PriorityAttr)
	require.NoError(t, got.GetFrom(m))
	assert.Equal(t, uint32(0x6e0001ff), got.Priority)
}

func TestPriorityAttrRejectsBadSize(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	m.Add(AttrPriority, []byte{0x01, 0x02})

	got := new(PriorityAttr)
	assert.Error(t, got.GetFrom(m))
}
