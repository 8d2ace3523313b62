package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionIDAttrRoundTrip(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodAllocate}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(&ConnectionIDAttr{ID: 0xdeadbeef}))

	got := new(ConnectionIDAttr)
	require.NoError(t, got.GetFrom(m))
	assert.Equal(t, uint32(0xdeadbeef), got.ID)
}
