package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIceControlledRoundTrip(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(&IceControlled{TieBreaker: 0x0102030405060708}))

	got := new(IceControlled)
	require.NoError(t, got.GetFrom(m))
	assert.Equal(t, uint64(0x0102030405060708), got.TieBreaker)
}

func TestIceControllingRoundTrip(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(&IceControlling{TieBreaker: 42}))

	got := new(IceControlling)
	require.NoError(t, got.GetFrom(m))
	assert.Equal(t, uint64(42), got.TieBreaker)
}

func TestUseCandidateRoundTrip(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(UseCandidate))

	assert.NoError(t, UseCandidate.GetFrom(m))

	empty := New()
	empty.Type = m.Type
	require.NoError(t, empty.NewTransactionID())
	assert.Error(t, UseCandidate.GetFrom(empty))
}
