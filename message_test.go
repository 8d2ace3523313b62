package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageTypeValueRoundTrip(t *testing.T) {
	cases := []MessageType{
		{Class: ClassRequest, Method: MethodBinding},
		{Class: ClassIndication, Method: MethodBinding},
		{Class: ClassSuccessResponse, Method: MethodBinding},
		{Class: ClassErrorResponse, Method: MethodBinding},
		{Class: ClassRequest, Method: MethodAllocate},
		{Class: ClassSuccessResponse, Method: MethodChannelBind},
		{Class: ClassErrorResponse, Method: Method(0x7ff)},
	}
	for _, tc := range cases {
		v := tc.Value()
		var got MessageType
		got.ReadValue(v)
		assert.Equal(t, tc, got)
	}
}

func TestIsMessage(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	m.WriteHeader()
	assert.True(t, IsMessage(m.Raw))

	assert.False(t, IsMessage([]byte("short")))
	assert.False(t, IsMessage(make([]byte, messageHeaderSize)))
}

func TestMessageResetClearsAttributesAndRaw(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(NewSoftware("foo")))
	require.NotEmpty(t, m.Attributes)

	m.Reset()
	assert.Empty(t, m.Attributes)
	assert.Equal(t, uint32(0), m.Length)
	assert.Empty(t, m.Raw)
}

func TestMessageEqual(t *testing.T) {
	a := New()
	a.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, a.NewTransactionID())
	require.NoError(t, a.Build(NewSoftware("foo")))

	b := New()
	b.Type = a.Type
	b.TransactionID = a.TransactionID
	require.NoError(t, b.Build(NewSoftware("foo")))

	assert.True(t, a.Equal(b))

	require.NoError(t, b.NewTransactionID())
	assert.False(t, a.Equal(b))
}

func TestDecodeToleratesMissingFinalPadding(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(NewSoftware("abc")))

	// "abc" encodes as a 3-byte value padded to 4; strip the single
	// trailing padding byte and shrink the header length to match,
	// simulating a peer that omits padding on the last attribute.
	require.Equal(t, byte(0), m.Raw[len(m.Raw)-1])
	unpadded := m.Raw[:len(m.Raw)-1]
	rewriteLength(unpadded, -1)

	decoded := New()
	decoded.Raw = unpadded
	require.NoError(t, decoded.Decode())

	software := new(Software)
	require.NoError(t, software.GetFrom(decoded))
	assert.Equal(t, "abc", software.String())
}

func TestDecodeRejectsTruncatedFinalAttribute(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(NewSoftware("abcd")))

	truncated := m.Raw[:len(m.Raw)-2]
	rewriteLength(truncated, -2)

	decoded := New()
	decoded.Raw = truncated
	assert.Error(t, decoded.Decode())
}

func TestMessageClassStringUnknown(t *testing.T) {
	assert.Equal(t, "0x7", MessageClass(0x7).String())
}

func TestMethodStringUnknown(t *testing.T) {
	assert.Equal(t, "0x7ff", Method(0x7ff).String())
}
