package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownAttributesRoundTrip(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassErrorResponse, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())

	src := &UnknownAttributes{Types: []AttrType{AttrPriority, AttrICEControlled}}
	require.NoError(t, m.Build(src))

	got := new(UnknownAttributes)
	require.NoError(t, got.GetFrom(m))
	assert.Equal(t, []AttrType{AttrPriority, AttrICEControlled}, got.Types)
}

func TestUnknownAttributesRejectsOddLength(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassErrorResponse, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	m.Add(AttrUnknownAttributes, []byte{0x00, 0x01, 0x02})

	got := new(UnknownAttributes)
	assert.Error(t, got.GetFrom(m))
}
