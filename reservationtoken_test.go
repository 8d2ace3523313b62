package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationTokenAttrRoundTrip(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassSuccessResponse, Method: MethodAllocate}
	require.NoError(t, m.NewTransactionID())
	token := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, m.Build(&ReservationTokenAttr{Token: token}))

	got := new(ReservationTokenAttr)
	require.NoError(t, got.GetFrom(m))
	assert.Equal(t, token, got.Token)
}

func TestReservationTokenAttrRejectsWrongSize(t *testing.T) {
	a := &ReservationTokenAttr{Token: []byte{1, 2, 3}}
	m := New()
	m.Type = MessageType{Class: ClassSuccessResponse, Method: MethodAllocate}
	assert.Error(t, a.AddTo(m))
}
