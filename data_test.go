package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataAttrRoundTrip(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassIndication, Method: MethodData}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(&DataAttr{Raw: []byte("payload")}))

	got := new(DataAttr)
	require.NoError(t, got.GetFrom(m))
	assert.Equal(t, []byte("payload"), got.Raw)
}
