package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodeAttributeRoundTrip(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassErrorResponse, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())

	src := &ErrorCodeAttribute{Code: CodeBadRequest, Reason: []byte("bad request")}
	require.NoError(t, m.Build(src))

	got := new(ErrorCodeAttribute)
	require.NoError(t, got.GetFrom(m))
	assert.Equal(t, CodeBadRequest, got.Code)
	assert.Equal(t, "bad request", string(got.Reason))
}

func TestErrorCodeAttributeString(t *testing.T) {
	c := &ErrorCodeAttribute{Code: 404, Reason: []byte("not found!")}
	assert.Equal(t, "404: not found!", c.String())
}

func TestErrorCodeAttributeRejectsBadClass(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassErrorResponse, Method: MethodBinding}
	src := &ErrorCodeAttribute{Code: 150, Reason: []byte("nope")}
	require.Error(t, src.AddTo(m))
}

func TestErrorCodeAddToUsesDefaultReason(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassErrorResponse, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(CodeStaleNonce))

	got := new(ErrorCodeAttribute)
	require.NoError(t, got.GetFrom(m))
	assert.Equal(t, "Stale Nonce", string(got.Reason))
}

func TestErrorCodeAddToNoDefaultReason(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassErrorResponse, Method: MethodBinding}
	err := ErrorCode(499).AddTo(m)
	assert.ErrorIs(t, err, ErrNoDefaultReason)
}
