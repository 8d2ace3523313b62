package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageIntegrityAddToAndCheck(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(NewSoftware("abc")))

	key := NewShortTermIntegrity("password")
	require.NoError(t, key.AddTo(m))

	assert.NoError(t, key.Check(m))
}

func TestMessageIntegrityCheckFailsOnWrongKey(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(NewSoftware("abc")))

	require.NoError(t, NewShortTermIntegrity("password").AddTo(m))

	err := NewShortTermIntegrity("other").Check(m)
	assert.ErrorIs(t, err, ErrIntegrityMismatch)
}

func TestMessageIntegrityRejectsFingerprintBefore(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(NewSoftware("abc")))
	require.NoError(t, Fingerprint.AddTo(m))

	err := NewShortTermIntegrity("password").AddTo(m)
	assert.ErrorIs(t, err, ErrFingerprintBeforeIntegrity)
}

func TestLongTermIntegrityIsDeterministic(t *testing.T) {
	a := NewLongTermIntegrity("user", "realm.example", "pw")
	b := NewLongTermIntegrity("user", "realm.example", "pw")
	assert.Equal(t, a, b)

	c := NewLongTermIntegrity("user", "realm.example", "other")
	assert.NotEqual(t, a, c)
}

func TestFingerprintAddToAndCheck(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(NewSoftware("abc")))
	require.NoError(t, Fingerprint.AddTo(m))

	assert.NoError(t, Fingerprint.Check(m))
}

func TestFingerprintCheckFailsOnTamper(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	require.NoError(t, m.NewTransactionID())
	require.NoError(t, m.Build(NewSoftware("abc")))
	require.NoError(t, Fingerprint.AddTo(m))

	m.Raw[messageHeaderSize] ^= 0x01

	var mismatch *CRCMismatch
	assert.ErrorAs(t, Fingerprint.Check(m), &mismatch)
}
