package stun

import (
	"testing"

	"github.com/halfwave/stun/internal/testutil"
)

// MESSAGE-INTEGRITY is computed on every authenticated message; the
// pooled HMAC in internal/hmac exists specifically so this does not
// allocate a fresh hasher per call.
func TestMessageIntegrityCheckDoesNotAllocate(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	if err := m.NewTransactionID(); err != nil {
		t.Fatal(err)
	}
	if err := m.Build(NewSoftware("abc")); err != nil {
		t.Fatal(err)
	}
	key := NewShortTermIntegrity("password")
	if err := key.AddTo(m); err != nil {
		t.Fatal(err)
	}

	testutil.ShouldNotAllocate(t, func() {
		if err := key.Check(m); err != nil {
			t.Fatal(err)
		}
	})
}
