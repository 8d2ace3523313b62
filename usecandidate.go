package stun

// UseCandidateAttr is the ICE USE-CANDIDATE attribute (RFC 8445
// Section 16.1), a flag with no value.
type UseCandidateAttr struct{}

// UseCandidate is shorthand for UseCandidateAttr, following the
// pattern set by Fingerprint.
var UseCandidate UseCandidateAttr

// AddTo adds USE-CANDIDATE to m.
func (UseCandidateAttr) AddTo(m *Message) error {
	m.Add(AttrUseCandidate, nil)
	return nil
}

// GetFrom reports whether USE-CANDIDATE is present in m.
func (UseCandidateAttr) GetFrom(m *Message) error {
	_, err := m.Get(AttrUseCandidate)
	return err
}
