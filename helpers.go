package stun

import "hash"

// writeOrPanic writes b to h, panicking if hash.Hash ever returns an
// error, which the interface promises never happens.
func writeOrPanic(h hash.Hash, b []byte) {
	if _, err := h.Write(b); err != nil {
		panic(err)
	}
}

// Setter sets *Message attribute.
type Setter interface {
	AddTo(m *Message) error
}

// Getter decodes *Message attribute.
type Getter interface {
	GetFrom(m *Message) error
}

// Checker checks *Message attribute.
type Checker interface {
	Check(m *Message) error
}

// Build applies setters to message.
func (m *Message) Build(setters ...Setter) error {
	m.Reset()
	m.WriteHeader()
	for _, s := range setters {
		if err := s.AddTo(m); err != nil {
			return err
		}
	}
	return nil
}

func (m *Message) Check(checkers ...Checker) error {
	for _, c := range checkers {
		if err := c.Check(m); err != nil {
			return err
		}
	}
	return nil
}

// Build wraps Message.Build method.
func Build(setters ...Setter) (*Message, error) {
	m := new(Message)
	return m, m.Build(setters...)
}
