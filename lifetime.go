package stun

import "time"

// LifetimeAttr is the TURN LIFETIME attribute (RFC 8656 Section 14.2),
// a duration in seconds.
type LifetimeAttr struct {
	Duration time.Duration
}

// AddTo adds LIFETIME to m.
func (l *LifetimeAttr) AddTo(m *Message) error {
	v := make([]byte, 4)
	bin.PutUint32(v, uint32(l.Duration/time.Second)) //nolint:gosec // G115, seconds fit uint32
	m.Add(AttrLifetime, v)
	return nil
}

// GetFrom decodes LIFETIME from m.
func (l *LifetimeAttr) GetFrom(m *Message) error {
	v, err := m.Get(AttrLifetime)
	if err != nil {
		return err
	}
	if err := CheckSize(AttrLifetime, len(v), 4); err != nil {
		return err
	}
	l.Duration = time.Duration(bin.Uint32(v)) * time.Second
	return nil
}
