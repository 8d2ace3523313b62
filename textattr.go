package stun

import "fmt"

// textAttribute is the shared representation behind every STUN attribute
// whose wire value is an opaque, length-bounded byte string with no
// internal structure: USERNAME, REALM, NONCE, and SOFTWARE all decode and
// encode identically, differing only in their attribute type and maximum
// length. This is the same "value" shape the registry assigns them
// (ShapeValue, see registry.go) and that Message.Values() already returns
// as raw bytes; Nonce/Realm/Username/Software below are named wrappers
// around one implementation instead of four copies of it.
type textAttribute struct {
	Raw []byte

	attr   AttrType
	maxLen int
	errBig error
}

func (t textAttribute) String() string {
	return string(t.Raw)
}

func (t *textAttribute) addTo(m *Message) error {
	if len(t.Raw) > t.maxLen {
		return t.errBig
	}
	m.Add(t.attr, t.Raw)
	return nil
}

func (t *textAttribute) getFrom(m *Message) error {
	v, err := m.Get(t.attr)
	if err != nil {
		return err
	}
	t.Raw = v
	return nil
}

// Username represents the USERNAME attribute.
//
// https://tools.ietf.org/html/rfc5389#section-15.3
type Username struct {
	Raw []byte
}

const maxUsernameB = 513

// ErrUsernameTooBig means that USERNAME value is bigger that 513 bytes.
var ErrUsernameTooBig = fmt.Errorf("USERNAME value bigger than %d bytes", maxUsernameB)

// NewUsername returns *Username with provided value.
func NewUsername(username string) *Username {
	return &Username{Raw: []byte(username)}
}

func (u Username) String() string { return string(u.Raw) }

// AddTo adds USERNAME attribute to message.
func (u *Username) AddTo(m *Message) error {
	t := textAttribute{Raw: u.Raw, attr: AttrUsername, maxLen: maxUsernameB, errBig: ErrUsernameTooBig}
	return t.addTo(m)
}

// GetFrom gets USERNAME from message.
func (u *Username) GetFrom(m *Message) error {
	t := textAttribute{attr: AttrUsername}
	if err := t.getFrom(m); err != nil {
		return err
	}
	u.Raw = t.Raw
	return nil
}

// Realm represents the REALM attribute. Must be SASL-prepared before use.
//
// https://tools.ietf.org/html/rfc5389#section-15.8
type Realm struct {
	Raw []byte
}

const maxRealmB = 763

// ErrRealmTooBig means that REALM value is bigger that 763 bytes.
var ErrRealmTooBig = fmt.Errorf("REALM value bigger than %d bytes", maxRealmB)

// NewRealm returns *Realm with provided value. Must be SASL-prepared.
func NewRealm(realm string) *Realm {
	return &Realm{Raw: []byte(realm)}
}

func (r Realm) String() string { return string(r.Raw) }

// AddTo adds REALM attribute to message.
func (r *Realm) AddTo(m *Message) error {
	t := textAttribute{Raw: r.Raw, attr: AttrRealm, maxLen: maxRealmB, errBig: ErrRealmTooBig}
	return t.addTo(m)
}

// GetFrom gets REALM from message.
func (r *Realm) GetFrom(m *Message) error {
	t := textAttribute{attr: AttrRealm}
	if err := t.getFrom(m); err != nil {
		return err
	}
	r.Raw = t.Raw
	return nil
}

// Nonce represents the NONCE attribute.
//
// https://tools.ietf.org/html/rfc5389#section-15.8
type Nonce struct {
	Raw []byte
}

const maxNonceB = 763

// ErrNonceTooBig means that NONCE value is bigger that 763 bytes.
var ErrNonceTooBig = fmt.Errorf("NONCE value bigger than %d bytes", maxNonceB)

// NewNonce returns *Nonce with provided value.
func NewNonce(nonce string) *Nonce {
	return &Nonce{Raw: []byte(nonce)}
}

func (n Nonce) String() string { return string(n.Raw) }

// AddTo adds NONCE attribute to message.
func (n *Nonce) AddTo(m *Message) error {
	t := textAttribute{Raw: n.Raw, attr: AttrNonce, maxLen: maxNonceB, errBig: ErrNonceTooBig}
	return t.addTo(m)
}

// GetFrom gets NONCE from message.
func (n *Nonce) GetFrom(m *Message) error {
	t := textAttribute{attr: AttrNonce}
	if err := t.getFrom(m); err != nil {
		return err
	}
	n.Raw = t.Raw
	return nil
}

// Software represents the SOFTWARE attribute.
type Software struct {
	Raw []byte
}

const maxSoftwareB = 763

// ErrSoftwareTooBig means that it is not less than 128 characters
// (which can be as long as 763 bytes).
var ErrSoftwareTooBig = fmt.Errorf("SOFTWARE attribute bigger than %d bytes or 128 characters", maxSoftwareB)

// NewSoftware returns *Software from string.
func NewSoftware(software string) *Software {
	return &Software{Raw: []byte(software)}
}

func (s *Software) String() string { return string(s.Raw) }

// AddTo adds SOFTWARE attribute to message.
func (s *Software) AddTo(m *Message) error {
	t := textAttribute{Raw: s.Raw, attr: AttrSoftware, maxLen: maxSoftwareB, errBig: ErrSoftwareTooBig}
	return t.addTo(m)
}

// GetFrom decodes SOFTWARE from message.
func (s *Software) GetFrom(m *Message) error {
	t := textAttribute{attr: AttrSoftware}
	if err := t.getFrom(m); err != nil {
		return err
	}
	s.Raw = t.Raw
	return nil
}
