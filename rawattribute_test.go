package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesGetLastWins(t *testing.T) {
	attrs := Attributes{
		{Type: AttrSoftware, Value: []byte("first")},
		{Type: AttrUsername, Value: []byte("user")},
		{Type: AttrSoftware, Value: []byte("second")},
	}
	got, ok := attrs.Get(AttrSoftware)
	require.True(t, ok)
	assert.Equal(t, []byte("second"), got.Value)
}

func TestAttributesGetAll(t *testing.T) {
	attrs := Attributes{
		{Type: AttrUnknownAttributes, Value: []byte{0x00, 0x01}},
		{Type: AttrSoftware, Value: []byte("x")},
		{Type: AttrUnknownAttributes, Value: []byte{0x00, 0x02}},
	}
	all := attrs.GetAll(AttrUnknownAttributes)
	assert.Len(t, all, 2)
	assert.Equal(t, []byte{0x00, 0x01}, all[0].Value)
	assert.Equal(t, []byte{0x00, 0x02}, all[1].Value)
}

func TestAttributesGetMissing(t *testing.T) {
	var attrs Attributes
	_, ok := attrs.Get(AttrSoftware)
	assert.False(t, ok)
}

func TestRawAttributeEqual(t *testing.T) {
	a := RawAttribute{Type: AttrSoftware, Length: 3, Value: []byte("abc")}
	b := RawAttribute{Type: AttrSoftware, Length: 3, Value: []byte("abc")}
	assert.True(t, a.Equal(b))

	c := RawAttribute{Type: AttrSoftware, Length: 3, Value: []byte("abd")}
	assert.False(t, a.Equal(c))
}

func TestMessageGetMissingAttribute(t *testing.T) {
	m := New()
	_, err := m.Get(AttrSoftware)
	assert.ErrorIs(t, err, ErrAttributeNotFound)
}

func TestAttrLengthErr(t *testing.T) {
	err := &AttrLengthErr{Expected: 4, Got: 2, Attr: AttrPriority}
	assert.Contains(t, err.Error(), "priority")
	assert.Contains(t, err.Error(), "got 2")
	assert.Contains(t, err.Error(), "expected 4")
}

func TestNearestPaddedValueLength(t *testing.T) {
	cases := map[int]int{
		0:  0,
		1:  4,
		2:  4,
		3:  4,
		4:  4,
		5:  8,
		9:  12,
		12: 12,
	}
	for in, want := range cases {
		assert.Equal(t, want, nearestPaddedValueLength(in), "in=%d", in)
	}
}

func TestAddPadsAttributeValue(t *testing.T) {
	m := New()
	m.Type = MessageType{Class: ClassRequest, Method: MethodBinding}
	m.Add(AttrSoftware, []byte("abc"))

	// "abc" is 3 bytes; the TLV occupies 4 (header) + 4 (padded value).
	assert.Equal(t, messageHeaderSize+8, len(m.Raw))
	assert.Equal(t, uint32(8), m.Length)
}
