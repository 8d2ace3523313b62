package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttrTypeValue(t *testing.T) {
	assert.Equal(t, uint16(0x0020), AttrXORMappedAddress.Value())
}

func TestAttrTypeKnown(t *testing.T) {
	assert.True(t, AttrSoftware.Known())
	assert.False(t, AttrType(0xfff1).Known())
}

func TestAttrTypeStringKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "software", AttrSoftware.String())
	assert.Equal(t, "0xfff1", AttrType(0xfff1).String())
}
