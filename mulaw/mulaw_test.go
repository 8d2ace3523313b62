package mulaw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pcm := []byte{0x00, 0x00, 0xFF, 0x7F, 0x00, 0x80, 0x34, 0x12}
	enc := Encode(pcm)
	assert.Len(t, enc, len(pcm)/2)

	dec := Decode(enc)
	assert.Len(t, dec, len(pcm))
}

func TestEncodeSampleZero(t *testing.T) {
	assert.Equal(t, byte(0xFF), encodeSample(0))
}

func TestDecodeTableMatchesSilence(t *testing.T) {
	assert.InDelta(t, 0, int(decodeSample(0xFF)), 16)
}

func TestDecodeIsStableUnderReEncode(t *testing.T) {
	for b := 0; b < 256; b++ {
		s := decodeSample(byte(b))
		got := encodeSample(s)
		redecoded := decodeSample(got)
		assert.InDelta(t, int(s), int(redecoded), 64, "byte %d", b)
	}
}
