package stun

// minIntegrityCheckSize is the open question noted for this codec:
// MESSAGE-INTEGRITY is only looked for once the buffer is bigger than
// a bare 20-byte header plus the 24-byte MESSAGE-INTEGRITY TLV (44
// bytes), that is, when at least one other attribute precedes it. 44
// excludes obviously-too-short buffers without having to walk the
// attribute stream twice.
const minIntegrityCheckSize = 44

// Decode parses raw into a *Message, verifying MESSAGE-INTEGRITY (if
// key is non-nil) and FINGERPRINT trailers along the way. A missing or
// mismatched trailer is never a decode failure: it is reported through
// m.Integrity / m.Fingerprint so the caller can decide whether to
// trust the message.
//
// raw is not retained or modified; Decode works on its own copy.
func Decode(raw []byte, key []byte) (*Message, error) {
	buf := append([]byte(nil), raw...)

	fingerprintOK, buf := stripFingerprint(buf)

	integrityOK := false
	if key != nil && len(buf) > minIntegrityCheckSize {
		integrityOK, buf = stripIntegrity(buf, key)
	}

	m := New()
	m.Raw = buf
	if err := m.Decode(); err != nil {
		return nil, err
	}
	m.Key = key
	m.Integrity = integrityOK
	m.Fingerprint = fingerprintOK
	return m, nil
}

// Encode serializes m's header and attributes, appending
// MESSAGE-INTEGRITY when m.Key is set and FINGERPRINT when
// m.Fingerprint is true, in that order, with the header length field
// fixed up before each trailer's MAC/CRC is computed.
//
// m.Attributes is the source of truth: Encode rebuilds m.Raw from it,
// so it is safe to call after Build or after hand-editing Attributes.
func Encode(m *Message) ([]byte, error) {
	attrs := m.Attributes
	// Fresh buffers: values in attrs may point into the old m.Raw, which
	// would otherwise be overwritten while they are still being replayed.
	m.Raw = make([]byte, 0, cap(m.Raw))
	m.Attributes = make(Attributes, 0, len(attrs))
	m.Reset()
	m.WriteHeader()
	for _, a := range attrs {
		m.Add(a.Type, a.Value)
	}

	if len(m.Key) > 0 {
		if err := MessageIntegrity(m.Key).AddTo(m); err != nil {
			return nil, err
		}
	}
	if m.Fingerprint {
		if err := Fingerprint.AddTo(m); err != nil {
			return nil, err
		}
	}
	return m.Raw, nil
}

// stripFingerprint reports whether buf ends in a FINGERPRINT TLV whose
// CRC-32 matches the bytes preceding it. When it does, the TLV is
// removed and the header length field is adjusted to match; otherwise
// buf is returned unchanged.
func stripFingerprint(buf []byte) (bool, []byte) {
	const trailerSize = attributeHeaderSize + fingerprintSize
	if len(buf) < messageHeaderSize+trailerSize {
		return false, buf
	}
	trailer := buf[len(buf)-trailerSize:]
	if AttrType(bin.Uint16(trailer[0:2])) != AttrFingerprint {
		return false, buf
	}
	if bin.Uint16(trailer[2:4]) != fingerprintSize {
		return false, buf
	}
	body := buf[:len(buf)-trailerSize]
	got := bin.Uint32(trailer[4:8])
	if got != FingerprintValue(body) {
		return false, buf
	}
	out := append([]byte(nil), body...)
	rewriteLength(out, -trailerSize)
	return true, out
}

// stripIntegrity reports whether buf ends in a MESSAGE-INTEGRITY TLV
// whose HMAC-SHA1 (keyed by key) matches the bytes preceding it. When
// it does, the TLV is removed and the header length field is adjusted
// to match; otherwise buf is returned unchanged so the attribute it
// names decodes as an ordinary raw attribute.
func stripIntegrity(buf []byte, key []byte) (bool, []byte) {
	const trailerSize = attributeHeaderSize + messageIntegritySize
	if len(buf) < messageHeaderSize+trailerSize {
		return false, buf
	}
	trailer := buf[len(buf)-trailerSize:]
	if AttrType(bin.Uint16(trailer[0:2])) != AttrMessageIntegrity {
		return false, buf
	}
	if bin.Uint16(trailer[2:4]) != messageIntegritySize {
		return false, buf
	}
	body := buf[:len(buf)-trailerSize]
	expected := newHMAC(key, body, nil)
	if checkHMAC(trailer[4:], expected) != nil {
		return false, buf
	}
	out := append([]byte(nil), body...)
	rewriteLength(out, -trailerSize)
	return true, out
}

// rewriteLength adjusts buf's header length field by delta bytes. buf
// must be at least messageHeaderSize long.
func rewriteLength(buf []byte, delta int) {
	cur := bin.Uint16(buf[2:4])
	bin.PutUint16(buf[2:4], uint16(int(cur)+delta))
}
