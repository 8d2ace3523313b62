package stun

import (
	"errors"
	"fmt"
	"io"
)

const (
	errorCodeReasonStart = 4
	errorCodeClassByte   = 2
	errorCodeNumberByte  = 3
	errorCodeMaxReasonB  = 763
)

// ErrorCode is the numeric code carried by an ERROR-CODE attribute.
type ErrorCode int

// Possible error codes.
const (
	CodeTryAlternate     ErrorCode = 300
	CodeBadRequest       ErrorCode = 400
	CodeUnauthorised     ErrorCode = 401
	CodeUnknownAttribute ErrorCode = 420
	CodeStaleNonce       ErrorCode = 428
	CodeRoleConflict     ErrorCode = 478
	CodeServerError      ErrorCode = 500
)

// Reason returns the recommended reason string for c, or "Unknown
// Error" if c has none registered.
func (c ErrorCode) Reason() string {
	switch c {
	case CodeTryAlternate:
		return "Try Alternate"
	case CodeBadRequest:
		return "Bad Request"
	case CodeUnauthorised:
		return "Unauthorised"
	case CodeUnknownAttribute:
		return "Unknown attribute"
	case CodeStaleNonce:
		return "Stale Nonce"
	case CodeServerError:
		return "Server Error"
	case CodeRoleConflict:
		return "Role conflict"
	default:
		return defaultErrorReason
	}
}

// ErrorCodeAttribute represents ERROR-CODE attribute.
//
// RFC 5389 Section 15.6:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|           Reserved, should be 0         |Class|     Number    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|      Reason Phrase (variable)                                ..
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type ErrorCodeAttribute struct {
	Code   ErrorCode
	Reason []byte
}

func (c *ErrorCodeAttribute) String() string {
	return fmt.Sprintf("%d: %s", c.Code, c.Reason)
}

// AddTo adds ERROR-CODE to m.
func (c *ErrorCodeAttribute) AddTo(m *Message) error {
	if len(c.Reason) > errorCodeMaxReasonB {
		return fmt.Errorf("stun: reason too long (%d bytes)", len(c.Reason))
	}
	class := c.Code / 100
	if class < 3 || class > 6 {
		return fmt.Errorf("stun: invalid error class %d", class)
	}
	number := c.Code % 100
	v := make([]byte, errorCodeReasonStart+len(c.Reason))
	v[errorCodeClassByte] = byte(class)
	v[errorCodeNumberByte] = byte(number)
	copy(v[errorCodeReasonStart:], c.Reason)
	m.Add(AttrErrorCode, v)
	return nil
}

// GetFrom decodes ERROR-CODE from m.
func (c *ErrorCodeAttribute) GetFrom(m *Message) error {
	v, err := m.Get(AttrErrorCode)
	if err != nil {
		return err
	}
	return decodeErrorCodeValue(v, c)
}

func decodeErrorCodeValue(v []byte, c *ErrorCodeAttribute) error {
	if len(v) < errorCodeReasonStart {
		return io.ErrUnexpectedEOF
	}
	class := int(v[errorCodeClassByte])
	number := int(v[errorCodeNumberByte])
	c.Code = ErrorCode(class*100 + number)
	c.Reason = v[errorCodeReasonStart:]
	return nil
}

// ErrNoDefaultReason means that ErrorCode does not have a default
// reason registered, so ErrorCode.AddTo cannot fill one in for the
// caller.
var ErrNoDefaultReason = errors.New("no default reason for error code")

// AddTo adds ERROR-CODE to m using the code's recommended reason
// phrase. Returns ErrNoDefaultReason if the code has no recommended
// phrase registered.
func (c ErrorCode) AddTo(m *Message) error {
	reason := c.Reason()
	if reason == defaultErrorReason {
		return ErrNoDefaultReason
	}
	a := &ErrorCodeAttribute{Code: c, Reason: []byte(reason)}
	return a.AddTo(m)
}

const defaultErrorReason = "Unknown Error"
