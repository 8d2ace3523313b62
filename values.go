package stun

import "net"

// AddressValue is the decoded representation of an address or
// xor-address shaped attribute.
type AddressValue struct {
	IP   net.IP
	Port int
}

// ErrorValue is the decoded representation of an error-code shaped
// attribute.
type ErrorValue struct {
	Code   ErrorCode
	Reason []byte
}

// ChangeRequestValue is the decoded representation of a
// change-request shaped attribute: the subset of {ip, port} the
// request asks the server to vary.
type ChangeRequestValue struct {
	IP   bool
	Port bool
}

// Values decodes every attribute in m except MESSAGE-INTEGRITY and
// FINGERPRINT (which the Message Codec handles directly) into its
// registry-declared shape, keyed by attribute name. Unrecognized
// attribute codes are keyed by their hex form and decoded as raw
// bytes.
func (m *Message) Values() (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(m.Attributes))
	for _, raw := range m.Attributes {
		if raw.Type == AttrMessageIntegrity || raw.Type == AttrFingerprint {
			continue
		}
		row, known := lookupAttr(raw.Type)
		name := raw.Type.String()
		shape := ShapeValue
		if known {
			name = row.Name
			shape = row.Shape
		}
		v, err := decodeAttributeValue(shape, raw, m.TransactionID)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

func decodeAttributeValue(shape Shape, raw RawAttribute, tid [transactionIDSize]byte) (interface{}, error) {
	switch shape {
	case ShapeAddress:
		ip, port, err := decodeAddressValue(raw.Value, nil)
		if err != nil {
			return nil, err
		}
		return AddressValue{IP: ip, Port: port}, nil
	case ShapeXORAddress:
		ip, port, err := decodeXORAddressValue(raw.Value, tid, nil)
		if err != nil {
			return nil, err
		}
		return AddressValue{IP: ip, Port: port}, nil
	case ShapeErrorCode:
		var e ErrorCodeAttribute
		if err := decodeErrorCodeValue(raw.Value, &e); err != nil {
			return nil, err
		}
		return ErrorValue{Code: e.Code, Reason: e.Reason}, nil
	case ShapeChangeRequest:
		var c ChangeRequest
		if err := decodeChangeRequestValue(raw.Value, &c); err != nil {
			return nil, err
		}
		return ChangeRequestValue{IP: c.ChangeIP, Port: c.ChangePort}, nil
	default:
		return raw.Value, nil
	}
}
