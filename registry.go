package stun

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/pion/logging"
)

// Shape names the decode/encode dispatch tag attached to an attribute
// code in the registry. It determines which branch of the Attribute
// Codec (see addr.go, xoraddr.go, errorcode.go, changerequest.go)
// interprets the TLV payload.
type Shape int

// Possible attribute shapes.
const (
	// ShapeValue is the identity transform: the decoded value is the
	// raw payload bytes, unmodified.
	ShapeValue Shape = iota
	// ShapeAddress decodes an RFC 5389 Section 15.1 MAPPED-ADDRESS-style
	// (family, port, address) tuple.
	ShapeAddress
	// ShapeXORAddress decodes the same tuple as ShapeAddress but with
	// port and address XOR-masked against the magic cookie and
	// transaction ID (RFC 5389 Section 15.2).
	ShapeXORAddress
	// ShapeErrorCode decodes an RFC 5389 Section 15.6 (class, number,
	// reason) tuple.
	ShapeErrorCode
	// ShapeChangeRequest decodes an RFC 3489 Section 11.2.4 bit-flag
	// attribute as a set of {ip, port}.
	ShapeChangeRequest
)

func (s Shape) String() string {
	switch s {
	case ShapeValue:
		return "value"
	case ShapeAddress:
		return "attribute"
	case ShapeXORAddress:
		return "xattribute"
	case ShapeErrorCode:
		return "error_attribute"
	case ShapeChangeRequest:
		return "request"
	default:
		return "unknown"
	}
}

func shapeFromString(s string) (Shape, error) {
	switch s {
	case "value":
		return ShapeValue, nil
	case "attribute":
		return ShapeAddress, nil
	case "xattribute":
		return ShapeXORAddress, nil
	case "error_attribute":
		return ShapeErrorCode, nil
	case "request":
		return ShapeChangeRequest, nil
	default:
		return 0, fmt.Errorf("stun: unknown attribute shape %q", s)
	}
}

// attrRow is one row of the Attribute registry: a STUN attribute type
// code paired with its symbolic name and decode shape.
type attrRow struct {
	Name  string
	Shape Shape
}

// registry holds the process-wide, read-only-after-init Attribute,
// Method, and Class tables. It is safe for concurrent use once
// populated: lookups never mutate it, and Load* replaces the maps
// wholesale under a lock rather than editing them in place.
type registry struct {
	mu     sync.RWMutex
	attrs  map[AttrType]attrRow
	attrsN map[string]AttrType
	meths  map[Method]string
	methsN map[string]Method
	cls    map[MessageClass]string
	clsN   map[string]MessageClass
}

var defaultRegistry = newRegistry()

// DefaultLogger is used for diagnostics emitted while decoding
// attributes, methods, or classes this registry does not recognize.
// Forward-compatible code paths never fail because of an unknown code;
// they log instead so operators can notice registry gaps.
var DefaultLogger logging.LeveledLogger = logging.NewDefaultLoggerFactory().NewLogger("stun")

func newRegistry() *registry {
	r := &registry{
		attrs:  make(map[AttrType]attrRow),
		attrsN: make(map[string]AttrType),
		meths:  make(map[Method]string),
		methsN: make(map[string]Method),
		cls:    make(map[MessageClass]string),
		clsN:   make(map[string]MessageClass),
	}
	r.loadDefaults()
	return r
}

func (r *registry) addAttr(t AttrType, name string, shape Shape) {
	r.attrs[t] = attrRow{Name: name, Shape: shape}
	r.attrsN[name] = t
}

func (r *registry) addMethod(m Method, name string) {
	r.meths[m] = name
	r.methsN[name] = m
}

func (r *registry) addClass(c MessageClass, name string) {
	r.cls[c] = name
	r.clsN[name] = c
}

// loadDefaults populates the canonical starter set: the STUN/TURN/ICE
// attributes, methods, and classes a conforming core must recognize
// out of the box.
func (r *registry) loadDefaults() {
	r.addClass(ClassRequest, "request")
	r.addClass(ClassIndication, "indication")
	r.addClass(ClassSuccessResponse, "success")
	r.addClass(ClassErrorResponse, "error")

	r.addMethod(MethodBinding, "binding")
	r.addMethod(MethodAllocate, "allocate")
	r.addMethod(MethodRefresh, "refresh")
	r.addMethod(MethodSend, "send")
	r.addMethod(MethodData, "data")
	r.addMethod(MethodCreatePermission, "create_permission")
	r.addMethod(MethodChannelBind, "channel_bind")

	r.addAttr(AttrMappedAddress, "mapped_address", ShapeAddress)
	r.addAttr(AttrSourceAddress, "source_address", ShapeAddress)
	r.addAttr(AttrChangedAddress, "changed_address", ShapeAddress)
	r.addAttr(AttrChangeRequest, "change_request", ShapeChangeRequest)
	r.addAttr(AttrUsername, "username", ShapeValue)
	r.addAttr(AttrMessageIntegrity, "message_integrity", ShapeValue)
	r.addAttr(AttrErrorCode, "error_code", ShapeErrorCode)
	r.addAttr(AttrUnknownAttributes, "unknown_attributes", ShapeValue)
	r.addAttr(AttrRealm, "realm", ShapeValue)
	r.addAttr(AttrNonce, "nonce", ShapeValue)
	r.addAttr(AttrXORMappedAddress, "xor_mapped_address", ShapeXORAddress)
	r.addAttr(AttrXVovidaXORMappedAddress, "x_vovida_xor_mapped_address", ShapeXORAddress)
	r.addAttr(AttrSoftware, "software", ShapeValue)
	r.addAttr(AttrAlternateServer, "alternate_server", ShapeAddress)
	r.addAttr(AttrFingerprint, "fingerprint", ShapeValue)
	r.addAttr(AttrResponseOrigin, "response_origin", ShapeAddress)
	r.addAttr(AttrOtherAddress, "other_address", ShapeAddress)

	// ICE, RFC 5245 / RFC 8445.
	r.addAttr(AttrPriority, "priority", ShapeValue)
	r.addAttr(AttrUseCandidate, "use_candidate", ShapeValue)
	r.addAttr(AttrICEControlled, "ice_controlled", ShapeValue)
	r.addAttr(AttrICEControlling, "ice_controlling", ShapeValue)

	// TURN, RFC 5766 / RFC 8656.
	r.addAttr(AttrChannelNumber, "channel_number", ShapeValue)
	r.addAttr(AttrLifetime, "lifetime", ShapeValue)
	r.addAttr(AttrXORPeerAddress, "xor_peer_address", ShapeXORAddress)
	r.addAttr(AttrData, "data", ShapeValue)
	r.addAttr(AttrXORRelayedAddress, "xor_relayed_address", ShapeXORAddress)
	r.addAttr(AttrRequestedAddressFamily, "requested_address_family", ShapeValue)
	r.addAttr(AttrEvenPort, "even_port", ShapeValue)
	r.addAttr(AttrRequestedTransport, "requested_transport", ShapeValue)
	r.addAttr(AttrDontFragment, "dont_fragment", ShapeValue)
	r.addAttr(AttrReservationToken, "reservation_token", ShapeValue)
	r.addAttr(AttrConnectionID, "connection_id", ShapeValue)
}

// LoadAttributeTable replaces the Attribute registry from TSV rows of
// the form "<code>\t<name>\t<shape>", one per line, where shape is one
// of value, attribute, xattribute, error_attribute, request. It is
// meant to be called once at library initialization; it is not safe
// to call concurrently with decode/encode traffic.
func LoadAttributeTable(src io.Reader) error {
	attrs := make(map[AttrType]attrRow)
	attrsN := make(map[string]AttrType)
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return fmt.Errorf("stun: malformed attribute row %q", line)
		}
		code, err := parseRegistryCode(fields[0])
		if err != nil {
			return fmt.Errorf("stun: bad attribute code %q: %w", fields[0], err)
		}
		shape, err := shapeFromString(fields[2])
		if err != nil {
			return err
		}
		t := AttrType(code)
		attrs[t] = attrRow{Name: fields[1], Shape: shape}
		attrsN[fields[1]] = t
	}
	if err := sc.Err(); err != nil {
		return err
	}
	defaultRegistry.mu.Lock()
	defaultRegistry.attrs = attrs
	defaultRegistry.attrsN = attrsN
	defaultRegistry.mu.Unlock()
	return nil
}

// LoadMethodTable replaces the Method registry from TSV rows of the
// form "<id>\t<name>".
func LoadMethodTable(src io.Reader) error {
	meths := make(map[Method]string)
	methsN := make(map[string]Method)
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return fmt.Errorf("stun: malformed method row %q", line)
		}
		code, err := parseRegistryCode(fields[0])
		if err != nil {
			return fmt.Errorf("stun: bad method id %q: %w", fields[0], err)
		}
		m := Method(code)
		meths[m] = fields[1]
		methsN[fields[1]] = m
	}
	if err := sc.Err(); err != nil {
		return err
	}
	defaultRegistry.mu.Lock()
	defaultRegistry.meths = meths
	defaultRegistry.methsN = methsN
	defaultRegistry.mu.Unlock()
	return nil
}

// LoadClassTable replaces the Class registry from TSV rows of the form
// "<id>\t<name>".
func LoadClassTable(src io.Reader) error {
	cls := make(map[MessageClass]string)
	clsN := make(map[string]MessageClass)
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return fmt.Errorf("stun: malformed class row %q", line)
		}
		code, err := parseRegistryCode(fields[0])
		if err != nil {
			return fmt.Errorf("stun: bad class id %q: %w", fields[0], err)
		}
		c := MessageClass(code)
		cls[c] = fields[1]
		clsN[fields[1]] = c
	}
	if err := sc.Err(); err != nil {
		return err
	}
	defaultRegistry.mu.Lock()
	defaultRegistry.cls = cls
	defaultRegistry.clsN = clsN
	defaultRegistry.mu.Unlock()
	return nil
}

func parseRegistryCode(s string) (uint64, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, 16)
	}
	return strconv.ParseUint(s, 10, 16)
}

// lookupAttr returns the registry row for t, logging a diagnostic and
// reporting ok=false if t is unrecognized. Unknown attributes are
// never a decode error: the caller falls back to treating the payload
// as raw bytes.
func lookupAttr(t AttrType) (attrRow, bool) {
	defaultRegistry.mu.RLock()
	row, ok := defaultRegistry.attrs[t]
	defaultRegistry.mu.RUnlock()
	if !ok {
		DefaultLogger.Debugf("unknown attribute type 0x%04x", uint16(t))
	}
	return row, ok
}

func lookupMethodName(m Method) (string, bool) {
	defaultRegistry.mu.RLock()
	name, ok := defaultRegistry.meths[m]
	defaultRegistry.mu.RUnlock()
	if !ok {
		DefaultLogger.Debugf("unknown method 0x%03x", uint16(m))
	}
	return name, ok
}

func lookupClassName(c MessageClass) (string, bool) {
	defaultRegistry.mu.RLock()
	name, ok := defaultRegistry.cls[c]
	defaultRegistry.mu.RUnlock()
	if !ok {
		DefaultLogger.Debugf("unknown class 0x%x", uint8(c))
	}
	return name, ok
}

// AttributeName returns the registry name for t, or false if the code
// is not known to the registry.
func AttributeName(t AttrType) (string, bool) {
	row, ok := lookupAttr(t)
	return row.Name, ok
}
