package stun

import "strconv"

// AttrType is a hex code of 16-bit STUN attribute type.
type AttrType uint16

// Attribute types drawn from RFC 5389 core attributes, RFC 3489
// legacy address attributes, ICE (RFC 8445) attributes, and TURN
// (RFC 8656) attributes.
const (
	AttrMappedAddress    AttrType = 0x0001
	AttrSourceAddress    AttrType = 0x0004 // RFC 3489, legacy.
	AttrChangedAddress   AttrType = 0x0005 // RFC 3489, legacy.
	AttrChangeRequest    AttrType = 0x0003 // RFC 3489, legacy.
	AttrUsername         AttrType = 0x0006
	AttrMessageIntegrity AttrType = 0x0008
	AttrErrorCode        AttrType = 0x0009

	AttrUnknownAttributes AttrType = 0x000A
	AttrRealm             AttrType = 0x0014
	AttrNonce             AttrType = 0x0015
	AttrXORMappedAddress  AttrType = 0x0020

	// AttrXVovidaXORMappedAddress is the pre-standard Vovida draft
	// encoding of XOR-MAPPED-ADDRESS, seen on the wire from legacy
	// servers (vovida.org) alongside the RFC 5389 attribute.
	AttrXVovidaXORMappedAddress AttrType = 0x8020

	AttrSoftware        AttrType = 0x8022
	AttrAlternateServer AttrType = 0x8023
	AttrFingerprint     AttrType = 0x8028

	AttrResponseOrigin AttrType = 0x802b // RFC 5780.
	AttrOtherAddress   AttrType = 0x802c // RFC 5780.

	// ICE, RFC 8445.
	AttrPriority       AttrType = 0x0024
	AttrUseCandidate   AttrType = 0x0025
	AttrICEControlled  AttrType = 0x8029
	AttrICEControlling AttrType = 0x802A

	// TURN, RFC 8656.
	AttrChannelNumber          AttrType = 0x000C
	AttrLifetime               AttrType = 0x000D
	AttrXORPeerAddress         AttrType = 0x0012
	AttrData                   AttrType = 0x0013
	AttrXORRelayedAddress      AttrType = 0x0016
	AttrRequestedAddressFamily AttrType = 0x0017
	AttrEvenPort               AttrType = 0x0018
	AttrRequestedTransport     AttrType = 0x0019
	AttrDontFragment           AttrType = 0x001A
	AttrReservationToken       AttrType = 0x0022
	AttrConnectionID           AttrType = 0x002A
)

// Value returns uint16 representation of t.
func (t AttrType) Value() uint16 {
	return uint16(t)
}

// Known reports whether t is present in the current Attribute
// registry. Decoding an unknown attribute is never an error; Known
// lets callers distinguish a recognized zero-length attribute from
// one the registry has no entry for.
func (t AttrType) Known() bool {
	_, ok := lookupAttr(t)
	return ok
}

func (t AttrType) String() string {
	if name, ok := AttributeName(t); ok {
		return name
	}
	// No default Stringer is a decode failure; forward-compatible
	// attribute codes always render as their numeric form.
	return "0x" + strconv.FormatUint(uint64(t), 16)
}
