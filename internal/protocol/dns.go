// Package protocol defines DNS wire-format constants and limits
// per RFC 1035 (Domain Names - Implementation and Specification).
//
// PRIMARY TECHNICAL AUTHORITY: RFC 1035 §3 (name syntax), §4 (messages)
package protocol

// Well-known transport values.
const (
	// Port is the DNS port number (53) per RFC 1035 §4.2.
	Port = 53

	// MaxMessageSize is the largest DNS message carried over UDP without
	// EDNS(0), per RFC 1035 §4.2.1 ("messages carried by UDP are restricted
	// to 512 bytes") relaxed to the 16-bit framing ceiling used by stream
	// transports. A decoder buffer is never allowed to grow beyond this;
	// anything larger indicates misframed input.
	MaxMessageSize = 65535
)

// Message geometry per RFC 1035 §4.1.
const (
	// HeaderSize is the fixed size of the DNS message header (12 octets)
	// per RFC 1035 §4.1.1.
	HeaderSize = 12

	// QuestionTrailerSize is the fixed portion of a question entry after
	// QNAME: QTYPE (2 octets) + QCLASS (2 octets) per RFC 1035 §4.1.2.
	QuestionTrailerSize = 4

	// RecordTrailerSize is the fixed portion of a resource record after
	// NAME: TYPE (2) + CLASS (2) + TTL (4) + RDLENGTH (2) per RFC 1035 §4.1.3.
	RecordTrailerSize = 10
)

// DNS name constraints per RFC 1035 §3.1.
const (
	// MaxLabelLength is the maximum length of a DNS label (63 octets)
	// per RFC 1035 §3.1: "Labels must be 63 octets or less."
	MaxLabelLength = 63

	// MaxNameLength is the maximum total length of a DNS name on the wire
	// (255 octets including length prefixes) per RFC 1035 §3.1.
	MaxNameLength = 255

	// MaxPointerChases is the maximum number of compression pointer jumps
	// followed while expanding a single name per RFC 1035 §4.1.4.
	//
	// The wire format allows arbitrary pointer graphs; bounding the chase
	// count turns a potentially cyclic graph into a finite traversal and
	// rejects looping messages.
	MaxPointerChases = 128
)

// Label discriminators per RFC 1035 §4.1.4.
//
// The top two bits of a label length octet select one of four forms:
// 00 is an uncompressed label, 11 is a compression pointer, and 01/10
// are reserved.
const (
	// LabelFormMask selects the two discriminator bits.
	LabelFormMask byte = 0xC0

	// LabelFormPointer marks a compression pointer (high 2 bits = 11).
	// The remaining 6 bits, combined with the following octet, form a
	// 14-bit absolute offset from the start of the message.
	LabelFormPointer byte = 0xC0

	// PointerOffsetMask selects the high 6 bits of a pointer offset from
	// the length octet.
	PointerOffsetMask byte = 0x3F
)

// DNS header flag bits per RFC 1035 §4.1.1, MSB first:
//
//	QR(1) OPCODE(4) AA(1) TC(1) RD(1) RA(1) Z(3) RCODE(4)
const (
	// FlagQR is the Query/Response bit (bit 15): 0=query, 1=response.
	FlagQR uint16 = 1 << 15

	// FlagAA is the Authoritative Answer bit (bit 10).
	FlagAA uint16 = 1 << 10

	// FlagTC is the TrunCation bit (bit 9).
	FlagTC uint16 = 1 << 9

	// FlagRD is the Recursion Desired bit (bit 8). Set on queries that ask
	// the nameserver to pursue the question recursively.
	FlagRD uint16 = 1 << 8

	// FlagRA is the Recursion Available bit (bit 7).
	FlagRA uint16 = 1 << 7

	// OpcodeShift and OpcodeMask extract OPCODE (bits 11-14).
	OpcodeShift        = 11
	OpcodeMask  uint16 = 0x0F

	// ZShift and ZMask extract the reserved Z field (bits 4-6).
	// RFC 1035 §4.1.1: "Reserved for future use. Must be zero."
	ZShift        = 4
	ZMask  uint16 = 0x07

	// RCodeMask extracts RCODE (bits 0-3).
	RCodeMask uint16 = 0x0F
)

// RCODE values per RFC 1035 §4.1.1.
const (
	RCodeNoError        uint8 = 0
	RCodeFormatError    uint8 = 1
	RCodeServerFailure  uint8 = 2
	RCodeNameError      uint8 = 3
	RCodeNotImplemented uint8 = 4
	RCodeRefused        uint8 = 5
)
