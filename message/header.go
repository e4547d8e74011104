package message

import (
	"encoding/binary"
	"fmt"

	"github.com/bengsparks/dns-protocol/internal/protocol"
)

// Header is the DNS message header per RFC 1035 §4.1.1.
//
// The header is always 12 octets:
//
//	                                1  1  1  1  1  1
//	  0  1  2  3  4  5  6  7  8  9  0  1  2  3  4  5
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|                      ID                       |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|QR|   Opcode  |AA|TC|RD|RA|   Z    |   RCODE   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|                    QDCOUNT                    |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|                    ANCOUNT                    |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|                    NSCOUNT                    |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|                    ARCOUNT                    |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
type Header struct {
	// ID is the identifier assigned by the program that generates the
	// query. The identifier is copied into the corresponding reply so the
	// requester can match replies to outstanding queries.
	ID uint16

	// Flags is the bit-packed flag word; see Flags for the layout.
	Flags Flags

	// QDCount is the number of entries in the question section.
	QDCount uint16

	// ANCount is the number of resource records in the answer section.
	ANCount uint16

	// NSCount is the number of nameserver resource records in the
	// authority section.
	NSCount uint16

	// ARCount is the number of resource records in the additional section.
	ARCount uint16
}

// ParseHeader decodes a message header from msg starting at offset.
func ParseHeader(msg []byte, offset int) (Header, int, error) {
	if offset < 0 || offset+protocol.HeaderSize > len(msg) {
		return Header{}, offset, ErrShortInput
	}

	header := Header{
		ID:      binary.BigEndian.Uint16(msg[offset : offset+2]),
		Flags:   Flags(binary.BigEndian.Uint16(msg[offset+2 : offset+4])),
		QDCount: binary.BigEndian.Uint16(msg[offset+4 : offset+6]),
		ANCount: binary.BigEndian.Uint16(msg[offset+6 : offset+8]),
		NSCount: binary.BigEndian.Uint16(msg[offset+8 : offset+10]),
		ARCount: binary.BigEndian.Uint16(msg[offset+10 : offset+12]),
	}

	return header, offset + protocol.HeaderSize, nil
}

// Append encodes the header into wire format, appending the 12 octets to
// dst and returning the extended slice.
func (h Header) Append(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint16(dst, h.ID)
	dst = binary.BigEndian.AppendUint16(dst, uint16(h.Flags))
	dst = binary.BigEndian.AppendUint16(dst, h.QDCount)
	dst = binary.BigEndian.AppendUint16(dst, h.ANCount)
	dst = binary.BigEndian.AppendUint16(dst, h.NSCount)
	dst = binary.BigEndian.AppendUint16(dst, h.ARCount)
	return dst
}

// String formats the header with the ID in hex, leaving the counts decimal.
func (h Header) String() string {
	return fmt.Sprintf("Header{id: 0x%04x, flags: %v, qd: %d, an: %d, ns: %d, ar: %d}",
		h.ID, h.Flags, h.QDCount, h.ANCount, h.NSCount, h.ARCount)
}

// Flags is the 16-bit header flag word per RFC 1035 §4.1.1, MSB first:
//
//	QR(1) OPCODE(4) AA(1) TC(1) RD(1) RA(1) Z(3) RCODE(4)
type Flags uint16

// QR reports whether the message is a response (bit 15 set).
func (f Flags) QR() bool { return uint16(f)&protocol.FlagQR != 0 }

// Opcode returns the operation code (bits 11-14). Zero is a standard query.
func (f Flags) Opcode() uint8 {
	return uint8((uint16(f) >> protocol.OpcodeShift) & protocol.OpcodeMask)
}

// AA reports the Authoritative Answer bit.
func (f Flags) AA() bool { return uint16(f)&protocol.FlagAA != 0 }

// TC reports the TrunCation bit.
func (f Flags) TC() bool { return uint16(f)&protocol.FlagTC != 0 }

// RD reports the Recursion Desired bit.
func (f Flags) RD() bool { return uint16(f)&protocol.FlagRD != 0 }

// RA reports the Recursion Available bit.
func (f Flags) RA() bool { return uint16(f)&protocol.FlagRA != 0 }

// Z returns the reserved field (bits 4-6), which must be zero on
// transmission.
func (f Flags) Z() uint8 {
	return uint8((uint16(f) >> protocol.ZShift) & protocol.ZMask)
}

// RCode returns the response code (bits 0-3).
func (f Flags) RCode() uint8 { return uint8(uint16(f) & protocol.RCodeMask) }

// String formats the flag word as its raw hex value plus the decoded bits.
func (f Flags) String() string {
	return fmt.Sprintf("0x%04x(qr=%t opcode=%d aa=%t tc=%t rd=%t ra=%t z=%d rcode=%d)",
		uint16(f), f.QR(), f.Opcode(), f.AA(), f.TC(), f.RD(), f.RA(), f.Z(), f.RCode())
}
