package message

import (
	"encoding/binary"
	"fmt"
)

// Type is a resource record TYPE code per RFC 1035 §3.2.2 and later
// allocations. It specifies the meaning of the data in a record's RDATA
// field.
type Type uint16

const (
	// TypeA is a host address.
	TypeA Type = 1

	// TypeNS is an authoritative name server.
	TypeNS Type = 2

	// TypeMD is a mail destination (obsolete - use MX).
	TypeMD Type = 3

	// TypeMF is a mail forwarder (obsolete - use MX).
	TypeMF Type = 4

	// TypeCNAME is the canonical name for an alias.
	TypeCNAME Type = 5

	// TypeSOA marks the start of a zone of authority.
	TypeSOA Type = 6

	// TypeMB is a mailbox domain name (experimental).
	TypeMB Type = 7

	// TypeMG is a mail group member (experimental).
	TypeMG Type = 8

	// TypeMR is a mail rename domain name (experimental).
	TypeMR Type = 9

	// TypeNULL is a null RR (experimental).
	TypeNULL Type = 10

	// TypeWKS is a well known service description.
	TypeWKS Type = 11

	// TypePTR is a domain name pointer.
	TypePTR Type = 12

	// TypeHINFO is host information.
	TypeHINFO Type = 13

	// TypeMINFO is mailbox or mail list information.
	TypeMINFO Type = 14

	// TypeMX is a mail exchange.
	TypeMX Type = 15

	// TypeTXT is text strings.
	TypeTXT Type = 16

	// TypeRP is a responsible person.
	TypeRP Type = 17

	// TypeAFSDB locates database servers of an AFS cell.
	TypeAFSDB Type = 18

	TypeSIG        Type = 24
	TypeKEY        Type = 25
	TypeAAAA       Type = 28
	TypeLOC        Type = 29
	TypeSRV        Type = 33
	TypeNAPTR      Type = 35
	TypeKX         Type = 36
	TypeCERT       Type = 37
	TypeDNAME      Type = 39
	TypeAPL        Type = 42
	TypeDS         Type = 43
	TypeSSHFP      Type = 44
	TypeIPSECKEY   Type = 45
	TypeRRSIG      Type = 46
	TypeNSEC       Type = 47
	TypeDNSKEY     Type = 48
	TypeDHCID      Type = 49
	TypeNSEC3      Type = 50
	TypeNSEC3PARAM Type = 51
	TypeTLSA       Type = 52
	TypeSMIMEA     Type = 53
	TypeHIP        Type = 55
	TypeCDS        Type = 59
	TypeCDNSKEY    Type = 60
	TypeOPENPGPKEY Type = 61
	TypeCSYNC      Type = 62
	TypeZONEMD     Type = 63
	TypeSVCB       Type = 64
	TypeHTTPS      Type = 65
	TypeEUI48      Type = 108
	TypeEUI64      Type = 109
	TypeTKEY       Type = 249
	TypeTSIG       Type = 250
	TypeURI        Type = 256
	TypeCAA        Type = 257
	TypeWALLET     Type = 262
	TypeTA         Type = 32768
	TypeDLV        Type = 32769
)

// typeNames maps every known TYPE code to its mnemonic. Membership in this
// map is also the validity check for decoding.
var typeNames = map[Type]string{
	TypeA: "A", TypeNS: "NS", TypeMD: "MD", TypeMF: "MF", TypeCNAME: "CNAME",
	TypeSOA: "SOA", TypeMB: "MB", TypeMG: "MG", TypeMR: "MR", TypeNULL: "NULL",
	TypeWKS: "WKS", TypePTR: "PTR", TypeHINFO: "HINFO", TypeMINFO: "MINFO",
	TypeMX: "MX", TypeTXT: "TXT", TypeRP: "RP", TypeAFSDB: "AFSDB",
	TypeSIG: "SIG", TypeKEY: "KEY", TypeAAAA: "AAAA", TypeLOC: "LOC",
	TypeSRV: "SRV", TypeNAPTR: "NAPTR", TypeKX: "KX", TypeCERT: "CERT",
	TypeDNAME: "DNAME", TypeAPL: "APL", TypeDS: "DS", TypeSSHFP: "SSHFP",
	TypeIPSECKEY: "IPSECKEY", TypeRRSIG: "RRSIG", TypeNSEC: "NSEC",
	TypeDNSKEY: "DNSKEY", TypeDHCID: "DHCID", TypeNSEC3: "NSEC3",
	TypeNSEC3PARAM: "NSEC3PARAM", TypeTLSA: "TLSA", TypeSMIMEA: "SMIMEA",
	TypeHIP: "HIP", TypeCDS: "CDS", TypeCDNSKEY: "CDNSKEY",
	TypeOPENPGPKEY: "OPENPGPKEY", TypeCSYNC: "CSYNC", TypeZONEMD: "ZONEMD",
	TypeSVCB: "SVCB", TypeHTTPS: "HTTPS", TypeEUI48: "EUI48",
	TypeEUI64: "EUI64", TypeTKEY: "TKEY", TypeTSIG: "TSIG", TypeURI: "URI",
	TypeCAA: "CAA", TypeWALLET: "WALLET", TypeTA: "TA", TypeDLV: "DLV",
}

// Known reports whether t is a recognized TYPE code.
func (t Type) Known() bool {
	_, ok := typeNames[t]
	return ok
}

// String returns the record type mnemonic.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TYPE%d", uint16(t))
}

// ParseType decodes a 16-bit TYPE code from msg starting at offset.
// Unknown codes yield a WireError preserving the numeric value.
func ParseType(msg []byte, offset int) (Type, int, error) {
	if offset < 0 || offset+2 > len(msg) {
		return 0, offset, ErrShortInput
	}

	code := binary.BigEndian.Uint16(msg[offset : offset+2])
	t := Type(code)
	if !t.Known() {
		return 0, offset, &WireError{
			Op:     "parse type",
			Offset: offset,
			Reason: ReasonUnsupportedType,
			Code:   code,
		}
	}

	return t, offset + 2, nil
}

// Append encodes the TYPE code in network byte order.
func (t Type) Append(dst []byte) []byte {
	return binary.BigEndian.AppendUint16(dst, uint16(t))
}

// QType is a question QTYPE code per RFC 1035 §3.2.3. QTYPEs are a strict
// superset of TYPEs: every TYPE is a valid QTYPE, plus four codes that can
// match more than one record type and so appear only in questions.
type QType uint16

const (
	// QTypeA is a host address.
	QTypeA = QType(TypeA)

	// QTypeNS is an authoritative name server.
	QTypeNS = QType(TypeNS)

	// QTypeCNAME is the canonical name for an alias.
	QTypeCNAME = QType(TypeCNAME)

	// QTypeSOA marks the start of a zone of authority.
	QTypeSOA = QType(TypeSOA)

	// QTypePTR is a domain name pointer.
	QTypePTR = QType(TypePTR)

	// QTypeMX is a mail exchange.
	QTypeMX = QType(TypeMX)

	// QTypeTXT is text strings.
	QTypeTXT = QType(TypeTXT)

	// QTypeAAAA is an IPv6 host address.
	QTypeAAAA = QType(TypeAAAA)

	// QTypeSRV is a service location.
	QTypeSRV = QType(TypeSRV)

	// QTypeAXFR requests a transfer of an entire zone.
	QTypeAXFR QType = 252

	// QTypeMAILB requests mailbox-related records (MB, MG or MR).
	QTypeMAILB QType = 253

	// QTypeMAILA requests mail agent RRs (obsolete - see MX).
	QTypeMAILA QType = 254

	// QTypeStar requests all records ("*", 255).
	QTypeStar QType = 255
)

// Known reports whether q is a recognized QTYPE code.
func (q QType) Known() bool {
	switch q {
	case QTypeAXFR, QTypeMAILB, QTypeMAILA, QTypeStar:
		return true
	}
	return Type(q).Known()
}

// Matches reports whether a record of type t answers a question of type q,
// comparing the numeric codes. QTypeStar matches every type.
func (q QType) Matches(t Type) bool {
	return q == QTypeStar || uint16(q) == uint16(t)
}

// String returns the question type mnemonic.
func (q QType) String() string {
	switch q {
	case QTypeAXFR:
		return "AXFR"
	case QTypeMAILB:
		return "MAILB"
	case QTypeMAILA:
		return "MAILA"
	case QTypeStar:
		return "*"
	}
	return Type(q).String()
}

// ParseQType decodes a 16-bit QTYPE code from msg starting at offset.
func ParseQType(msg []byte, offset int) (QType, int, error) {
	if offset < 0 || offset+2 > len(msg) {
		return 0, offset, ErrShortInput
	}

	code := binary.BigEndian.Uint16(msg[offset : offset+2])
	q := QType(code)
	if !q.Known() {
		return 0, offset, &WireError{
			Op:     "parse qtype",
			Offset: offset,
			Reason: ReasonUnsupportedType,
			Code:   code,
		}
	}

	return q, offset + 2, nil
}

// Append encodes the QTYPE code in network byte order.
func (q QType) Append(dst []byte) []byte {
	return binary.BigEndian.AppendUint16(dst, uint16(q))
}
