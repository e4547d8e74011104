package message

import (
	"encoding/binary"
	"fmt"

	"github.com/bengsparks/dns-protocol/internal/protocol"
)

// Record is a resource record per RFC 1035 §4.1.3, shared by the answer,
// authority, and additional sections.
//
//	                                1  1  1  1  1  1
//	  0  1  2  3  4  5  6  7  8  9  0  1  2  3  4  5
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|                                               |
//	/                      NAME                     /
//	|                                               |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|                      TYPE                     |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|                     CLASS                     |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|                      TTL                      |
//	|                                               |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|                   RDLENGTH                    |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	/                     RDATA                     /
//	/                                               /
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
type Record struct {
	// Name is the domain name to which this record pertains.
	Name Name

	// Kind is the record TYPE code, which determines the meaning of the
	// RDATA field.
	Kind Type

	// Class is the class of the data in the RDATA field.
	Class Class

	// TTL is how long, in seconds, the record may be cached.
	TTL TTL

	// RDLength is the declared length in octets of the RDATA field.
	RDLength uint16

	// Data is the decoded resource payload. Its byte extent on the wire
	// equals RDLength.
	Data RData
}

// ParseRecord decodes a resource record from msg starting at offset. The
// record occupies the name plus the ten fixed trailer octets plus RDLENGTH
// octets of RDATA, and the returned offset points past all of them even
// when the structured RDATA form consumes fewer.
func ParseRecord(msg []byte, offset int) (Record, int, error) {
	name, pos, err := ParseName(msg, offset)
	if err != nil {
		return Record{}, offset, err
	}

	kind, pos, err := ParseType(msg, pos)
	if err != nil {
		return Record{}, offset, err
	}

	class, pos, err := ParseClass(msg, pos)
	if err != nil {
		return Record{}, offset, err
	}

	ttl, pos, err := ParseTTL(msg, pos)
	if err != nil {
		return Record{}, offset, err
	}

	if pos+2 > len(msg) {
		return Record{}, offset, ErrShortInput
	}
	rdlength := binary.BigEndian.Uint16(msg[pos : pos+2])
	pos += 2

	end := pos + int(rdlength)
	if end > len(msg) {
		return Record{}, offset, ErrShortInput
	}

	data, err := ParseRData(msg, pos, rdlength, kind, class)
	if err != nil {
		return Record{}, offset, err
	}

	record := Record{
		Name:     name,
		Kind:     kind,
		Class:    class,
		TTL:      ttl,
		RDLength: rdlength,
		Data:     data,
	}
	return record, end, nil
}

// SkipRecord advances past a resource record without decoding it: a
// structural name skip, the ten fixed trailer octets, then the declared
// RDATA length. This is the section walk the response skim uses.
func SkipRecord(msg []byte, offset int) (int, error) {
	pos, err := SkipName(msg, offset)
	if err != nil {
		return offset, err
	}

	if pos+protocol.RecordTrailerSize > len(msg) {
		return offset, ErrShortInput
	}
	rdlength := binary.BigEndian.Uint16(msg[pos+8 : pos+10])
	pos += protocol.RecordTrailerSize

	end := pos + int(rdlength)
	if end > len(msg) {
		return offset, ErrShortInput
	}
	return end, nil
}

// SkipQuestion advances past a question entry without decoding it.
func SkipQuestion(msg []byte, offset int) (int, error) {
	pos, err := SkipName(msg, offset)
	if err != nil {
		return offset, err
	}

	if pos+protocol.QuestionTrailerSize > len(msg) {
		return offset, ErrShortInput
	}
	return pos + protocol.QuestionTrailerSize, nil
}

// String formats the record the way zone files present it.
func (r Record) String() string {
	return fmt.Sprintf("%s %d %s %s %v", r.Name, r.TTL, r.Class, r.Kind, r.Data)
}
