package message

import "fmt"

// Question is a question section entry per RFC 1035 §4.1.2.
//
//	                                1  1  1  1  1  1
//	  0  1  2  3  4  5  6  7  8  9  0  1  2  3  4  5
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|                                               |
//	/                     QNAME                     /
//	/                                               /
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|                     QTYPE                     |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|                     QCLASS                    |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
type Question struct {
	// Name is the domain name being asked about.
	Name Name

	// Kind specifies the type of the query. Values include all codes valid
	// for a record TYPE together with the more general question-only codes.
	Kind QType

	// Class specifies the class of the query; IN for the Internet.
	Class QClass
}

// ParseQuestion decodes a question entry from msg starting at offset.
func ParseQuestion(msg []byte, offset int) (Question, int, error) {
	name, pos, err := ParseName(msg, offset)
	if err != nil {
		return Question{}, offset, err
	}

	kind, pos, err := ParseQType(msg, pos)
	if err != nil {
		return Question{}, offset, err
	}

	class, pos, err := ParseQClass(msg, pos)
	if err != nil {
		return Question{}, offset, err
	}

	return Question{Name: name, Kind: kind, Class: class}, pos, nil
}

// Append encodes the question into wire format.
func (q Question) Append(dst []byte) ([]byte, error) {
	dst, err := q.Name.Append(dst)
	if err != nil {
		return nil, err
	}
	dst = q.Kind.Append(dst)
	dst = q.Class.Append(dst)
	return dst, nil
}

// String formats the question the way zone files present it.
func (q Question) String() string {
	return fmt.Sprintf("%s %s %s", q.Name, q.Class, q.Kind)
}
