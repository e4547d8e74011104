package message

import (
	"strings"

	"github.com/bengsparks/dns-protocol/internal/protocol"
)

// Name is a domain name held in its expanded, dotted form, e.g.
// "www.example.com". Names are kept as bytes because they are
// case-preserving and not necessarily UTF-8; comparison is
// ASCII-case-insensitive per RFC 1035 §2.3.3.
//
// On the wire a name is a sequence of labels, each a length octet followed
// by that many octets, terminated by the zero-length label of the root. The
// wire form may use compression pointers; the in-memory form is always
// fully expanded, which turns the potentially cyclic pointer graph on the
// wire into an independent value in memory.
type Name []byte

// NameFrom converts a dotted string such as "example.com" into a Name.
func NameFrom(s string) Name {
	return Name(s)
}

// String returns the dotted representation.
func (n Name) String() string {
	return string(n)
}

// Equal reports whether two names are equal under ASCII-case-insensitive
// comparison per RFC 1035 §2.3.3.
func (n Name) Equal(other Name) bool {
	if len(n) != len(other) {
		return false
	}
	for i := range n {
		if lowerASCII(n[i]) != lowerASCII(other[i]) {
			return false
		}
	}
	return true
}

// Compare orders two names ASCII-case-insensitively, returning -1, 0, or 1.
func (n Name) Compare(other Name) int {
	for i := 0; i < len(n) && i < len(other); i++ {
		a, b := lowerASCII(n[i]), lowerASCII(other[i])
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	switch {
	case len(n) < len(other):
		return -1
	case len(n) > len(other):
		return 1
	}
	return 0
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// ParseName decodes a domain name from msg starting at offset, expanding
// compression pointers per RFC 1035 §4.1.4.
//
// The top two bits of each length octet discriminate the label form:
//
//	0b00llllll  uncompressed label of l octets
//	0b11oooooo  pointer; with the next octet, a 14-bit offset from the
//	            start of the message where parsing continues
//	0b01/0b10   reserved
//
// A pointer terminates the name at its wire position: the returned offset
// is the position after the first pointer (or after the zero label when no
// pointer occurs). Pointer chains are bounded by protocol.MaxPointerChases;
// exceeding the bound rejects the name, which is what defuses looping
// pointer graphs. A pointer target at or beyond the end of the message
// rejects immediately.
func ParseName(msg []byte, offset int) (Name, int, error) {
	if offset < 0 {
		return nil, offset, &WireError{
			Op:     "parse name",
			Offset: offset,
			Reason: ReasonPointerOutOfRange,
			Detail: "negative offset",
		}
	}

	var expanded []byte
	pos := offset
	newOffset := offset
	jumped := false
	chases := 0

	for {
		if pos >= len(msg) {
			return nil, offset, ErrShortInput
		}

		length := msg[pos]
		switch length & protocol.LabelFormMask {
		case 0x00:
			// Zero-length label: the root, terminating the name.
			if length == 0 {
				if !jumped {
					newOffset = pos + 1
				}
				return Name(expanded), newOffset, nil
			}

			// Uncompressed label: the next `length` octets.
			end := pos + 1 + int(length)
			if end > len(msg) {
				return nil, offset, ErrShortInput
			}
			if len(expanded) > 0 {
				expanded = append(expanded, '.')
			}
			expanded = append(expanded, msg[pos+1:end]...)
			pos = end

		case protocol.LabelFormPointer:
			if pos+1 >= len(msg) {
				return nil, offset, ErrShortInput
			}

			target := int(length&protocol.PointerOffsetMask)<<8 | int(msg[pos+1])
			if target >= len(msg) {
				return nil, offset, &WireError{
					Op:     "parse name",
					Offset: pos,
					Reason: ReasonPointerOutOfRange,
					Detail: "pointer target beyond message end",
				}
			}

			// The name's wire extent ends at the first pointer; later
			// jumps only relocate the read position.
			if !jumped {
				newOffset = pos + 2
				jumped = true
			}

			chases++
			if chases > protocol.MaxPointerChases {
				return nil, offset, &WireError{
					Op:     "parse name",
					Offset: pos,
					Reason: ReasonPointerLoop,
					Detail: "pointer chase budget exhausted",
				}
			}

			pos = target

		default:
			// 0b01 and 0b10 are reserved label forms per RFC 1035 §4.1.4.
			return nil, offset, &WireError{
				Op:     "parse name",
				Offset: pos,
				Reason: ReasonReservedLabelForm,
			}
		}
	}
}

// SkipName advances past a name without expanding it, returning the offset
// immediately after the name's wire extent.
//
// This is the structural walk the fast response skim relies on: a pointer
// label terminates its name and is exactly two octets, so section advance
// never needs to chase pointers or inspect label bytes.
func SkipName(msg []byte, offset int) (int, error) {
	if offset < 0 {
		return offset, &WireError{
			Op:     "skip name",
			Offset: offset,
			Reason: ReasonPointerOutOfRange,
			Detail: "negative offset",
		}
	}

	pos := offset
	for {
		if pos >= len(msg) {
			return offset, ErrShortInput
		}

		length := msg[pos]
		switch length & protocol.LabelFormMask {
		case 0x00:
			if length == 0 {
				return pos + 1, nil
			}
			pos += 1 + int(length)

		case protocol.LabelFormPointer:
			if pos+1 >= len(msg) {
				return offset, ErrShortInput
			}
			return pos + 2, nil

		default:
			return offset, &WireError{
				Op:     "skip name",
				Offset: pos,
				Reason: ReasonReservedLabelForm,
			}
		}
	}
}

// Append encodes the name into wire format, writing each label as a length
// octet followed by the label bytes and terminating with the zero octet.
//
// The encoder never emits compression pointers; RFC 1035 §4.1.4 makes
// compression an encoder option, and uncompressed output keeps encoding a
// single forward pass. Any byte sequence whose '.'-separated labels are
// between 1 and 63 octets, and whose encoded form fits in 255 octets, is
// accepted.
func (n Name) Append(dst []byte) ([]byte, error) {
	// The root name is just the terminator.
	if len(n) == 0 {
		return append(dst, 0), nil
	}

	wire := len(n) + 2
	if wire > protocol.MaxNameLength {
		return nil, &ValidationError{
			Field:   "name",
			Value:   n.String(),
			Message: "encoded name exceeds 255 octets",
		}
	}

	for _, label := range strings.Split(string(n), ".") {
		if len(label) == 0 {
			return nil, &ValidationError{
				Field:   "name",
				Value:   n.String(),
				Message: "empty label (consecutive or trailing dots)",
			}
		}
		if len(label) > protocol.MaxLabelLength {
			return nil, &ValidationError{
				Field:   "name",
				Value:   n.String(),
				Message: "label exceeds 63 octets",
			}
		}

		dst = append(dst, byte(len(label)))
		dst = append(dst, label...)
	}

	return append(dst, 0), nil
}
