package message

import (
	"errors"
	"fmt"
)

// ErrShortInput reports that the input ended before a complete value could
// be decoded. It is not fatal: the bytes seen so far are a valid prefix, and
// the caller should accumulate more input and retry. Framers consume no
// input when they see it and return it unchanged to their caller.
//
// Every decoder in this package maps a read past end-of-input to
// ErrShortInput rather than a WireError.
var ErrShortInput = errors.New("dns: short input")

// Reason classifies why a message is invalid on the wire.
type Reason uint8

const (
	// ReasonReservedLabelForm reports a label length octet whose top two
	// bits are 01 or 10, reserved by RFC 1035 §4.1.4.
	ReasonReservedLabelForm Reason = iota + 1

	// ReasonPointerLoop reports a compression pointer chain longer than
	// the chase budget, indicating a looping or absurdly deep name.
	ReasonPointerLoop

	// ReasonPointerOutOfRange reports a compression pointer whose target
	// lies at or beyond the end of the message.
	ReasonPointerOutOfRange

	// ReasonRDataTruncated reports RDATA whose declared length is too
	// short for the structured value its TYPE requires.
	ReasonRDataTruncated

	// ReasonNegativeTTL reports a TTL with the sign bit set. TTL is a
	// signed 32-bit field on the wire per RFC 1035 §3.2.1 but is
	// semantically non-negative.
	ReasonNegativeTTL

	// ReasonUnsupportedType reports a TYPE code outside the known set.
	ReasonUnsupportedType

	// ReasonUnsupportedClass reports a CLASS code outside the known set.
	ReasonUnsupportedClass

	// ReasonOversize reports a buffer grown past the maximum DNS message
	// size, which indicates misframed input on a stream transport.
	ReasonOversize

	// ReasonCountMismatch reports section counts that disagree with the
	// header, such as a query whose QDCOUNT is not one.
	ReasonCountMismatch
)

// String returns the reason's name for diagnostics.
func (r Reason) String() string {
	switch r {
	case ReasonReservedLabelForm:
		return "reserved label form"
	case ReasonPointerLoop:
		return "pointer loop"
	case ReasonPointerOutOfRange:
		return "pointer out of range"
	case ReasonRDataTruncated:
		return "rdata truncated"
	case ReasonNegativeTTL:
		return "negative ttl"
	case ReasonUnsupportedType:
		return "unsupported type"
	case ReasonUnsupportedClass:
		return "unsupported class"
	case ReasonOversize:
		return "oversize"
	case ReasonCountMismatch:
		return "count mismatch"
	default:
		return "unknown"
	}
}

// WireError reports bytes that cannot represent a valid DNS message. It is
// fatal for the message being decoded: the caller drops the message and
// advances past it.
type WireError struct {
	// Op describes what decoding operation failed (e.g. "parse name",
	// "parse record").
	Op string

	// Offset is the byte offset in the message where the error was
	// detected, or -1 if unknown.
	Offset int

	// Reason classifies the failure.
	Reason Reason

	// Code carries the offending numeric value for the unsupported
	// type/class reasons, preserved for diagnostics.
	Code uint16

	// Detail is optional free-form context.
	Detail string
}

// Error implements the error interface for WireError.
func (e *WireError) Error() string {
	msg := fmt.Sprintf("dns: %s during %s", e.Reason, e.Op)
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Reason == ReasonUnsupportedType || e.Reason == ReasonUnsupportedClass {
		msg += fmt.Sprintf(" (code %d)", e.Code)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is reports whether target is a *WireError with the same Reason, so that
// callers can match on reasons with errors.Is.
func (e *WireError) Is(target error) bool {
	other, ok := target.(*WireError)
	return ok && e.Reason == other.Reason
}

// ValidationError reports caller-supplied values that cannot be encoded,
// such as a name whose labels exceed 63 octets.
type ValidationError struct {
	// Field identifies which input failed validation.
	Field string

	// Value is the invalid value, if safe to include.
	Value any

	// Message describes why validation failed.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("dns: invalid %s: %s (value: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("dns: invalid %s: %s", e.Field, e.Message)
}
