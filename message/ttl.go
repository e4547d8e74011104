package message

import "encoding/binary"

// TTL is the time interval, in seconds, that a resource record may be
// cached before it should be discarded. Zero means the record is only valid
// for the transaction in progress.
//
// RFC 1035 §3.2.1 defines TTL as a signed 32-bit field on the wire, but a
// negative interval is meaningless; decoding rejects the sign bit.
type TTL int32

// ParseTTL decodes a 32-bit TTL from msg starting at offset. A value with
// the sign bit set yields a WireError.
func ParseTTL(msg []byte, offset int) (TTL, int, error) {
	if offset < 0 || offset+4 > len(msg) {
		return 0, offset, ErrShortInput
	}

	raw := int32(binary.BigEndian.Uint32(msg[offset : offset+4]))
	if raw < 0 {
		return 0, offset, &WireError{
			Op:     "parse ttl",
			Offset: offset,
			Reason: ReasonNegativeTTL,
		}
	}

	return TTL(raw), offset + 4, nil
}

// Append encodes the TTL in network byte order.
func (t TTL) Append(dst []byte) []byte {
	return binary.BigEndian.AppendUint32(dst, uint32(t))
}
