package codec

import (
	"github.com/bengsparks/dns-protocol/message"
)

// QueryCodec frames DNS queries in both directions: it decodes a Query
// (header plus exactly one question) from accumulated input, and encodes a
// Query into wire bytes.
type QueryCodec struct {
	framer
}

// Push appends one received datagram to the input buffer.
func (c *QueryCodec) Push(p []byte) error {
	return c.push(p)
}

// Buffered returns the number of accumulated, undecoded bytes.
func (c *QueryCodec) Buffered() int {
	return c.buffered()
}

// Decode attempts to frame one query from the accumulated input.
//
// On success the consumed bytes leave the buffer. A short read
// (message.ErrShortInput) consumes nothing; push more bytes and retry.
// An invalid message discards one datagram and returns the wire error.
// A query whose QDCOUNT is not one is invalid; a resolver client never
// sends anything else.
func (c *QueryCodec) Decode() (message.Query, error) {
	header, pos, err := message.ParseHeader(c.buf, 0)
	if err != nil {
		return message.Query{}, c.invalid(err)
	}

	if header.QDCount != 1 || header.ANCount != 0 || header.NSCount != 0 || header.ARCount != 0 {
		return message.Query{}, c.invalid(&message.WireError{
			Op:     "decode query",
			Offset: 0,
			Reason: message.ReasonCountMismatch,
			Detail: "queries carry exactly one question and no records",
		})
	}

	question, pos, err := message.ParseQuestion(c.buf, pos)
	if err != nil {
		return message.Query{}, c.invalid(err)
	}

	c.consume(pos)
	return message.Query{Header: header, Question: question}, nil
}

// EncodeQuery encodes a query into wire format. The encoder never emits
// compression pointers.
func EncodeQuery(q message.Query) ([]byte, error) {
	dst := q.Header.Append(nil)
	return q.Question.Append(dst)
}
