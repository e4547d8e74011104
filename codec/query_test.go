package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bengsparks/dns-protocol/message"
)

// queryFixture is the classic example.com A query with RD set.
var queryFixture = message.Query{
	Header: message.Header{
		ID:      0x8298,
		Flags:   0x0100,
		QDCount: 1,
	},
	Question: message.Question{
		Name:  message.NameFrom("example.com"),
		Kind:  message.QTypeA,
		Class: message.QClassIN,
	},
}

// queryFixtureWire is its exact wire encoding.
var queryFixtureWire = []byte{
	0x82, 0x98, 0x01, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x07, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 0x03, 'c', 'o', 'm', 0x00,
	0x00, 0x01, 0x00, 0x01,
}

func TestEncodeQueryFixture(t *testing.T) {
	wire, err := EncodeQuery(queryFixture)
	require.NoError(t, err)
	assert.Equal(t, queryFixtureWire, wire)
}

func TestQueryCodecDecode(t *testing.T) {
	var codec QueryCodec
	require.NoError(t, codec.Push(queryFixtureWire))

	query, err := codec.Decode()
	require.NoError(t, err)
	assert.Equal(t, queryFixture, query)
	assert.Zero(t, codec.Buffered(), "a full decode consumes exactly the message")
}

// TestQueryCodecPartialRead feeds the query one byte at a time: every
// strict prefix reports a short read without consuming anything, and the
// full message decodes leaving an empty buffer.
func TestQueryCodecPartialRead(t *testing.T) {
	var codec QueryCodec

	for i, b := range queryFixtureWire {
		if i == len(queryFixtureWire)-1 {
			break
		}
		require.NoError(t, codec.Push([]byte{b}))

		_, err := codec.Decode()
		require.ErrorIs(t, err, message.ErrShortInput, "prefix of %d octets", i+1)
		require.Equal(t, i+1, codec.Buffered(), "a short read must not consume")
	}

	require.NoError(t, codec.Push(queryFixtureWire[len(queryFixtureWire)-1:]))
	query, err := codec.Decode()
	require.NoError(t, err)
	assert.Equal(t, queryFixture, query)
	assert.Zero(t, codec.Buffered())
}

// TestQueryCodecCountMismatch validates that a message whose header counts
// do not describe a single bare question is rejected and the datagram is
// discarded.
func TestQueryCodecCountMismatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(h *message.Header)
	}{
		{"two questions", func(h *message.Header) { h.QDCount = 2 }},
		{"zero questions", func(h *message.Header) { h.QDCount = 0 }},
		{"stray answer", func(h *message.Header) { h.ANCount = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			malformed := queryFixture
			tt.mutate(&malformed.Header)
			wire := malformed.Header.Append(nil)
			wire, err := malformed.Question.Append(wire)
			require.NoError(t, err)

			var codec QueryCodec
			require.NoError(t, codec.Push(wire))

			_, err = codec.Decode()
			var wireErr *message.WireError
			require.ErrorAs(t, err, &wireErr)
			assert.Equal(t, message.ReasonCountMismatch, wireErr.Reason)
			assert.Zero(t, codec.Buffered(), "an invalid message costs its datagram")
		})
	}
}

// TestQueryCodecRecoversAfterInvalid validates the discard policy: after an
// invalid datagram is dropped, the following datagram still decodes.
func TestQueryCodecRecoversAfterInvalid(t *testing.T) {
	var codec QueryCodec

	garbage := make([]byte, len(queryFixtureWire))
	copy(garbage, queryFixtureWire)
	garbage[4], garbage[5] = 0x00, 0x02 // qdcount = 2

	require.NoError(t, codec.Push(garbage))
	require.NoError(t, codec.Push(queryFixtureWire))

	_, err := codec.Decode()
	var wireErr *message.WireError
	require.ErrorAs(t, err, &wireErr)

	query, err := codec.Decode()
	require.NoError(t, err)
	assert.Equal(t, queryFixture, query)
	assert.Zero(t, codec.Buffered())
}

// TestFramerOversize validates that the accumulated buffer is capped at the
// maximum DNS message size.
func TestFramerOversize(t *testing.T) {
	var codec ResponseCodec

	require.NoError(t, codec.Push(make([]byte, 65535)))

	err := codec.Push([]byte{0x00})
	var wireErr *message.WireError
	require.ErrorAs(t, err, &wireErr)
	assert.Equal(t, message.ReasonOversize, wireErr.Reason)
	assert.Equal(t, 65535, codec.Buffered(), "a rejected push leaves the buffer unchanged")
}

// TestEncodeQueryRejectsBadName validates that encoder-side name validation
// propagates.
func TestEncodeQueryRejectsBadName(t *testing.T) {
	bad := queryFixture
	bad.Question.Name = message.NameFrom("oops..example")

	_, err := EncodeQuery(bad)
	var validationErr *message.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}
