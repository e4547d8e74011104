package codec

import (
	"net/netip"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/dns/dnsmessage"

	"github.com/bengsparks/dns-protocol/message"
)

// These tests use two independent DNS implementations as packing oracles:
// messages produced by miekg/dns and x/net/dns/dnsmessage must decode into
// the values this codec's own encoder would produce.

func TestInteropDecodeMiekgQuery(t *testing.T) {
	m := new(dns.Msg)
	m.SetQuestion("example.com.", dns.TypeA)
	m.Id = 0x4242

	wire, err := m.Pack()
	require.NoError(t, err)

	var codec QueryCodec
	require.NoError(t, codec.Push(wire))

	query, err := codec.Decode()
	require.NoError(t, err)
	assert.Zero(t, codec.Buffered())

	assert.Equal(t, uint16(0x4242), query.Header.ID)
	assert.True(t, query.Header.Flags.RD())
	assert.False(t, query.Header.Flags.QR())
	assert.True(t, query.Question.Name.Equal(message.NameFrom("example.com")))
	assert.Equal(t, message.QTypeA, query.Question.Kind)
	assert.Equal(t, message.QClassIN, query.Question.Class)
}

func TestInteropDecodeMiekgResponse(t *testing.T) {
	q := new(dns.Msg)
	q.SetQuestion("example.com.", dns.TypeA)
	q.Id = 0x0101

	reply := new(dns.Msg)
	reply.SetReply(q)
	rr, err := dns.NewRR("example.com. 300 IN A 93.184.216.34")
	require.NoError(t, err)
	reply.Answer = append(reply.Answer, rr)

	wire, err := reply.Pack()
	require.NoError(t, err)

	var codec ResponseCodec
	require.NoError(t, codec.Push(wire))

	response, err := codec.Decode()
	require.NoError(t, err)
	assert.Zero(t, codec.Buffered())

	assert.Equal(t, uint16(0x0101), response.Header.ID)
	assert.True(t, response.Header.Flags.QR())
	require.Len(t, response.Answers, 1)

	answer := response.Answers[0]
	assert.True(t, answer.Name.Equal(message.NameFrom("example.com")))
	assert.Equal(t, message.TypeA, answer.Kind)
	assert.Equal(t, message.TTL(300), answer.TTL)
	assert.Equal(t, message.RDataA{Addr: netip.MustParseAddr("93.184.216.34")}, answer.Data)
}

func TestInteropDnsmessageQueryMatchesOwnEncoder(t *testing.T) {
	oracle := dnsmessage.Message{
		Header: dnsmessage.Header{ID: 0x8298, RecursionDesired: true},
		Questions: []dnsmessage.Question{{
			Name:  dnsmessage.MustNewName("example.com."),
			Type:  dnsmessage.TypeA,
			Class: dnsmessage.ClassINET,
		}},
	}

	wire, err := oracle.Pack()
	require.NoError(t, err)

	// Same id, same flags, same question: byte-identical output.
	ours, err := EncodeQuery(queryFixture)
	require.NoError(t, err)
	assert.Equal(t, wire, ours)

	var codec QueryCodec
	require.NoError(t, codec.Push(wire))
	query, err := codec.Decode()
	require.NoError(t, err)
	assert.Equal(t, queryFixture, query)
}

// TestInteropDnsmessageCompressedResponse decodes a response whose answer
// names dnsmessage packs with compression pointers.
func TestInteropDnsmessageCompressedResponse(t *testing.T) {
	oracle := dnsmessage.Message{
		Header: dnsmessage.Header{ID: 7, Response: true, RecursionAvailable: true},
		Questions: []dnsmessage.Question{{
			Name:  dnsmessage.MustNewName("www.example.com."),
			Type:  dnsmessage.TypeA,
			Class: dnsmessage.ClassINET,
		}},
		Answers: []dnsmessage.Resource{{
			Header: dnsmessage.ResourceHeader{
				Name:  dnsmessage.MustNewName("www.example.com."),
				Type:  dnsmessage.TypeA,
				Class: dnsmessage.ClassINET,
				TTL:   60,
			},
			Body: &dnsmessage.AResource{A: [4]byte{192, 0, 2, 1}},
		}},
	}

	wire, err := oracle.Pack()
	require.NoError(t, err)

	var codec ResponseCodec
	require.NoError(t, codec.Push(wire))
	response, err := codec.Decode()
	require.NoError(t, err)

	require.Len(t, response.Questions, 1)
	require.Len(t, response.Answers, 1)
	assert.True(t, response.Answers[0].Name.Equal(response.Questions[0].Name))
	assert.Equal(t, message.RDataA{Addr: netip.MustParseAddr("192.0.2.1")}, response.Answers[0].Data)
}
