package codec

import (
	"github.com/bengsparks/dns-protocol/message"
)

// ResponseCodec frames full DNS responses from accumulated input. Two
// strategies are available: Decode parses every section eagerly into owned
// structures, and DecodeView performs only a structural skim, deferring
// section parsing to lazy iterators over the retained buffer.
type ResponseCodec struct {
	framer
}

// Push appends one received datagram to the input buffer.
func (c *ResponseCodec) Push(p []byte) error {
	return c.push(p)
}

// Buffered returns the number of accumulated, undecoded bytes.
func (c *ResponseCodec) Buffered() int {
	return c.buffered()
}

// Decode attempts to frame one response eagerly. On success the consumed
// bytes leave the buffer; a short read consumes nothing; an invalid message
// discards one datagram.
func (c *ResponseCodec) Decode() (message.Response, error) {
	response, pos, err := parseResponse(c.buf, 0)
	if err != nil {
		return message.Response{}, c.invalid(err)
	}

	c.consume(pos)
	return response, nil
}

// DecodeView attempts to frame one response lazily: a first pass walks the
// buffer using only structural skips and records where each section begins;
// full parsing happens on demand through the view's iterators. On success
// the view owns a copy of the message bytes and the framer's buffer
// advances past them.
func (c *ResponseCodec) DecodeView() (*ResponseView, error) {
	view, pos, err := skimResponse(c.buf)
	if err != nil {
		return nil, c.invalid(err)
	}

	c.consume(pos)
	return view, nil
}

// parseResponse eagerly decodes a response and every section from msg.
func parseResponse(msg []byte, offset int) (message.Response, int, error) {
	header, pos, err := message.ParseHeader(msg, offset)
	if err != nil {
		return message.Response{}, offset, err
	}

	questions := make([]message.Question, 0, header.QDCount)
	for i := uint16(0); i < header.QDCount; i++ {
		var question message.Question
		question, pos, err = message.ParseQuestion(msg, pos)
		if err != nil {
			return message.Response{}, offset, err
		}
		questions = append(questions, question)
	}

	answers, pos, err := parseRecords(msg, pos, header.ANCount)
	if err != nil {
		return message.Response{}, offset, err
	}

	authorities, pos, err := parseRecords(msg, pos, header.NSCount)
	if err != nil {
		return message.Response{}, offset, err
	}

	additionals, pos, err := parseRecords(msg, pos, header.ARCount)
	if err != nil {
		return message.Response{}, offset, err
	}

	response := message.Response{
		Header:      header,
		Questions:   questions,
		Answers:     answers,
		Authorities: authorities,
		Additionals: additionals,
	}
	return response, pos, nil
}

// parseRecords eagerly decodes one record section of `count` entries.
func parseRecords(msg []byte, offset int, count uint16) ([]message.Record, int, error) {
	records := make([]message.Record, 0, count)
	pos := offset
	for i := uint16(0); i < count; i++ {
		var (
			record message.Record
			err    error
		)
		record, pos, err = message.ParseRecord(msg, pos)
		if err != nil {
			return nil, offset, err
		}
		records = append(records, record)
	}
	return records, pos, nil
}
