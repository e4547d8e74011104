package codec

import (
	"github.com/bengsparks/dns-protocol/message"
)

// section records where one message section begins and how many entries it
// holds.
type section struct {
	count  uint16
	offset int
}

// ResponseView is a lazily parsed DNS response. It owns an immutable copy
// of the message bytes plus a table of section offsets recorded by a
// structural first pass; iterators re-enter the eager decoders on demand
// from the recorded offsets.
//
// The skim never expands names: section advance only needs label skipping,
// which works without pointer chasing because a pointer label terminates
// its name and is exactly two octets.
type ResponseView struct {
	buf    []byte
	header message.Header

	questions   section
	answers     section
	authorities section
	additionals section
	end         int
}

// skimResponse walks msg structurally, recording section offsets, and
// returns the view plus the total byte length of the message.
func skimResponse(msg []byte) (*ResponseView, int, error) {
	header, pos, err := message.ParseHeader(msg, 0)
	if err != nil {
		return nil, 0, err
	}

	view := ResponseView{header: header}

	view.questions = section{count: header.QDCount, offset: pos}
	for i := uint16(0); i < header.QDCount; i++ {
		if pos, err = message.SkipQuestion(msg, pos); err != nil {
			return nil, 0, err
		}
	}

	view.answers = section{count: header.ANCount, offset: pos}
	for i := uint16(0); i < header.ANCount; i++ {
		if pos, err = message.SkipRecord(msg, pos); err != nil {
			return nil, 0, err
		}
	}

	view.authorities = section{count: header.NSCount, offset: pos}
	for i := uint16(0); i < header.NSCount; i++ {
		if pos, err = message.SkipRecord(msg, pos); err != nil {
			return nil, 0, err
		}
	}

	view.additionals = section{count: header.ARCount, offset: pos}
	for i := uint16(0); i < header.ARCount; i++ {
		if pos, err = message.SkipRecord(msg, pos); err != nil {
			return nil, 0, err
		}
	}

	view.end = pos
	view.buf = make([]byte, pos)
	copy(view.buf, msg[:pos])
	return &view, pos, nil
}

// Header returns the message header, parsed during the skim.
func (v *ResponseView) Header() message.Header {
	return v.header
}

// Len returns the message's total size in octets.
func (v *ResponseView) Len() int {
	return v.end
}

// Questions iterates the question section.
func (v *ResponseView) Questions() *QuestionIter {
	return &QuestionIter{
		buf: v.buf,
		pos: v.questions.offset,
		end: v.answers.offset,
	}
}

// Answers iterates the answer section.
func (v *ResponseView) Answers() *RecordIter {
	return &RecordIter{
		buf: v.buf,
		pos: v.answers.offset,
		end: v.authorities.offset,
	}
}

// Authorities iterates the authority section.
func (v *ResponseView) Authorities() *RecordIter {
	return &RecordIter{
		buf: v.buf,
		pos: v.authorities.offset,
		end: v.additionals.offset,
	}
}

// Additionals iterates the additional section.
func (v *ResponseView) Additionals() *RecordIter {
	return &RecordIter{
		buf: v.buf,
		pos: v.additionals.offset,
		end: v.end,
	}
}

// Materialize parses every section into an owned Response. The skim has
// already validated the message's structure, but entry decoding can still
// fail on codes outside the known type and class sets.
func (v *ResponseView) Materialize() (message.Response, error) {
	response := message.Response{
		Header:      v.header,
		Questions:   make([]message.Question, 0, v.questions.count),
		Answers:     make([]message.Record, 0, v.answers.count),
		Authorities: make([]message.Record, 0, v.authorities.count),
		Additionals: make([]message.Record, 0, v.additionals.count),
	}

	questions := v.Questions()
	for {
		question, ok, err := questions.Next()
		if err != nil {
			return message.Response{}, err
		}
		if !ok {
			break
		}
		response.Questions = append(response.Questions, question)
	}

	for _, pair := range []struct {
		iter *RecordIter
		out  *[]message.Record
	}{
		{v.Answers(), &response.Answers},
		{v.Authorities(), &response.Authorities},
		{v.Additionals(), &response.Additionals},
	} {
		for {
			record, ok, err := pair.iter.Next()
			if err != nil {
				return message.Response{}, err
			}
			if !ok {
				break
			}
			*pair.out = append(*pair.out, record)
		}
	}

	return response, nil
}

// QuestionIter decodes question entries on demand from a view's buffer.
type QuestionIter struct {
	buf []byte
	pos int
	end int
}

// Next decodes the next question. The boolean is false once the section is
// exhausted.
func (it *QuestionIter) Next() (message.Question, bool, error) {
	if it.pos >= it.end {
		return message.Question{}, false, nil
	}

	question, pos, err := message.ParseQuestion(it.buf, it.pos)
	if err != nil {
		return message.Question{}, false, err
	}
	it.pos = pos
	return question, true, nil
}

// RecordIter decodes resource records on demand from a view's buffer.
type RecordIter struct {
	buf []byte
	pos int
	end int
}

// Next decodes the next record. The boolean is false once the section is
// exhausted.
func (it *RecordIter) Next() (message.Record, bool, error) {
	if it.pos >= it.end {
		return message.Record{}, false, nil
	}

	record, pos, err := message.ParseRecord(it.buf, it.pos)
	if err != nil {
		return message.Record{}, false, err
	}
	it.pos = pos
	return record, true, nil
}
