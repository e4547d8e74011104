// Package codec implements streaming DNS framers: incremental decoders over
// a growable input buffer, and the matching encoders.
//
// A framer accumulates bytes via Push and attempts a decode on demand. The
// three-way contract mirrors the message package: on success the framer
// consumes exactly the decoded bytes; when the buffer holds only a valid
// prefix (message.ErrShortInput) it consumes nothing and the caller pushes
// more input; when the bytes cannot form a valid message (*message.WireError)
// the framer discards one datagram and surfaces the error.
//
// Datagram boundaries are recorded as pushed: UDP delivers whole datagrams,
// so each Push is one datagram and an invalid message costs exactly that
// datagram. A stream transport would instead cut to its length prefix; that
// framing is not implemented here.
package codec

import (
	"errors"

	"github.com/bengsparks/dns-protocol/internal/protocol"
	"github.com/bengsparks/dns-protocol/message"
)

// framer is the shared buffering core of QueryCodec and ResponseCodec.
type framer struct {
	buf []byte

	// ends holds the absolute end offset of each pushed datagram still in
	// the buffer, oldest first.
	ends []int
}

// push appends one datagram's bytes. The accumulated buffer is never
// allowed past the maximum DNS message size; a push that would exceed it
// fails with an oversize error and leaves the buffer unchanged.
func (f *framer) push(p []byte) error {
	if len(f.buf)+len(p) > protocol.MaxMessageSize {
		return &message.WireError{
			Op:     "buffer input",
			Offset: len(f.buf),
			Reason: message.ReasonOversize,
			Detail: "accumulated input exceeds maximum DNS message size",
		}
	}

	f.buf = append(f.buf, p...)
	f.ends = append(f.ends, len(f.buf))
	return nil
}

// buffered returns the number of accumulated, unconsumed bytes.
func (f *framer) buffered() int {
	return len(f.buf)
}

// consume drops n bytes from the front of the buffer and rebases the
// datagram boundaries.
func (f *framer) consume(n int) {
	f.buf = append(f.buf[:0], f.buf[n:]...)

	kept := f.ends[:0]
	for _, end := range f.ends {
		if end > n {
			kept = append(kept, end-n)
		}
	}
	f.ends = kept
}

// discardDatagram drops bytes up to the next datagram boundary, the
// recovery step after an invalid message.
func (f *framer) discardDatagram() {
	if len(f.ends) == 0 {
		f.buf = f.buf[:0]
		return
	}
	f.consume(f.ends[0])
}

// invalid applies the discard policy when err is fatal for the current
// message: wire errors cost one datagram, short input costs nothing.
func (f *framer) invalid(err error) error {
	var wireErr *message.WireError
	if errors.As(err, &wireErr) {
		f.discardDatagram()
	}
	return err
}
