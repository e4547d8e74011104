// Package resolver implements a sans-I/O recursive query engine: it
// sequences DNS queries and classifies responses without owning any
// sockets, timers, or clocks.
//
// The engine produces effects only as return values. A caller drives it by
// converting each Transmit from PollQuery into a datagram send, and each
// decoded incoming datagram into a HandleResponse call; scheduling,
// retries, and timeouts stay outside. This keeps the whole resolution
// sequence testable from in-memory transcripts.
//
// The engine is single-threaded and synchronous: no operation blocks, and
// every call returns in time bounded by the input size. Callers needing
// parallel resolvers instantiate independent engines.
package resolver

import (
	"fmt"
	"net/netip"

	"github.com/rs/zerolog"

	"github.com/bengsparks/dns-protocol/message"
)

// Transmit is an outbound query the caller must deliver to its target.
type Transmit struct {
	Target netip.AddrPort
	Query  message.Query
}

// Response pairs a classified outcome with the endpoints involved: the
// nameserver that answered and the target the query was originally sent to.
type Response struct {
	Source  netip.AddrPort
	Target  netip.AddrPort
	Outcome Outcome
}

// UnknownIDError reports a response whose id matches no outstanding
// transaction. The response is dropped.
type UnknownIDError struct {
	ID uint16
}

// Error implements the error interface for UnknownIDError.
func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("resolver: response with unknown id 0x%04x", e.ID)
}

// enqueued is a built query waiting to be polled.
type enqueued struct {
	target netip.AddrPort
	query  message.Query
}

// transaction tracks one transmitted query: where it went and what record
// type the caller is interested in.
type transaction struct {
	target   netip.AddrPort
	interest message.QType
}

// Engine holds the outbound query queue and the transaction table mapping
// outstanding query identifiers to their nameserver targets.
type Engine struct {
	logger zerolog.Logger

	pending     []enqueued
	transmitted map[uint16]transaction
}

// New creates an engine. By default it is silent; see WithLogger.
func New(opts ...Option) *Engine {
	engine := &Engine{
		logger:      zerolog.Nop(),
		transmitted: make(map[uint16]transaction),
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// EnqueueQuery builds a query for `name` with the given id and question
// type (class IN, flags zero, one question) and appends it to the pending
// queue.
//
// Ids are not checked for uniqueness here: a caller that reuses an id while
// the previous transaction is still in flight overwrites that entry when
// the new query is polled, and the last write wins at response time.
func (e *Engine) EnqueueQuery(target netip.AddrPort, id uint16, kind message.QType, name message.Name) {
	e.logger.Info().
		Str("event", eventID(id)).
		Stringer("name", name).
		Stringer("kind", kind).
		Stringer("target", target).
		Msg("enqueue: outgoing query")

	query := message.Query{
		Header: message.Header{
			ID:      id,
			Flags:   0,
			QDCount: 1,
		},
		Question: message.Question{
			Name:  name,
			Kind:  kind,
			Class: message.QClassIN,
		},
	}

	e.pending = append(e.pending, enqueued{target: target, query: query})
}

// PollQuery pops the oldest pending query, promotes it into the
// transaction table, and returns it for transmission. The boolean is false
// when nothing is pending. Queries come back in enqueue order.
func (e *Engine) PollQuery() (Transmit, bool) {
	if len(e.pending) == 0 {
		return Transmit{}, false
	}

	next := e.pending[0]
	e.pending = e.pending[1:]

	id := next.query.Header.ID
	e.transmitted[id] = transaction{
		target:   next.target,
		interest: next.query.Question.Kind,
	}

	e.logger.Debug().
		Str("event", eventID(id)).
		Stringer("target", next.target).
		Stringer("name", next.query.Question.Name).
		Msg("poll: query ready to transmit")

	return Transmit{Target: next.target, Query: next.query}, true
}

// HandleResponse matches a decoded response against the transaction table
// by id, removes the entry, and classifies the sections into an outcome.
// A response with no matching transaction yields an UnknownIDError.
func (e *Engine) HandleResponse(source netip.AddrPort, response message.Response) (Response, error) {
	id := response.Header.ID

	txn, ok := e.transmitted[id]
	if !ok {
		e.logger.Warn().
			Str("event", eventID(id)).
			Stringer("source", source).
			Msg("response: unknown id")
		return Response{}, &UnknownIDError{ID: id}
	}
	delete(e.transmitted, id)

	outcome := classify(response, txn.interest)
	e.logger.Info().
		Str("event", eventID(id)).
		Stringer("outcome", outcome.Kind).
		Int("records", len(outcome.Records)).
		Msg("response: classified")

	return Response{Source: source, Target: txn.target, Outcome: outcome}, nil
}

// HandleTimeout abandons the transaction for id, reporting whether one was
// outstanding. Whether to re-enqueue is the caller's decision.
func (e *Engine) HandleTimeout(id uint16) bool {
	if _, ok := e.transmitted[id]; !ok {
		return false
	}
	delete(e.transmitted, id)

	e.logger.Debug().
		Str("event", eventID(id)).
		Msg("timeout: transaction abandoned")
	return true
}

func eventID(id uint16) string {
	return fmt.Sprintf("0x%04x", id)
}
