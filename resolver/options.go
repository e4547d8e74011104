package resolver

import (
	"github.com/rs/zerolog"
)

// Option is a functional option for configuring an Engine.
//
// Example:
//
//	engine := resolver.New(
//	    resolver.WithLogger(log.With().Str("component", "resolver").Logger()),
//	)
type Option func(*Engine)

// WithLogger attaches a logger to the engine. Each transaction event is
// tagged with the hex query id under the "event" key.
//
// The default is zerolog.Nop(): the engine stays silent and logging
// composition remains the caller's concern.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithPendingCapacity pre-sizes the outbound queue for callers that enqueue
// bursts of queries before polling.
func WithPendingCapacity(n int) Option {
	return func(e *Engine) {
		if n > 0 && e.pending == nil {
			e.pending = make([]enqueued, 0, n)
		}
	}
}
