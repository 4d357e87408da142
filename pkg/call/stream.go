package call

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/burrowlabs/burrow/pkg/log"
	"github.com/burrowlabs/burrow/pkg/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
)

// EventKind classifies stream events.
type EventKind int

const (
	EventData EventKind = iota
	EventEnd
	EventError
	EventCancelled
)

func (k EventKind) String() string {
	switch k {
	case EventData:
		return "data"
	case EventEnd:
		return "end"
	case EventError:
		return "error"
	case EventCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the event ends its stream.
func (k EventKind) Terminal() bool { return k != EventData }

// Event is one entry of a stream's event sequence: zero or more data events
// followed by exactly one terminal event.
type Event[T any] struct {
	Kind EventKind
	Data *T    // set when Kind is EventData
	Err  error // set when Kind is EventError
}

// Handle represents one active server-streaming call. Events arrive on
// Events() in arrival order; the channel closes after the terminal event.
// Cancel is idempotent and may be called at any time.
type Handle[T any] struct {
	id     string
	method string

	events chan Event[T]
	done   chan struct{}
	quit   chan struct{}

	cancelCtx  context.CancelFunc
	cancelled  atomic.Bool
	cancelOnce sync.Once
	termOnce   sync.Once
	term       Event[T]

	reg *Registry
	log zerolog.Logger
}

// Subscribe opens a server-streaming call and returns its handle, registered
// with reg until the stream reaches a terminal state. Opening failures are
// normalized the same way unary failures are. Subscribe never blocks on
// stream traffic; a pump goroutine owns the receive loop.
func Subscribe[T any](ctx context.Context, reg *Registry, method string, open func(context.Context) (grpc.ServerStreamingClient[T], error)) (*Handle[T], error) {
	sctx, cancel := context.WithCancel(ctx)
	stream, err := open(sctx)
	if err != nil {
		cancel()
		return nil, normalize(method, 0, err)
	}

	h := &Handle[T]{
		id:     uuid.NewString(),
		method: method,
		// One slot of buffer so a drained consumer that cancels still
		// receives the terminal event before the channel closes.
		events:    make(chan Event[T], 1),
		done:      make(chan struct{}),
		quit:      make(chan struct{}),
		cancelCtx: cancel,
		reg:       reg,
	}
	h.log = log.WithStreamID(h.id).With().Str("method", method).Logger()

	reg.register(h)
	metrics.ActiveStreams.Inc()
	h.log.Debug().Msg("stream opened")

	go h.pump(stream)
	return h, nil
}

// ID returns the handle's unique identifier.
func (h *Handle[T]) ID() string { return h.id }

// Method returns the full RPC method name of the stream.
func (h *Handle[T]) Method() string { return h.method }

// Events returns the event sequence. The channel delivers data events in
// arrival order, then the terminal event, then closes. Consume it until it
// closes or call Cancel; an abandoned, uncancelled stream pins its pump
// goroutine until the registry cancels it at shutdown.
func (h *Handle[T]) Events() <-chan Event[T] { return h.events }

// Done is closed once the stream is terminal.
func (h *Handle[T]) Done() <-chan struct{} { return h.done }

// Terminal returns the terminal event. Valid only after Done is closed.
func (h *Handle[T]) Terminal() Event[T] { return h.term }

// Err returns the stream's terminal error, or nil if it ended cleanly or was
// cancelled. Valid only after Done is closed.
func (h *Handle[T]) Err() error { return h.term.Err }

// Cancel stops the stream. It is idempotent and safe to call from any
// goroutine; after it returns no further data events are delivered, and the
// stream terminates with a cancelled event.
func (h *Handle[T]) Cancel() {
	h.cancelOnce.Do(func() {
		h.cancelled.Store(true)
		close(h.quit)
		h.cancelCtx()
		h.log.Debug().Msg("stream cancelled")
	})
}

func (h *Handle[T]) pump(stream grpc.ServerStreamingClient[T]) {
	defer func() {
		h.cancelCtx()
		metrics.ActiveStreams.Dec()
		h.reg.deregister(h.id)
	}()

	for {
		msg, err := stream.Recv()
		// A cancel races the receive loop; whatever Recv returned, the
		// stream ends with the synthetic cancelled event and any message
		// still in flight is dropped.
		if h.cancelled.Load() {
			h.terminate(Event[T]{Kind: EventCancelled})
			return
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				h.terminate(Event[T]{Kind: EventEnd})
			} else {
				h.terminate(Event[T]{Kind: EventError, Err: normalize(h.method, 0, err)})
			}
			return
		}

		metrics.StreamEventsTotal.WithLabelValues(h.method).Inc()
		// Quit takes priority over the send; when both are ready the
		// select below picks at random, so without this check a cancel
		// could keep losing the coin flip to a fast producer.
		select {
		case <-h.quit:
			h.terminate(Event[T]{Kind: EventCancelled})
			return
		default:
		}
		select {
		case h.events <- Event[T]{Kind: EventData, Data: msg}:
		case <-h.quit:
			h.terminate(Event[T]{Kind: EventCancelled})
			return
		}
	}
}

// terminate records and delivers the terminal event exactly once, then closes
// the event sequence.
func (h *Handle[T]) terminate(ev Event[T]) {
	h.termOnce.Do(func() {
		h.term = ev
		// The buffer slot is free whenever the consumer has drained, so
		// the first send never races quit. Only a handle abandoned with
		// a data event still queued loses its terminal event, and
		// Terminal() still reports the outcome there.
		select {
		case h.events <- ev:
		default:
			select {
			case h.events <- ev:
			case <-h.quit:
			}
		}
		close(h.events)
		close(h.done)
		metrics.StreamsTotal.WithLabelValues(h.method, ev.Kind.String()).Inc()
		h.log.Debug().Str("terminal", ev.Kind.String()).Msg("stream closed")
	})
}
