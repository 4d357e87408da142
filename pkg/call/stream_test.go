package call

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/burrowlabs/burrow/pkg/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const streamMethod = "/burrow.JobService/GetLogs"

// fakeStream satisfies grpc.ServerStreamingClient with a scripted Recv. The
// embedded ClientStream is never touched.
type fakeStream[T any] struct {
	grpc.ClientStream
	recv func() (*T, error)
}

func (f *fakeStream[T]) Recv() (*T, error) { return f.recv() }

// queueStream replays msgs in order, then final.
func queueStream[T any](msgs []*T, final error) *fakeStream[T] {
	i := 0
	return &fakeStream[T]{recv: func() (*T, error) {
		if i < len(msgs) {
			msg := msgs[i]
			i++
			return msg, nil
		}
		return nil, final
	}}
}

// blockingStream replays msgs in order, then blocks until ctx is cancelled.
func blockingStream[T any](ctx context.Context, msgs []*T) *fakeStream[T] {
	i := 0
	return &fakeStream[T]{recv: func() (*T, error) {
		if i < len(msgs) {
			msg := msgs[i]
			i++
			return msg, nil
		}
		<-ctx.Done()
		return nil, status.FromContextError(ctx.Err()).Err()
	}}
}

func collect[T any](t *testing.T, h *Handle[T]) []Event[T] {
	t.Helper()
	var events []Event[T]
	for ev := range h.Events() {
		events = append(events, ev)
	}
	return events
}

// TestSubscribeOrdering tests the data-then-terminal event sequence
func TestSubscribeOrdering(t *testing.T) {
	reg := NewRegistry()
	msgs := []*reply{{Value: "a"}, {Value: "b"}, {Value: "c"}}

	h, err := Subscribe(context.Background(), reg, streamMethod,
		func(ctx context.Context) (grpc.ServerStreamingClient[reply], error) {
			return queueStream(msgs, io.EOF), nil
		})
	require.NoError(t, err)
	assert.NotEmpty(t, h.ID())
	assert.Equal(t, streamMethod, h.Method())

	events := collect(t, h)
	require.Len(t, events, 4)
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, EventData, events[i].Kind)
		assert.Equal(t, want, events[i].Data.Value)
	}
	assert.Equal(t, EventEnd, events[3].Kind)

	<-h.Done()
	assert.Equal(t, EventEnd, h.Terminal().Kind)
	assert.NoError(t, h.Err())
	assert.Equal(t, 0, reg.Len(), "terminal stream must deregister itself")
}

// TestSubscribeEmptyStream tests a stream that ends without data
func TestSubscribeEmptyStream(t *testing.T) {
	reg := NewRegistry()
	h, err := Subscribe(context.Background(), reg, streamMethod,
		func(ctx context.Context) (grpc.ServerStreamingClient[reply], error) {
			return queueStream[reply](nil, io.EOF), nil
		})
	require.NoError(t, err)

	events := collect(t, h)
	require.Len(t, events, 1)
	assert.Equal(t, EventEnd, events[0].Kind)
}

// TestSubscribeError tests that a mid-stream failure terminates with a normalized error
func TestSubscribeError(t *testing.T) {
	reg := NewRegistry()
	h, err := Subscribe(context.Background(), reg, streamMethod,
		func(ctx context.Context) (grpc.ServerStreamingClient[reply], error) {
			return queueStream([]*reply{{Value: "a"}}, status.Error(codes.Unavailable, "daemon restarting")), nil
		})
	require.NoError(t, err)

	events := collect(t, h)
	require.Len(t, events, 2)
	assert.Equal(t, EventData, events[0].Kind)
	assert.Equal(t, EventError, events[1].Kind)

	var rpcErr *errdefs.RPCError
	require.ErrorAs(t, events[1].Err, &rpcErr)
	assert.Equal(t, codes.Unavailable, rpcErr.Code)
	assert.Equal(t, streamMethod, rpcErr.Method)

	<-h.Done()
	assert.Equal(t, events[1].Err, h.Err())
	assert.Equal(t, 0, reg.Len())
}

// TestSubscribeOpenFailure tests that an opening failure is normalized and registers nothing
func TestSubscribeOpenFailure(t *testing.T) {
	reg := NewRegistry()
	h, err := Subscribe(context.Background(), reg, streamMethod,
		func(ctx context.Context) (grpc.ServerStreamingClient[reply], error) {
			return nil, status.Error(codes.NotFound, "no such job")
		})

	require.Error(t, err)
	assert.Nil(t, h)
	var rpcErr *errdefs.RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, codes.NotFound, rpcErr.Code)
	assert.Equal(t, 0, reg.Len())
}

// TestCancel tests cancellation after some data has arrived
func TestCancel(t *testing.T) {
	reg := NewRegistry()
	var streamCtx context.Context

	h, err := Subscribe(context.Background(), reg, streamMethod,
		func(ctx context.Context) (grpc.ServerStreamingClient[reply], error) {
			streamCtx = ctx
			return blockingStream(ctx, []*reply{{Value: "a"}}), nil
		})
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())

	first := <-h.Events()
	require.Equal(t, EventData, first.Kind)
	assert.Equal(t, "a", first.Data.Value)

	h.Cancel()

	var events []Event[reply]
	for ev := range h.Events() {
		events = append(events, ev)
	}
	require.Len(t, events, 1)
	assert.Equal(t, EventCancelled, events[0].Kind)

	<-h.Done()
	assert.Equal(t, EventCancelled, h.Terminal().Kind)
	assert.NoError(t, h.Err(), "cancellation is not an error")
	assert.Error(t, streamCtx.Err(), "cancel must tear down the underlying call")
	assert.Equal(t, 0, reg.Len())
}

// TestCancelTerminalDelivered tests that a drained consumer always receives
// the cancelled terminal event, not just on a lucky scheduling
func TestCancelTerminalDelivered(t *testing.T) {
	for round := 0; round < 100; round++ {
		reg := NewRegistry()
		h, err := Subscribe(context.Background(), reg, streamMethod,
			func(ctx context.Context) (grpc.ServerStreamingClient[reply], error) {
				return blockingStream(ctx, []*reply{{Value: "a"}}), nil
			})
		require.NoError(t, err)

		first := <-h.Events()
		require.Equal(t, EventData, first.Kind, "round %d", round)

		h.Cancel()

		events := collect(t, h)
		require.Len(t, events, 1, "round %d: terminal event missing from Events()", round)
		assert.Equal(t, EventCancelled, events[0].Kind, "round %d", round)
	}
}

// TestCancelStopsData tests that a fast producer stops promptly after cancel
func TestCancelStopsData(t *testing.T) {
	for round := 0; round < 50; round++ {
		reg := NewRegistry()
		msgs := make([]*reply, 64)
		for i := range msgs {
			msgs[i] = &reply{Value: "x"}
		}

		h, err := Subscribe(context.Background(), reg, streamMethod,
			func(ctx context.Context) (grpc.ServerStreamingClient[reply], error) {
				return queueStream(msgs, io.EOF), nil
			})
		require.NoError(t, err)

		first := <-h.Events()
		require.Equal(t, EventData, first.Kind)

		h.Cancel()

		// At most one event already buffered plus one send already in
		// flight may still arrive; anything beyond that means the pump
		// kept producing past the cancel.
		late := 0
		for ev := range h.Events() {
			if ev.Kind == EventData {
				late++
			}
		}
		assert.LessOrEqual(t, late, 2, "round %d: %d data events after cancel", round, late)

		<-h.Done()
		assert.Equal(t, EventCancelled, h.Terminal().Kind, "round %d", round)
		assert.Equal(t, 0, reg.Len())
	}
}

// TestCancelIdempotent tests repeated and concurrent Cancel calls
func TestCancelIdempotent(t *testing.T) {
	reg := NewRegistry()
	h, err := Subscribe(context.Background(), reg, streamMethod,
		func(ctx context.Context) (grpc.ServerStreamingClient[reply], error) {
			return blockingStream[reply](ctx, nil), nil
		})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		go h.Cancel()
	}
	h.Cancel()
	h.Cancel()

	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not terminate after cancel")
	}
	assert.Equal(t, EventCancelled, h.Terminal().Kind)
}

// TestCancelWithoutConsumer tests that an unconsumed stream still terminates
func TestCancelWithoutConsumer(t *testing.T) {
	reg := NewRegistry()
	h, err := Subscribe(context.Background(), reg, streamMethod,
		func(ctx context.Context) (grpc.ServerStreamingClient[reply], error) {
			return queueStream([]*reply{{Value: "a"}, {Value: "b"}}, io.EOF), nil
		})
	require.NoError(t, err)

	// Nobody reads Events; the pump is parked on the first send.
	h.Cancel()

	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not terminate after cancel")
	}
	assert.Equal(t, EventCancelled, h.Terminal().Kind)
	assert.Equal(t, 0, reg.Len())
}

// TestEventKind tests kind classification
func TestEventKind(t *testing.T) {
	tests := []struct {
		kind     EventKind
		str      string
		terminal bool
	}{
		{EventData, "data", false},
		{EventEnd, "end", true},
		{EventError, "error", true},
		{EventCancelled, "cancelled", true},
		{EventKind(42), "unknown", true},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.kind.String())
			assert.Equal(t, tt.terminal, tt.kind.Terminal())
		})
	}
}

// TestHandleIDsUnique tests that concurrent subscriptions get distinct ids
func TestHandleIDsUnique(t *testing.T) {
	reg := NewRegistry()
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		h, err := Subscribe(context.Background(), reg, streamMethod,
			func(ctx context.Context) (grpc.ServerStreamingClient[reply], error) {
				return blockingStream[reply](ctx, nil), nil
			})
		require.NoError(t, err)
		assert.False(t, seen[h.ID()], "duplicate stream id %s", h.ID())
		seen[h.ID()] = true
	}
	assert.Equal(t, 10, reg.Len())
	reg.CancelAll()
}
