/*
Package call is the uniform invocation layer of the Burrow client.

The Burrow API has two call shapes: unary and server-streaming. This package
normalizes both into consistent, cancelable, failure-aware operations so the
service facades never handle transport concerns themselves.

# Unary calls

Invoke wraps a stub call with optional deadline handling, metrics, and error
normalization:

	resp, err := call.Invoke(ctx, proto.JobService_Run_FullMethodName, timeout,
		func(ctx context.Context) (*proto.RunJobResponse, error) {
			return stub.Run(ctx, req)
		})

A call resolves exactly once. Failures surface as *errdefs.RPCError with the
status code, message, and method name; deadline expiry as *errdefs.TimeoutError
after best-effort cancellation of the underlying call.

# Streaming calls

Subscribe turns a server-streaming call into an ordered event sequence:

	handle, err := call.Subscribe(ctx, registry, method, open)
	for ev := range handle.Events() {
		switch ev.Kind {
		case call.EventData:
			// ev.Data
		case call.EventError:
			// ev.Err, stream over
		case call.EventEnd, call.EventCancelled:
			// stream over
		}
	}

Per stream the ordering guarantee is strict: zero or more data events, then
exactly one terminal event (end, error, or cancelled), then the channel
closes. Cancel is idempotent; after it returns, no further data events are
delivered. No ordering is guaranteed across independent streams or calls.

# Stream lifecycle

Every subscription registers its handle in a Registry keyed by stream ID. The
registry supports concurrent registration and bulk cancellation; CancelAll
(and Close, at client shutdown) guarantees no active stream survives it.
*/
package call
