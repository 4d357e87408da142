package call

import (
	"context"
	"errors"
	"time"

	"github.com/burrowlabs/burrow/pkg/errdefs"
	"github.com/burrowlabs/burrow/pkg/metrics"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Invoke runs a unary call and normalizes its outcome. A positive timeout
// bounds the call with a deadline; zero leaves the caller's context in charge.
// The result resolves exactly once: a response or an error, never both. On
// deadline expiry the underlying call is cancelled and a TimeoutError is
// returned; every other failure surfaces as an RPCError carrying the status
// code, message, and method name.
func Invoke[T any](ctx context.Context, method string, timeout time.Duration, do func(context.Context) (*T, error)) (*T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	timer := metrics.NewTimer()
	resp, err := do(ctx)
	timer.ObserveDuration(metrics.CallDuration.WithLabelValues(method))

	if err != nil {
		nerr := normalize(method, timeout, err)
		metrics.CallsTotal.WithLabelValues(method, errdefs.Code(nerr).String()).Inc()
		return nil, nerr
	}

	metrics.CallsTotal.WithLabelValues(method, codes.OK.String()).Inc()
	return resp, nil
}

// normalize translates a transport or remote failure into the client error
// taxonomy. Unary and streaming calls share it so both surface the identical
// {code, message, method} shape.
func normalize(method string, timeout time.Duration, err error) error {
	s, ok := status.FromError(err)
	switch {
	case errors.Is(err, context.DeadlineExceeded) || (ok && s.Code() == codes.DeadlineExceeded):
		return &errdefs.TimeoutError{Method: method, Timeout: timeout}
	case ok:
		return &errdefs.RPCError{Code: s.Code(), Message: s.Message(), Method: method}
	default:
		return &errdefs.RPCError{Code: codes.Unknown, Message: err.Error(), Method: method}
	}
}
