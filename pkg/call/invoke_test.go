package call

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/burrowlabs/burrow/pkg/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const testMethod = "/burrow.JobService/Run"

type reply struct {
	Value string
}

// TestInvokeSuccess tests that a successful call returns the response once
func TestInvokeSuccess(t *testing.T) {
	calls := 0
	resp, err := Invoke(context.Background(), testMethod, 0,
		func(ctx context.Context) (*reply, error) {
			calls++
			return &reply{Value: "ok"}, nil
		})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "ok", resp.Value)
	assert.Equal(t, 1, calls, "the call must run exactly once")
}

// TestInvokeNormalization tests failure translation into the error taxonomy
func TestInvokeNormalization(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "status error keeps code and message",
			err:      status.Error(codes.NotFound, "no such job"),
			wantCode: codes.NotFound,
			wantMsg:  "no such job",
		},
		{
			name:     "permission denied",
			err:      status.Error(codes.PermissionDenied, "not allowed"),
			wantCode: codes.PermissionDenied,
			wantMsg:  "not allowed",
		},
		{
			name:     "plain error becomes unknown",
			err:      errors.New("connection refused"),
			wantCode: codes.Unknown,
			wantMsg:  "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Invoke(context.Background(), testMethod, 0,
				func(ctx context.Context) (*reply, error) {
					return nil, tt.err
				})

			require.Error(t, err)
			assert.Nil(t, resp)

			var rpcErr *errdefs.RPCError
			require.ErrorAs(t, err, &rpcErr)
			assert.Equal(t, tt.wantCode, rpcErr.Code)
			assert.Equal(t, tt.wantMsg, rpcErr.Message)
			assert.Equal(t, testMethod, rpcErr.Method)
		})
	}
}

// TestInvokeTimeout tests that deadline expiry surfaces as a TimeoutError
func TestInvokeTimeout(t *testing.T) {
	timeout := 20 * time.Millisecond
	start := time.Now()

	resp, err := Invoke(context.Background(), testMethod, timeout,
		func(ctx context.Context) (*reply, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errdefs.IsTimeout(err), "expected a TimeoutError, got %T", err)
	assert.GreaterOrEqual(t, time.Since(start), timeout)

	var terr *errdefs.TimeoutError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, testMethod, terr.Method)
	assert.Equal(t, timeout, terr.Timeout)
}

// TestInvokeDeadlineStatus tests that a remote DEADLINE_EXCEEDED also maps to TimeoutError
func TestInvokeDeadlineStatus(t *testing.T) {
	_, err := Invoke(context.Background(), testMethod, time.Second,
		func(ctx context.Context) (*reply, error) {
			return nil, status.Error(codes.DeadlineExceeded, "context deadline exceeded")
		})

	require.Error(t, err)
	assert.True(t, errdefs.IsTimeout(err))
}

// TestInvokeZeroTimeoutKeepsCallerDeadline tests that zero timeout leaves the context alone
func TestInvokeZeroTimeoutKeepsCallerDeadline(t *testing.T) {
	resp, err := Invoke(context.Background(), testMethod, 0,
		func(ctx context.Context) (*reply, error) {
			_, hasDeadline := ctx.Deadline()
			assert.False(t, hasDeadline, "zero timeout must not attach a deadline")
			return &reply{}, nil
		})
	require.NoError(t, err)
	require.NotNil(t, resp)
}

// TestInvokeCallerCancellation tests that a cancelled caller context surfaces as an error
func TestInvokeCallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Invoke(ctx, testMethod, 0,
		func(ctx context.Context) (*reply, error) {
			return nil, status.FromContextError(ctx.Err()).Err()
		})

	require.Error(t, err)
	var rpcErr *errdefs.RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, codes.Canceled, rpcErr.Code)
}
