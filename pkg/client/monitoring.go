package client

import (
	"context"
	"time"

	"github.com/burrowlabs/burrow/api/proto"
	"github.com/burrowlabs/burrow/pkg/call"
	"github.com/burrowlabs/burrow/pkg/errdefs"
	"google.golang.org/grpc"
)

// MonitoringClient is the facade for the burrow.MonitoringService domain.
type MonitoringClient struct {
	stub proto.MonitoringServiceClient
	c    *Client
}

// GetSystemStatus returns a point-in-time snapshot of the daemon host.
func (m *MonitoringClient) GetSystemStatus(ctx context.Context) (*proto.SystemStatus, error) {
	resp, err := call.Invoke(ctx, proto.MonitoringService_GetSystemStatus_FullMethodName, m.c.callTimeout,
		func(ctx context.Context) (*proto.GetSystemStatusResponse, error) {
			return m.stub.GetSystemStatus(ctx, &proto.GetSystemStatusRequest{})
		})
	if err != nil {
		return nil, err
	}
	return resp.Status, nil
}

// StreamSystemMetrics subscribes to live host metrics sampled at the given
// interval. A zero interval uses the daemon's default rate.
func (m *MonitoringClient) StreamSystemMetrics(ctx context.Context, interval time.Duration) (*call.Handle[proto.SystemMetricsSample], error) {
	if interval < 0 {
		return nil, &errdefs.ValidationError{Field: "interval", Reason: "must not be negative"}
	}
	return call.Subscribe(ctx, m.c.streams, proto.MonitoringService_StreamSystemMetrics_FullMethodName,
		func(ctx context.Context) (grpc.ServerStreamingClient[proto.SystemMetricsSample], error) {
			return m.stub.StreamSystemMetrics(ctx, &proto.StreamSystemMetricsRequest{
				IntervalSeconds: int32(interval / time.Second),
			})
		})
}
