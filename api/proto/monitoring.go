package proto

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SystemStatus is a point-in-time summary of the daemon host.
type SystemStatus struct {
	Hostname    string    `json:"hostname"`
	Version     string    `json:"version,omitempty"`
	UptimeSecs  int64     `json:"uptime_secs"`
	CpuPercent  float64   `json:"cpu_percent"`
	MemoryUsed  uint64    `json:"memory_used"`
	MemoryTotal uint64    `json:"memory_total"`
	DiskUsed    uint64    `json:"disk_used"`
	DiskTotal   uint64    `json:"disk_total"`
	JobsRunning int32     `json:"jobs_running"`
	JobsTotal   int32     `json:"jobs_total"`
	CollectedAt time.Time `json:"collected_at"`
}

// SystemMetricsSample is one entry of the live metrics stream.
type SystemMetricsSample struct {
	CpuPercent   float64   `json:"cpu_percent"`
	MemoryUsed   uint64    `json:"memory_used"`
	DiskReadBps  uint64    `json:"disk_read_bps"`
	DiskWriteBps uint64    `json:"disk_write_bps"`
	NetworkRxBps uint64    `json:"network_rx_bps"`
	NetworkTxBps uint64    `json:"network_tx_bps"`
	Timestamp    time.Time `json:"timestamp"`
}

type GetSystemStatusRequest struct{}

type GetSystemStatusResponse struct {
	Status *SystemStatus `json:"status"`
}

type StreamSystemMetricsRequest struct {
	IntervalSeconds int32 `json:"interval_seconds,omitempty"`
}

const (
	MonitoringService_GetSystemStatus_FullMethodName     = "/burrow.MonitoringService/GetSystemStatus"
	MonitoringService_StreamSystemMetrics_FullMethodName = "/burrow.MonitoringService/StreamSystemMetrics"
)

// MonitoringServiceClient is the client API for the burrow.MonitoringService
// service.
type MonitoringServiceClient interface {
	GetSystemStatus(ctx context.Context, in *GetSystemStatusRequest, opts ...grpc.CallOption) (*GetSystemStatusResponse, error)
	StreamSystemMetrics(ctx context.Context, in *StreamSystemMetricsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[SystemMetricsSample], error)
}

type monitoringServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMonitoringServiceClient(cc grpc.ClientConnInterface) MonitoringServiceClient {
	return &monitoringServiceClient{cc}
}

func (c *monitoringServiceClient) GetSystemStatus(ctx context.Context, in *GetSystemStatusRequest, opts ...grpc.CallOption) (*GetSystemStatusResponse, error) {
	out := new(GetSystemStatusResponse)
	if err := c.cc.Invoke(ctx, MonitoringService_GetSystemStatus_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *monitoringServiceClient) StreamSystemMetrics(ctx context.Context, in *StreamSystemMetricsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[SystemMetricsSample], error) {
	stream, err := c.cc.NewStream(ctx, &MonitoringService_ServiceDesc.Streams[0], MonitoringService_StreamSystemMetrics_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[StreamSystemMetricsRequest, SystemMetricsSample]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// MonitoringServiceServer is the server API for the burrow.MonitoringService
// service.
type MonitoringServiceServer interface {
	GetSystemStatus(context.Context, *GetSystemStatusRequest) (*GetSystemStatusResponse, error)
	StreamSystemMetrics(*StreamSystemMetricsRequest, grpc.ServerStreamingServer[SystemMetricsSample]) error
}

// UnimplementedMonitoringServiceServer can be embedded for forward
// compatibility.
type UnimplementedMonitoringServiceServer struct{}

func (UnimplementedMonitoringServiceServer) GetSystemStatus(context.Context, *GetSystemStatusRequest) (*GetSystemStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSystemStatus not implemented")
}
func (UnimplementedMonitoringServiceServer) StreamSystemMetrics(*StreamSystemMetricsRequest, grpc.ServerStreamingServer[SystemMetricsSample]) error {
	return status.Errorf(codes.Unimplemented, "method StreamSystemMetrics not implemented")
}

func RegisterMonitoringServiceServer(s grpc.ServiceRegistrar, srv MonitoringServiceServer) {
	s.RegisterService(&MonitoringService_ServiceDesc, srv)
}

func _MonitoringService_GetSystemStatus_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetSystemStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MonitoringServiceServer).GetSystemStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MonitoringService_GetSystemStatus_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MonitoringServiceServer).GetSystemStatus(ctx, req.(*GetSystemStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MonitoringService_StreamSystemMetrics_Handler(srv any, stream grpc.ServerStream) error {
	m := new(StreamSystemMetricsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(MonitoringServiceServer).StreamSystemMetrics(m, &grpc.GenericServerStream[StreamSystemMetricsRequest, SystemMetricsSample]{ServerStream: stream})
}

// MonitoringService_ServiceDesc is the grpc.ServiceDesc for the
// burrow.MonitoringService service.
var MonitoringService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "burrow.MonitoringService",
	HandlerType: (*MonitoringServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetSystemStatus", Handler: _MonitoringService_GetSystemStatus_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "StreamSystemMetrics", Handler: _MonitoringService_StreamSystemMetrics_Handler, ServerStreams: true},
	},
	Metadata: "burrow/monitoring.json",
}
