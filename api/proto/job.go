package proto

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// JobStatus is the lifecycle state reported by the daemon for a job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusStopped   JobStatus = "stopped"
	JobStatusCancelled JobStatus = "cancelled"
)

// Job is the daemon's record of a single execution.
type Job struct {
	Id         string            `json:"id"`
	Command    string            `json:"command"`
	Args       []string          `json:"args,omitempty"`
	Env        map[string]string `json:"env,omitempty"`
	WorkingDir string            `json:"working_dir,omitempty"`
	Runtime    string            `json:"runtime,omitempty"`
	Status     JobStatus         `json:"status"`
	ExitCode   int32             `json:"exit_code"`
	CreatedAt  time.Time         `json:"created_at"`
	StartedAt  *time.Time        `json:"started_at,omitempty"`
	FinishedAt *time.Time        `json:"finished_at,omitempty"`
}

// LogEntry is one line of job output.
type LogEntry struct {
	JobId     string    `json:"job_id"`
	Stream    string    `json:"stream"` // stdout or stderr
	Line      string    `json:"line"`
	Timestamp time.Time `json:"timestamp"`
}

// TelemetrySample is one resource-usage measurement for a job.
type TelemetrySample struct {
	JobId       string    `json:"job_id"`
	CpuPercent  float64   `json:"cpu_percent"`
	MemoryBytes uint64    `json:"memory_bytes"`
	DiskBytes   uint64    `json:"disk_bytes"`
	Timestamp   time.Time `json:"timestamp"`
}

type RunJobRequest struct {
	Command    string            `json:"command"`
	Args       []string          `json:"args,omitempty"`
	Env        map[string]string `json:"env,omitempty"`
	WorkingDir string            `json:"working_dir,omitempty"`
	Runtime    string            `json:"runtime,omitempty"`
	Network    string            `json:"network,omitempty"`
	Volumes    []string          `json:"volumes,omitempty"`
}

type RunJobResponse struct {
	Job *Job `json:"job"`
}

type GetJobStatusRequest struct {
	JobId string `json:"job_id"`
}

type GetJobStatusResponse struct {
	Job *Job `json:"job"`
}

type StopJobRequest struct {
	JobId string `json:"job_id"`
}

type StopJobResponse struct {
	Job *Job `json:"job"`
}

type CancelJobRequest struct {
	JobId string `json:"job_id"`
}

type CancelJobResponse struct {
	Job *Job `json:"job"`
}

type DeleteJobRequest struct {
	JobId string `json:"job_id"`
}

type DeleteJobResponse struct{}

type DeleteAllJobsRequest struct{}

type DeleteAllJobsResponse struct {
	Deleted int32 `json:"deleted"`
}

type ListJobsRequest struct{}

type ListJobsResponse struct {
	Jobs []*Job `json:"jobs,omitempty"`
}

type GetJobLogsRequest struct {
	JobId  string `json:"job_id"`
	Follow bool   `json:"follow,omitempty"`
}

type StreamTelemetryRequest struct {
	JobId           string `json:"job_id"`
	IntervalSeconds int32  `json:"interval_seconds,omitempty"`
}

type GetTelemetryRequest struct {
	JobId string `json:"job_id"`
}

const (
	JobService_Run_FullMethodName             = "/burrow.JobService/Run"
	JobService_GetStatus_FullMethodName       = "/burrow.JobService/GetStatus"
	JobService_Stop_FullMethodName            = "/burrow.JobService/Stop"
	JobService_Cancel_FullMethodName          = "/burrow.JobService/Cancel"
	JobService_Delete_FullMethodName          = "/burrow.JobService/Delete"
	JobService_DeleteAll_FullMethodName       = "/burrow.JobService/DeleteAll"
	JobService_List_FullMethodName            = "/burrow.JobService/List"
	JobService_GetLogs_FullMethodName         = "/burrow.JobService/GetLogs"
	JobService_StreamTelemetry_FullMethodName = "/burrow.JobService/StreamTelemetry"
	JobService_GetTelemetry_FullMethodName    = "/burrow.JobService/GetTelemetry"
)

// JobServiceClient is the client API for the burrow.JobService service.
type JobServiceClient interface {
	Run(ctx context.Context, in *RunJobRequest, opts ...grpc.CallOption) (*RunJobResponse, error)
	GetStatus(ctx context.Context, in *GetJobStatusRequest, opts ...grpc.CallOption) (*GetJobStatusResponse, error)
	Stop(ctx context.Context, in *StopJobRequest, opts ...grpc.CallOption) (*StopJobResponse, error)
	Cancel(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error)
	Delete(ctx context.Context, in *DeleteJobRequest, opts ...grpc.CallOption) (*DeleteJobResponse, error)
	DeleteAll(ctx context.Context, in *DeleteAllJobsRequest, opts ...grpc.CallOption) (*DeleteAllJobsResponse, error)
	List(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error)
	GetLogs(ctx context.Context, in *GetJobLogsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[LogEntry], error)
	StreamTelemetry(ctx context.Context, in *StreamTelemetryRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[TelemetrySample], error)
	GetTelemetry(ctx context.Context, in *GetTelemetryRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[TelemetrySample], error)
}

type jobServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewJobServiceClient(cc grpc.ClientConnInterface) JobServiceClient {
	return &jobServiceClient{cc}
}

func (c *jobServiceClient) Run(ctx context.Context, in *RunJobRequest, opts ...grpc.CallOption) (*RunJobResponse, error) {
	out := new(RunJobResponse)
	if err := c.cc.Invoke(ctx, JobService_Run_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobServiceClient) GetStatus(ctx context.Context, in *GetJobStatusRequest, opts ...grpc.CallOption) (*GetJobStatusResponse, error) {
	out := new(GetJobStatusResponse)
	if err := c.cc.Invoke(ctx, JobService_GetStatus_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobServiceClient) Stop(ctx context.Context, in *StopJobRequest, opts ...grpc.CallOption) (*StopJobResponse, error) {
	out := new(StopJobResponse)
	if err := c.cc.Invoke(ctx, JobService_Stop_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobServiceClient) Cancel(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error) {
	out := new(CancelJobResponse)
	if err := c.cc.Invoke(ctx, JobService_Cancel_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobServiceClient) Delete(ctx context.Context, in *DeleteJobRequest, opts ...grpc.CallOption) (*DeleteJobResponse, error) {
	out := new(DeleteJobResponse)
	if err := c.cc.Invoke(ctx, JobService_Delete_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobServiceClient) DeleteAll(ctx context.Context, in *DeleteAllJobsRequest, opts ...grpc.CallOption) (*DeleteAllJobsResponse, error) {
	out := new(DeleteAllJobsResponse)
	if err := c.cc.Invoke(ctx, JobService_DeleteAll_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobServiceClient) List(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error) {
	out := new(ListJobsResponse)
	if err := c.cc.Invoke(ctx, JobService_List_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobServiceClient) GetLogs(ctx context.Context, in *GetJobLogsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[LogEntry], error) {
	stream, err := c.cc.NewStream(ctx, &JobService_ServiceDesc.Streams[0], JobService_GetLogs_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[GetJobLogsRequest, LogEntry]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *jobServiceClient) StreamTelemetry(ctx context.Context, in *StreamTelemetryRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[TelemetrySample], error) {
	stream, err := c.cc.NewStream(ctx, &JobService_ServiceDesc.Streams[1], JobService_StreamTelemetry_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[StreamTelemetryRequest, TelemetrySample]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *jobServiceClient) GetTelemetry(ctx context.Context, in *GetTelemetryRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[TelemetrySample], error) {
	stream, err := c.cc.NewStream(ctx, &JobService_ServiceDesc.Streams[2], JobService_GetTelemetry_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[GetTelemetryRequest, TelemetrySample]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// JobServiceServer is the server API for the burrow.JobService service.
type JobServiceServer interface {
	Run(context.Context, *RunJobRequest) (*RunJobResponse, error)
	GetStatus(context.Context, *GetJobStatusRequest) (*GetJobStatusResponse, error)
	Stop(context.Context, *StopJobRequest) (*StopJobResponse, error)
	Cancel(context.Context, *CancelJobRequest) (*CancelJobResponse, error)
	Delete(context.Context, *DeleteJobRequest) (*DeleteJobResponse, error)
	DeleteAll(context.Context, *DeleteAllJobsRequest) (*DeleteAllJobsResponse, error)
	List(context.Context, *ListJobsRequest) (*ListJobsResponse, error)
	GetLogs(*GetJobLogsRequest, grpc.ServerStreamingServer[LogEntry]) error
	StreamTelemetry(*StreamTelemetryRequest, grpc.ServerStreamingServer[TelemetrySample]) error
	GetTelemetry(*GetTelemetryRequest, grpc.ServerStreamingServer[TelemetrySample]) error
}

// UnimplementedJobServiceServer can be embedded for forward compatibility.
type UnimplementedJobServiceServer struct{}

func (UnimplementedJobServiceServer) Run(context.Context, *RunJobRequest) (*RunJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Run not implemented")
}
func (UnimplementedJobServiceServer) GetStatus(context.Context, *GetJobStatusRequest) (*GetJobStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStatus not implemented")
}
func (UnimplementedJobServiceServer) Stop(context.Context, *StopJobRequest) (*StopJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Stop not implemented")
}
func (UnimplementedJobServiceServer) Cancel(context.Context, *CancelJobRequest) (*CancelJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Cancel not implemented")
}
func (UnimplementedJobServiceServer) Delete(context.Context, *DeleteJobRequest) (*DeleteJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Delete not implemented")
}
func (UnimplementedJobServiceServer) DeleteAll(context.Context, *DeleteAllJobsRequest) (*DeleteAllJobsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteAll not implemented")
}
func (UnimplementedJobServiceServer) List(context.Context, *ListJobsRequest) (*ListJobsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedJobServiceServer) GetLogs(*GetJobLogsRequest, grpc.ServerStreamingServer[LogEntry]) error {
	return status.Errorf(codes.Unimplemented, "method GetLogs not implemented")
}
func (UnimplementedJobServiceServer) StreamTelemetry(*StreamTelemetryRequest, grpc.ServerStreamingServer[TelemetrySample]) error {
	return status.Errorf(codes.Unimplemented, "method StreamTelemetry not implemented")
}
func (UnimplementedJobServiceServer) GetTelemetry(*GetTelemetryRequest, grpc.ServerStreamingServer[TelemetrySample]) error {
	return status.Errorf(codes.Unimplemented, "method GetTelemetry not implemented")
}

func RegisterJobServiceServer(s grpc.ServiceRegistrar, srv JobServiceServer) {
	s.RegisterService(&JobService_ServiceDesc, srv)
}

func _JobService_Run_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RunJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobServiceServer).Run(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: JobService_Run_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JobServiceServer).Run(ctx, req.(*RunJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobService_GetStatus_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetJobStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobServiceServer).GetStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: JobService_GetStatus_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JobServiceServer).GetStatus(ctx, req.(*GetJobStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobService_Stop_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StopJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobServiceServer).Stop(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: JobService_Stop_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JobServiceServer).Stop(ctx, req.(*StopJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobService_Cancel_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CancelJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobServiceServer).Cancel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: JobService_Cancel_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JobServiceServer).Cancel(ctx, req.(*CancelJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobService_Delete_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobServiceServer).Delete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: JobService_Delete_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JobServiceServer).Delete(ctx, req.(*DeleteJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobService_DeleteAll_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteAllJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobServiceServer).DeleteAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: JobService_DeleteAll_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JobServiceServer).DeleteAll(ctx, req.(*DeleteAllJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobService_List_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobServiceServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: JobService_List_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JobServiceServer).List(ctx, req.(*ListJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobService_GetLogs_Handler(srv any, stream grpc.ServerStream) error {
	m := new(GetJobLogsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(JobServiceServer).GetLogs(m, &grpc.GenericServerStream[GetJobLogsRequest, LogEntry]{ServerStream: stream})
}

func _JobService_StreamTelemetry_Handler(srv any, stream grpc.ServerStream) error {
	m := new(StreamTelemetryRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(JobServiceServer).StreamTelemetry(m, &grpc.GenericServerStream[StreamTelemetryRequest, TelemetrySample]{ServerStream: stream})
}

func _JobService_GetTelemetry_Handler(srv any, stream grpc.ServerStream) error {
	m := new(GetTelemetryRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(JobServiceServer).GetTelemetry(m, &grpc.GenericServerStream[GetTelemetryRequest, TelemetrySample]{ServerStream: stream})
}

// JobService_ServiceDesc is the grpc.ServiceDesc for the burrow.JobService
// service. Stream indices are referenced by the client stubs above.
var JobService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "burrow.JobService",
	HandlerType: (*JobServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Run", Handler: _JobService_Run_Handler},
		{MethodName: "GetStatus", Handler: _JobService_GetStatus_Handler},
		{MethodName: "Stop", Handler: _JobService_Stop_Handler},
		{MethodName: "Cancel", Handler: _JobService_Cancel_Handler},
		{MethodName: "Delete", Handler: _JobService_Delete_Handler},
		{MethodName: "DeleteAll", Handler: _JobService_DeleteAll_Handler},
		{MethodName: "List", Handler: _JobService_List_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "GetLogs", Handler: _JobService_GetLogs_Handler, ServerStreams: true},
		{StreamName: "StreamTelemetry", Handler: _JobService_StreamTelemetry_Handler, ServerStreams: true},
		{StreamName: "GetTelemetry", Handler: _JobService_GetTelemetry_Handler, ServerStreams: true},
	},
	Metadata: "burrow/job.json",
}
