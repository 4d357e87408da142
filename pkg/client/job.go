package client

import (
	"context"
	"strings"
	"time"

	"github.com/burrowlabs/burrow/api/proto"
	"github.com/burrowlabs/burrow/pkg/call"
	"github.com/burrowlabs/burrow/pkg/errdefs"
	"google.golang.org/grpc"
)

// JobClient is the facade for the burrow.JobService domain.
type JobClient struct {
	stub proto.JobServiceClient
	c    *Client
}

// Run submits a job for execution and returns its record, including the
// assigned job id. Run is not idempotent and is never retried by the client.
func (j *JobClient) Run(ctx context.Context, req *proto.RunJobRequest) (*proto.Job, error) {
	if req == nil || strings.TrimSpace(req.Command) == "" {
		return nil, &errdefs.ValidationError{Field: "command", Reason: "must not be empty"}
	}
	resp, err := call.Invoke(ctx, proto.JobService_Run_FullMethodName, j.c.callTimeout,
		func(ctx context.Context) (*proto.RunJobResponse, error) {
			return j.stub.Run(ctx, req)
		})
	if err != nil {
		return nil, err
	}
	return resp.Job, nil
}

// GetStatus returns the current record of a job.
func (j *JobClient) GetStatus(ctx context.Context, jobID string) (*proto.Job, error) {
	if err := requireID("job_id", jobID); err != nil {
		return nil, err
	}
	resp, err := call.Invoke(ctx, proto.JobService_GetStatus_FullMethodName, j.c.callTimeout,
		func(ctx context.Context) (*proto.GetJobStatusResponse, error) {
			return j.stub.GetStatus(ctx, &proto.GetJobStatusRequest{JobId: jobID})
		})
	if err != nil {
		return nil, err
	}
	return resp.Job, nil
}

// Stop asks the daemon to stop a running job gracefully.
func (j *JobClient) Stop(ctx context.Context, jobID string) (*proto.Job, error) {
	if err := requireID("job_id", jobID); err != nil {
		return nil, err
	}
	resp, err := call.Invoke(ctx, proto.JobService_Stop_FullMethodName, j.c.callTimeout,
		func(ctx context.Context) (*proto.StopJobResponse, error) {
			return j.stub.Stop(ctx, &proto.StopJobRequest{JobId: jobID})
		})
	if err != nil {
		return nil, err
	}
	return resp.Job, nil
}

// Cancel aborts a job immediately.
func (j *JobClient) Cancel(ctx context.Context, jobID string) (*proto.Job, error) {
	if err := requireID("job_id", jobID); err != nil {
		return nil, err
	}
	resp, err := call.Invoke(ctx, proto.JobService_Cancel_FullMethodName, j.c.callTimeout,
		func(ctx context.Context) (*proto.CancelJobResponse, error) {
			return j.stub.Cancel(ctx, &proto.CancelJobRequest{JobId: jobID})
		})
	if err != nil {
		return nil, err
	}
	return resp.Job, nil
}

// Delete removes a finished job and its records.
func (j *JobClient) Delete(ctx context.Context, jobID string) error {
	if err := requireID("job_id", jobID); err != nil {
		return err
	}
	_, err := call.Invoke(ctx, proto.JobService_Delete_FullMethodName, j.c.callTimeout,
		func(ctx context.Context) (*proto.DeleteJobResponse, error) {
			return j.stub.Delete(ctx, &proto.DeleteJobRequest{JobId: jobID})
		})
	return err
}

// DeleteAll removes all finished jobs and returns how many were deleted.
func (j *JobClient) DeleteAll(ctx context.Context) (int32, error) {
	resp, err := call.Invoke(ctx, proto.JobService_DeleteAll_FullMethodName, j.c.callTimeout,
		func(ctx context.Context) (*proto.DeleteAllJobsResponse, error) {
			return j.stub.DeleteAll(ctx, &proto.DeleteAllJobsRequest{})
		})
	if err != nil {
		return 0, err
	}
	return resp.Deleted, nil
}

// List returns all jobs known to the daemon.
func (j *JobClient) List(ctx context.Context) ([]*proto.Job, error) {
	resp, err := call.Invoke(ctx, proto.JobService_List_FullMethodName, j.c.callTimeout,
		func(ctx context.Context) (*proto.ListJobsResponse, error) {
			return j.stub.List(ctx, &proto.ListJobsRequest{})
		})
	if err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}

// GetLogs subscribes to a job's output. With follow the stream stays open
// until the job finishes or the handle is cancelled.
func (j *JobClient) GetLogs(ctx context.Context, jobID string, follow bool) (*call.Handle[proto.LogEntry], error) {
	if err := requireID("job_id", jobID); err != nil {
		return nil, err
	}
	return call.Subscribe(ctx, j.c.streams, proto.JobService_GetLogs_FullMethodName,
		func(ctx context.Context) (grpc.ServerStreamingClient[proto.LogEntry], error) {
			return j.stub.GetLogs(ctx, &proto.GetJobLogsRequest{JobId: jobID, Follow: follow})
		})
}

// StreamTelemetry subscribes to live resource-usage samples for a job.
func (j *JobClient) StreamTelemetry(ctx context.Context, jobID string, interval time.Duration) (*call.Handle[proto.TelemetrySample], error) {
	if err := requireID("job_id", jobID); err != nil {
		return nil, err
	}
	if interval < 0 {
		return nil, &errdefs.ValidationError{Field: "interval", Reason: "must not be negative"}
	}
	return call.Subscribe(ctx, j.c.streams, proto.JobService_StreamTelemetry_FullMethodName,
		func(ctx context.Context) (grpc.ServerStreamingClient[proto.TelemetrySample], error) {
			return j.stub.StreamTelemetry(ctx, &proto.StreamTelemetryRequest{
				JobId:           jobID,
				IntervalSeconds: int32(interval / time.Second),
			})
		})
}

// GetTelemetry streams the recorded telemetry history of a job and ends.
func (j *JobClient) GetTelemetry(ctx context.Context, jobID string) (*call.Handle[proto.TelemetrySample], error) {
	if err := requireID("job_id", jobID); err != nil {
		return nil, err
	}
	return call.Subscribe(ctx, j.c.streams, proto.JobService_GetTelemetry_FullMethodName,
		func(ctx context.Context) (grpc.ServerStreamingClient[proto.TelemetrySample], error) {
			return j.stub.GetTelemetry(ctx, &proto.GetTelemetryRequest{JobId: jobID})
		})
}
