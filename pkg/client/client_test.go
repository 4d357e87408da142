package client

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/burrowlabs/burrow/api/proto"
	"github.com/burrowlabs/burrow/pkg/call"
	"github.com/burrowlabs/burrow/pkg/config"
	"github.com/burrowlabs/burrow/pkg/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// fakeDaemon holds the observable state of the in-process Burrow daemon. The
// five services are separate types because their method names collide.
type fakeDaemon struct {
	unaryCalls atomic.Int32
	jobSeq     atomic.Int32

	runDelay time.Duration // makes Run overrun a client deadline
}

type fakeJobServer struct {
	proto.UnimplementedJobServiceServer
	*fakeDaemon
}

type fakeNetworkServer struct {
	proto.UnimplementedNetworkServiceServer
	*fakeDaemon
}

type fakeMonitoringServer struct {
	proto.UnimplementedMonitoringServiceServer
	*fakeDaemon
}

type fakeRuntimeServer struct {
	proto.UnimplementedRuntimeServiceServer
	*fakeDaemon
}

func (d *fakeJobServer) Run(ctx context.Context, req *proto.RunJobRequest) (*proto.RunJobResponse, error) {
	d.unaryCalls.Add(1)
	if d.runDelay > 0 {
		select {
		case <-time.After(d.runDelay):
		case <-ctx.Done():
			return nil, status.FromContextError(ctx.Err()).Err()
		}
	}
	job := &proto.Job{
		Id:        fmt.Sprintf("job-%d", d.jobSeq.Add(1)),
		Command:   req.Command,
		Args:      req.Args,
		Status:    proto.JobStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	return &proto.RunJobResponse{Job: job}, nil
}

func (d *fakeJobServer) GetStatus(ctx context.Context, req *proto.GetJobStatusRequest) (*proto.GetJobStatusResponse, error) {
	d.unaryCalls.Add(1)
	return nil, status.Errorf(codes.NotFound, "job %s not found", req.JobId)
}

func (d *fakeJobServer) GetLogs(req *proto.GetJobLogsRequest, stream grpc.ServerStreamingServer[proto.LogEntry]) error {
	for i := 0; i < 3; i++ {
		entry := &proto.LogEntry{
			JobId:     req.JobId,
			Stream:    "stdout",
			Line:      fmt.Sprintf("line %d", i),
			Timestamp: time.Now().UTC(),
		}
		if err := stream.Send(entry); err != nil {
			return err
		}
	}
	if req.Follow {
		// Held open until the client goes away.
		<-stream.Context().Done()
	}
	return nil
}

func (d *fakeNetworkServer) Create(ctx context.Context, req *proto.CreateNetworkRequest) (*proto.CreateNetworkResponse, error) {
	d.unaryCalls.Add(1)
	return &proto.CreateNetworkResponse{Network: &proto.Network{
		Id:        "net-1",
		Name:      req.Name,
		Driver:    req.Driver,
		Subnet:    req.Subnet,
		CreatedAt: time.Now().UTC(),
	}}, nil
}

func (d *fakeMonitoringServer) GetSystemStatus(ctx context.Context, req *proto.GetSystemStatusRequest) (*proto.GetSystemStatusResponse, error) {
	d.unaryCalls.Add(1)
	return &proto.GetSystemStatusResponse{Status: &proto.SystemStatus{
		Hostname:    "burrow-host",
		JobsRunning: 2,
		JobsTotal:   7,
		CollectedAt: time.Now().UTC(),
	}}, nil
}

func (d *fakeRuntimeServer) ValidateSpec(ctx context.Context, req *proto.ValidateRuntimeSpecRequest) (*proto.ValidateRuntimeSpecResponse, error) {
	d.unaryCalls.Add(1)
	if len(req.Spec.Entrypoint) == 0 {
		return &proto.ValidateRuntimeSpecResponse{Valid: false, Errors: []string{"entrypoint is required"}}, nil
	}
	return &proto.ValidateRuntimeSpecResponse{Valid: true}, nil
}

func (d *fakeRuntimeServer) StreamingInstallFromGithub(req *proto.InstallRuntimeFromGithubRequest, stream grpc.ServerStreamingServer[proto.InstallEvent]) error {
	err := stream.Send(&proto.InstallEvent{Phase: "fetch", Message: "cloning " + req.Repository, Progress: 0.1})
	if err != nil {
		return err
	}
	// Installs are slow; the stream outlives any reasonable test unless the
	// client cancels.
	<-stream.Context().Done()
	return status.FromContextError(stream.Context().Err()).Err()
}

// newTestClient starts a fakeDaemon over bufconn and connects a client to it.
func newTestClient(t *testing.T, daemon *fakeDaemon, opts ...Option) *Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	proto.RegisterJobServiceServer(srv, &fakeJobServer{fakeDaemon: daemon})
	proto.RegisterNetworkServiceServer(srv, &fakeNetworkServer{fakeDaemon: daemon})
	proto.RegisterVolumeServiceServer(srv, proto.UnimplementedVolumeServiceServer{})
	proto.RegisterMonitoringServiceServer(srv, &fakeMonitoringServer{fakeDaemon: daemon})
	proto.RegisterRuntimeServiceServer(srv, &fakeRuntimeServer{fakeDaemon: daemon})

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	opts = append(opts, WithDialOptions(grpc.WithContextDialer(
		func(ctx context.Context, addr string) (net.Conn, error) {
			return lis.DialContext(ctx)
		})))

	c, err := NewWithEndpoint(config.Endpoint{
		Name:    "test",
		Address: "localhost:0",
		TLSMode: config.TLSModeInsecure,
	}, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// TestRunJob tests job submission end to end
func TestRunJob(t *testing.T) {
	daemon := &fakeDaemon{}
	c := newTestClient(t, daemon)

	job, err := c.Job().Run(context.Background(), &proto.RunJobRequest{Command: "make test", Args: []string{"-v"}})
	require.NoError(t, err)
	assert.NotEmpty(t, job.Id)
	assert.Equal(t, "make test", job.Command)
	assert.Equal(t, proto.JobStatusPending, job.Status)
}

// TestGetLogsSequence tests the log stream event sequence end to end
func TestGetLogsSequence(t *testing.T) {
	daemon := &fakeDaemon{}
	c := newTestClient(t, daemon)

	handle, err := c.Job().GetLogs(context.Background(), "job-1", false)
	require.NoError(t, err)

	var lines []string
	var terminal call.EventKind
	for ev := range handle.Events() {
		switch ev.Kind {
		case call.EventData:
			assert.Equal(t, "job-1", ev.Data.JobId)
			lines = append(lines, ev.Data.Line)
		default:
			terminal = ev.Kind
		}
	}
	assert.Equal(t, []string{"line 0", "line 1", "line 2"}, lines)
	assert.Equal(t, call.EventEnd, terminal)

	<-handle.Done()
	assert.Empty(t, c.ActiveStreams())
}

// TestStreamingInstallCancel tests cancelling a long streaming install
func TestStreamingInstallCancel(t *testing.T) {
	daemon := &fakeDaemon{}
	c := newTestClient(t, daemon)

	handle, err := c.Runtime().StreamingInstallFromGithub(context.Background(), "burrowlabs/python-runtime", "")
	require.NoError(t, err)
	assert.Len(t, c.ActiveStreams(), 1)

	first := <-handle.Events()
	require.Equal(t, call.EventData, first.Kind)
	assert.Equal(t, "fetch", first.Data.Phase)

	handle.Cancel()
	handle.Cancel() // idempotent

	for ev := range handle.Events() {
		assert.NotEqual(t, call.EventData, ev.Kind, "no data after cancel")
	}

	<-handle.Done()
	assert.Equal(t, call.EventCancelled, handle.Terminal().Kind)
	assert.NoError(t, handle.Err())
	assert.Empty(t, c.ActiveStreams())
}

// TestErrorNormalization tests that remote failures carry code, message, and method
func TestErrorNormalization(t *testing.T) {
	daemon := &fakeDaemon{}
	c := newTestClient(t, daemon)

	_, err := c.Job().GetStatus(context.Background(), "ghost")
	require.Error(t, err)

	var rpcErr *errdefs.RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, codes.NotFound, rpcErr.Code)
	assert.Contains(t, rpcErr.Message, "ghost")
	assert.Equal(t, proto.JobService_GetStatus_FullMethodName, rpcErr.Method)
	assert.Equal(t, codes.NotFound, errdefs.Code(err))
}

// TestValidationFailFast tests that invalid input never reaches the daemon
func TestValidationFailFast(t *testing.T) {
	daemon := &fakeDaemon{}
	c := newTestClient(t, daemon)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"run without command", func() error {
			_, err := c.Job().Run(ctx, &proto.RunJobRequest{})
			return err
		}},
		{"run with nil request", func() error {
			_, err := c.Job().Run(ctx, nil)
			return err
		}},
		{"status with blank id", func() error {
			_, err := c.Job().GetStatus(ctx, "   ")
			return err
		}},
		{"logs without id", func() error {
			_, err := c.Job().GetLogs(ctx, "", false)
			return err
		}},
		{"network create without name", func() error {
			_, err := c.Network().Create(ctx, "", "", "")
			return err
		}},
		{"volume remove without name", func() error {
			return c.Volume().Remove(ctx, "")
		}},
		{"telemetry with negative interval", func() error {
			_, err := c.Job().StreamTelemetry(ctx, "job-1", -time.Second)
			return err
		}},
		{"install with bare repository", func() error {
			_, err := c.Runtime().InstallFromGithub(ctx, "norepo", "")
			return err
		}},
		{"install with empty owner", func() error {
			_, err := c.Runtime().StreamingInstallFromGithub(ctx, "/repo", "")
			return err
		}},
		{"validate nil spec", func() error {
			_, err := c.Runtime().ValidateSpec(ctx, nil)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, errdefs.IsValidation(err), "expected a ValidationError, got %T", err)
		})
	}
	assert.Equal(t, int32(0), daemon.unaryCalls.Load(), "validation failures must not reach the daemon")
	assert.Empty(t, c.ActiveStreams())
}

// TestCallTimeout tests the per-call deadline option
func TestCallTimeout(t *testing.T) {
	daemon := &fakeDaemon{runDelay: 5 * time.Second}
	c := newTestClient(t, daemon, WithCallTimeout(50*time.Millisecond))

	_, err := c.Job().Run(context.Background(), &proto.RunJobRequest{Command: "sleep"})
	require.Error(t, err)
	assert.True(t, errdefs.IsTimeout(err), "expected a TimeoutError, got %v", err)
}

// TestCloseCancelsStreams tests that Close tears down every active stream
func TestCloseCancelsStreams(t *testing.T) {
	daemon := &fakeDaemon{}
	c := newTestClient(t, daemon)

	handle, err := c.Job().GetLogs(context.Background(), "job-1", true)
	require.NoError(t, err)

	// Drain the three buffered lines; the daemon then holds the stream open.
	for i := 0; i < 3; i++ {
		ev := <-handle.Events()
		require.Equal(t, call.EventData, ev.Kind)
	}

	require.NoError(t, c.Close())

	select {
	case <-handle.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("stream survived client Close")
	}
	assert.Equal(t, call.EventCancelled, handle.Terminal().Kind)
	assert.Empty(t, c.ActiveStreams())
}

// TestFacadeRoundTrips tests the remaining unary facades over one channel
func TestFacadeRoundTrips(t *testing.T) {
	daemon := &fakeDaemon{}
	c := newTestClient(t, daemon)
	ctx := context.Background()

	nw, err := c.Network().Create(ctx, "jobs-net", "bridge", "10.10.0.0/16")
	require.NoError(t, err)
	assert.Equal(t, "jobs-net", nw.Name)
	assert.Equal(t, "bridge", nw.Driver)

	st, err := c.Monitoring().GetSystemStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "burrow-host", st.Hostname)
	assert.Equal(t, int32(2), st.JobsRunning)

	verdict, err := c.Runtime().ValidateSpec(ctx, &proto.RuntimeSpec{Name: "python"})
	require.NoError(t, err)
	assert.False(t, verdict.Valid)
	assert.Contains(t, verdict.Errors, "entrypoint is required")

	verdict, err = c.Runtime().ValidateSpec(ctx, &proto.RuntimeSpec{Name: "python", Entrypoint: []string{"python3"}})
	require.NoError(t, err)
	assert.True(t, verdict.Valid)
}

// TestNewResolvesEnvironment tests construction through the resolver
func TestNewResolvesEnvironment(t *testing.T) {
	resolver := config.NewResolver(map[string]config.Endpoint{
		"local": {Address: "127.0.0.1:1", TLSMode: config.TLSModeInsecure},
	})

	c, err := New("local", WithResolver(resolver))
	require.NoError(t, err)
	assert.Equal(t, "local", c.Endpoint().Name)
	assert.NoError(t, c.Close())

	_, err = New("staging", WithResolver(resolver))
	require.Error(t, err)
	assert.True(t, errdefs.IsConfig(err))
}
