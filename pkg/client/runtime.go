package client

import (
	"context"
	"strings"

	"github.com/burrowlabs/burrow/api/proto"
	"github.com/burrowlabs/burrow/pkg/call"
	"github.com/burrowlabs/burrow/pkg/errdefs"
	"google.golang.org/grpc"
)

// RuntimeClient is the facade for the burrow.RuntimeService domain.
type RuntimeClient struct {
	stub proto.RuntimeServiceClient
	c    *Client
}

// List returns all installed runtimes.
func (r *RuntimeClient) List(ctx context.Context) ([]*proto.RuntimeInfo, error) {
	resp, err := call.Invoke(ctx, proto.RuntimeService_List_FullMethodName, r.c.callTimeout,
		func(ctx context.Context) (*proto.ListRuntimesResponse, error) {
			return r.stub.List(ctx, &proto.ListRuntimesRequest{})
		})
	if err != nil {
		return nil, err
	}
	return resp.Runtimes, nil
}

// GetInfo returns details about one installed runtime.
func (r *RuntimeClient) GetInfo(ctx context.Context, name string) (*proto.RuntimeInfo, error) {
	if err := requireID("name", name); err != nil {
		return nil, err
	}
	resp, err := call.Invoke(ctx, proto.RuntimeService_GetInfo_FullMethodName, r.c.callTimeout,
		func(ctx context.Context) (*proto.GetRuntimeInfoResponse, error) {
			return r.stub.GetInfo(ctx, &proto.GetRuntimeInfoRequest{Name: name})
		})
	if err != nil {
		return nil, err
	}
	return resp.Runtime, nil
}

// Test runs a runtime's self-test and returns its verdict and output.
func (r *RuntimeClient) Test(ctx context.Context, name string) (*proto.TestRuntimeResponse, error) {
	if err := requireID("name", name); err != nil {
		return nil, err
	}
	return call.Invoke(ctx, proto.RuntimeService_Test_FullMethodName, r.c.callTimeout,
		func(ctx context.Context) (*proto.TestRuntimeResponse, error) {
			return r.stub.Test(ctx, &proto.TestRuntimeRequest{Name: name})
		})
}

// InstallFromGithub installs a runtime from an owner/repo GitHub repository,
// blocking until the install finishes. Ref is an optional tag, branch, or
// commit.
func (r *RuntimeClient) InstallFromGithub(ctx context.Context, repository, ref string) (*proto.RuntimeInfo, error) {
	if err := validRepository(repository); err != nil {
		return nil, err
	}
	resp, err := call.Invoke(ctx, proto.RuntimeService_InstallFromGithub_FullMethodName, r.c.callTimeout,
		func(ctx context.Context) (*proto.InstallRuntimeResponse, error) {
			return r.stub.InstallFromGithub(ctx, &proto.InstallRuntimeFromGithubRequest{Repository: repository, Ref: ref})
		})
	if err != nil {
		return nil, err
	}
	return resp.Runtime, nil
}

// InstallFromLocal installs a runtime from a path on the daemon host,
// blocking until the install finishes.
func (r *RuntimeClient) InstallFromLocal(ctx context.Context, path string) (*proto.RuntimeInfo, error) {
	if err := requireID("path", path); err != nil {
		return nil, err
	}
	resp, err := call.Invoke(ctx, proto.RuntimeService_InstallFromLocal_FullMethodName, r.c.callTimeout,
		func(ctx context.Context) (*proto.InstallRuntimeResponse, error) {
			return r.stub.InstallFromLocal(ctx, &proto.InstallRuntimeFromLocalRequest{Path: path})
		})
	if err != nil {
		return nil, err
	}
	return resp.Runtime, nil
}

// ValidateSpec asks the daemon to validate a runtime spec without installing
// it. A well-formed request with an invalid spec succeeds and reports the
// problems in the response.
func (r *RuntimeClient) ValidateSpec(ctx context.Context, spec *proto.RuntimeSpec) (*proto.ValidateRuntimeSpecResponse, error) {
	if spec == nil {
		return nil, &errdefs.ValidationError{Field: "spec", Reason: "must not be nil"}
	}
	if err := requireID("spec.name", spec.Name); err != nil {
		return nil, err
	}
	return call.Invoke(ctx, proto.RuntimeService_ValidateSpec_FullMethodName, r.c.callTimeout,
		func(ctx context.Context) (*proto.ValidateRuntimeSpecResponse, error) {
			return r.stub.ValidateSpec(ctx, &proto.ValidateRuntimeSpecRequest{Spec: spec})
		})
}

// Remove uninstalls a runtime by name.
func (r *RuntimeClient) Remove(ctx context.Context, name string) error {
	if err := requireID("name", name); err != nil {
		return err
	}
	_, err := call.Invoke(ctx, proto.RuntimeService_Remove_FullMethodName, r.c.callTimeout,
		func(ctx context.Context) (*proto.RemoveRuntimeResponse, error) {
			return r.stub.Remove(ctx, &proto.RemoveRuntimeRequest{Name: name})
		})
	return err
}

// StreamingInstallFromGithub installs a runtime from GitHub and streams
// progress events; the final event carries the installed runtime.
func (r *RuntimeClient) StreamingInstallFromGithub(ctx context.Context, repository, ref string) (*call.Handle[proto.InstallEvent], error) {
	if err := validRepository(repository); err != nil {
		return nil, err
	}
	return call.Subscribe(ctx, r.c.streams, proto.RuntimeService_StreamingInstallFromGithub_FullMethodName,
		func(ctx context.Context) (grpc.ServerStreamingClient[proto.InstallEvent], error) {
			return r.stub.StreamingInstallFromGithub(ctx, &proto.InstallRuntimeFromGithubRequest{Repository: repository, Ref: ref})
		})
}

// StreamingInstallFromLocal installs a runtime from a daemon-host path and
// streams progress events.
func (r *RuntimeClient) StreamingInstallFromLocal(ctx context.Context, path string) (*call.Handle[proto.InstallEvent], error) {
	if err := requireID("path", path); err != nil {
		return nil, err
	}
	return call.Subscribe(ctx, r.c.streams, proto.RuntimeService_StreamingInstallFromLocal_FullMethodName,
		func(ctx context.Context) (grpc.ServerStreamingClient[proto.InstallEvent], error) {
			return r.stub.StreamingInstallFromLocal(ctx, &proto.InstallRuntimeFromLocalRequest{Path: path})
		})
}

// validRepository checks the owner/repo shape locally before any RPC.
func validRepository(repository string) error {
	owner, repo, ok := strings.Cut(repository, "/")
	if !ok || strings.TrimSpace(owner) == "" || strings.TrimSpace(repo) == "" || strings.Contains(repo, "/") {
		return &errdefs.ValidationError{Field: "repository", Reason: "must be in owner/repo form"}
	}
	return nil
}
