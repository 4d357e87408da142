package proto

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RuntimeInfo describes an installed runtime.
type RuntimeInfo struct {
	Name        string    `json:"name"`
	Version     string    `json:"version,omitempty"`
	Description string    `json:"description,omitempty"`
	Source      string    `json:"source,omitempty"` // github repository or local path
	Healthy     bool      `json:"healthy"`
	InstalledAt time.Time `json:"installed_at"`
}

// RuntimeSpec declares how a runtime is built and invoked. It is authored by
// runtime packagers and validated by the daemon; the client passes it through.
type RuntimeSpec struct {
	Name         string            `json:"name"`
	Version      string            `json:"version,omitempty"`
	Description  string            `json:"description,omitempty"`
	BuildSteps   []string          `json:"build_steps,omitempty"`
	Entrypoint   []string          `json:"entrypoint,omitempty"`
	Env          map[string]string `json:"env,omitempty"`
	Dependencies []string          `json:"dependencies,omitempty"`
}

// InstallEvent is one entry of a streaming install.
type InstallEvent struct {
	Phase    string       `json:"phase"` // fetch, build, verify, register
	Message  string       `json:"message,omitempty"`
	Progress float64      `json:"progress,omitempty"` // 0.0 to 1.0
	Runtime  *RuntimeInfo `json:"runtime,omitempty"`  // set on the final event
}

type ListRuntimesRequest struct{}

type ListRuntimesResponse struct {
	Runtimes []*RuntimeInfo `json:"runtimes,omitempty"`
}

type GetRuntimeInfoRequest struct {
	Name string `json:"name"`
}

type GetRuntimeInfoResponse struct {
	Runtime *RuntimeInfo `json:"runtime"`
}

type TestRuntimeRequest struct {
	Name string `json:"name"`
}

type TestRuntimeResponse struct {
	Ok     bool   `json:"ok"`
	Output string `json:"output,omitempty"`
}

type InstallRuntimeFromGithubRequest struct {
	Repository string `json:"repository"` // owner/repo
	Ref        string `json:"ref,omitempty"`
}

type InstallRuntimeFromLocalRequest struct {
	Path string `json:"path"`
}

type InstallRuntimeResponse struct {
	Runtime *RuntimeInfo `json:"runtime"`
}

type ValidateRuntimeSpecRequest struct {
	Spec *RuntimeSpec `json:"spec"`
}

type ValidateRuntimeSpecResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

type RemoveRuntimeRequest struct {
	Name string `json:"name"`
}

type RemoveRuntimeResponse struct{}

const (
	RuntimeService_List_FullMethodName                       = "/burrow.RuntimeService/List"
	RuntimeService_GetInfo_FullMethodName                    = "/burrow.RuntimeService/GetInfo"
	RuntimeService_Test_FullMethodName                       = "/burrow.RuntimeService/Test"
	RuntimeService_InstallFromGithub_FullMethodName          = "/burrow.RuntimeService/InstallFromGithub"
	RuntimeService_InstallFromLocal_FullMethodName           = "/burrow.RuntimeService/InstallFromLocal"
	RuntimeService_ValidateSpec_FullMethodName               = "/burrow.RuntimeService/ValidateSpec"
	RuntimeService_Remove_FullMethodName                     = "/burrow.RuntimeService/Remove"
	RuntimeService_StreamingInstallFromGithub_FullMethodName = "/burrow.RuntimeService/StreamingInstallFromGithub"
	RuntimeService_StreamingInstallFromLocal_FullMethodName  = "/burrow.RuntimeService/StreamingInstallFromLocal"
)

// RuntimeServiceClient is the client API for the burrow.RuntimeService service.
type RuntimeServiceClient interface {
	List(ctx context.Context, in *ListRuntimesRequest, opts ...grpc.CallOption) (*ListRuntimesResponse, error)
	GetInfo(ctx context.Context, in *GetRuntimeInfoRequest, opts ...grpc.CallOption) (*GetRuntimeInfoResponse, error)
	Test(ctx context.Context, in *TestRuntimeRequest, opts ...grpc.CallOption) (*TestRuntimeResponse, error)
	InstallFromGithub(ctx context.Context, in *InstallRuntimeFromGithubRequest, opts ...grpc.CallOption) (*InstallRuntimeResponse, error)
	InstallFromLocal(ctx context.Context, in *InstallRuntimeFromLocalRequest, opts ...grpc.CallOption) (*InstallRuntimeResponse, error)
	ValidateSpec(ctx context.Context, in *ValidateRuntimeSpecRequest, opts ...grpc.CallOption) (*ValidateRuntimeSpecResponse, error)
	Remove(ctx context.Context, in *RemoveRuntimeRequest, opts ...grpc.CallOption) (*RemoveRuntimeResponse, error)
	StreamingInstallFromGithub(ctx context.Context, in *InstallRuntimeFromGithubRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[InstallEvent], error)
	StreamingInstallFromLocal(ctx context.Context, in *InstallRuntimeFromLocalRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[InstallEvent], error)
}

type runtimeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRuntimeServiceClient(cc grpc.ClientConnInterface) RuntimeServiceClient {
	return &runtimeServiceClient{cc}
}

func (c *runtimeServiceClient) List(ctx context.Context, in *ListRuntimesRequest, opts ...grpc.CallOption) (*ListRuntimesResponse, error) {
	out := new(ListRuntimesResponse)
	if err := c.cc.Invoke(ctx, RuntimeService_List_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeServiceClient) GetInfo(ctx context.Context, in *GetRuntimeInfoRequest, opts ...grpc.CallOption) (*GetRuntimeInfoResponse, error) {
	out := new(GetRuntimeInfoResponse)
	if err := c.cc.Invoke(ctx, RuntimeService_GetInfo_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeServiceClient) Test(ctx context.Context, in *TestRuntimeRequest, opts ...grpc.CallOption) (*TestRuntimeResponse, error) {
	out := new(TestRuntimeResponse)
	if err := c.cc.Invoke(ctx, RuntimeService_Test_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeServiceClient) InstallFromGithub(ctx context.Context, in *InstallRuntimeFromGithubRequest, opts ...grpc.CallOption) (*InstallRuntimeResponse, error) {
	out := new(InstallRuntimeResponse)
	if err := c.cc.Invoke(ctx, RuntimeService_InstallFromGithub_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeServiceClient) InstallFromLocal(ctx context.Context, in *InstallRuntimeFromLocalRequest, opts ...grpc.CallOption) (*InstallRuntimeResponse, error) {
	out := new(InstallRuntimeResponse)
	if err := c.cc.Invoke(ctx, RuntimeService_InstallFromLocal_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeServiceClient) ValidateSpec(ctx context.Context, in *ValidateRuntimeSpecRequest, opts ...grpc.CallOption) (*ValidateRuntimeSpecResponse, error) {
	out := new(ValidateRuntimeSpecResponse)
	if err := c.cc.Invoke(ctx, RuntimeService_ValidateSpec_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeServiceClient) Remove(ctx context.Context, in *RemoveRuntimeRequest, opts ...grpc.CallOption) (*RemoveRuntimeResponse, error) {
	out := new(RemoveRuntimeResponse)
	if err := c.cc.Invoke(ctx, RuntimeService_Remove_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeServiceClient) StreamingInstallFromGithub(ctx context.Context, in *InstallRuntimeFromGithubRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[InstallEvent], error) {
	stream, err := c.cc.NewStream(ctx, &RuntimeService_ServiceDesc.Streams[0], RuntimeService_StreamingInstallFromGithub_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[InstallRuntimeFromGithubRequest, InstallEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *runtimeServiceClient) StreamingInstallFromLocal(ctx context.Context, in *InstallRuntimeFromLocalRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[InstallEvent], error) {
	stream, err := c.cc.NewStream(ctx, &RuntimeService_ServiceDesc.Streams[1], RuntimeService_StreamingInstallFromLocal_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[InstallRuntimeFromLocalRequest, InstallEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// RuntimeServiceServer is the server API for the burrow.RuntimeService service.
type RuntimeServiceServer interface {
	List(context.Context, *ListRuntimesRequest) (*ListRuntimesResponse, error)
	GetInfo(context.Context, *GetRuntimeInfoRequest) (*GetRuntimeInfoResponse, error)
	Test(context.Context, *TestRuntimeRequest) (*TestRuntimeResponse, error)
	InstallFromGithub(context.Context, *InstallRuntimeFromGithubRequest) (*InstallRuntimeResponse, error)
	InstallFromLocal(context.Context, *InstallRuntimeFromLocalRequest) (*InstallRuntimeResponse, error)
	ValidateSpec(context.Context, *ValidateRuntimeSpecRequest) (*ValidateRuntimeSpecResponse, error)
	Remove(context.Context, *RemoveRuntimeRequest) (*RemoveRuntimeResponse, error)
	StreamingInstallFromGithub(*InstallRuntimeFromGithubRequest, grpc.ServerStreamingServer[InstallEvent]) error
	StreamingInstallFromLocal(*InstallRuntimeFromLocalRequest, grpc.ServerStreamingServer[InstallEvent]) error
}

// UnimplementedRuntimeServiceServer can be embedded for forward compatibility.
type UnimplementedRuntimeServiceServer struct{}

func (UnimplementedRuntimeServiceServer) List(context.Context, *ListRuntimesRequest) (*ListRuntimesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedRuntimeServiceServer) GetInfo(context.Context, *GetRuntimeInfoRequest) (*GetRuntimeInfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetInfo not implemented")
}
func (UnimplementedRuntimeServiceServer) Test(context.Context, *TestRuntimeRequest) (*TestRuntimeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Test not implemented")
}
func (UnimplementedRuntimeServiceServer) InstallFromGithub(context.Context, *InstallRuntimeFromGithubRequest) (*InstallRuntimeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InstallFromGithub not implemented")
}
func (UnimplementedRuntimeServiceServer) InstallFromLocal(context.Context, *InstallRuntimeFromLocalRequest) (*InstallRuntimeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InstallFromLocal not implemented")
}
func (UnimplementedRuntimeServiceServer) ValidateSpec(context.Context, *ValidateRuntimeSpecRequest) (*ValidateRuntimeSpecResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateSpec not implemented")
}
func (UnimplementedRuntimeServiceServer) Remove(context.Context, *RemoveRuntimeRequest) (*RemoveRuntimeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Remove not implemented")
}
func (UnimplementedRuntimeServiceServer) StreamingInstallFromGithub(*InstallRuntimeFromGithubRequest, grpc.ServerStreamingServer[InstallEvent]) error {
	return status.Errorf(codes.Unimplemented, "method StreamingInstallFromGithub not implemented")
}
func (UnimplementedRuntimeServiceServer) StreamingInstallFromLocal(*InstallRuntimeFromLocalRequest, grpc.ServerStreamingServer[InstallEvent]) error {
	return status.Errorf(codes.Unimplemented, "method StreamingInstallFromLocal not implemented")
}

func RegisterRuntimeServiceServer(s grpc.ServiceRegistrar, srv RuntimeServiceServer) {
	s.RegisterService(&RuntimeService_ServiceDesc, srv)
}

func _RuntimeService_List_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListRuntimesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServiceServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RuntimeService_List_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RuntimeServiceServer).List(ctx, req.(*ListRuntimesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RuntimeService_GetInfo_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetRuntimeInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServiceServer).GetInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RuntimeService_GetInfo_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RuntimeServiceServer).GetInfo(ctx, req.(*GetRuntimeInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RuntimeService_Test_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TestRuntimeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServiceServer).Test(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RuntimeService_Test_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RuntimeServiceServer).Test(ctx, req.(*TestRuntimeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RuntimeService_InstallFromGithub_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(InstallRuntimeFromGithubRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServiceServer).InstallFromGithub(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RuntimeService_InstallFromGithub_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RuntimeServiceServer).InstallFromGithub(ctx, req.(*InstallRuntimeFromGithubRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RuntimeService_InstallFromLocal_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(InstallRuntimeFromLocalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServiceServer).InstallFromLocal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RuntimeService_InstallFromLocal_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RuntimeServiceServer).InstallFromLocal(ctx, req.(*InstallRuntimeFromLocalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RuntimeService_ValidateSpec_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ValidateRuntimeSpecRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServiceServer).ValidateSpec(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RuntimeService_ValidateSpec_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RuntimeServiceServer).ValidateSpec(ctx, req.(*ValidateRuntimeSpecRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RuntimeService_Remove_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RemoveRuntimeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServiceServer).Remove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RuntimeService_Remove_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RuntimeServiceServer).Remove(ctx, req.(*RemoveRuntimeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RuntimeService_StreamingInstallFromGithub_Handler(srv any, stream grpc.ServerStream) error {
	m := new(InstallRuntimeFromGithubRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(RuntimeServiceServer).StreamingInstallFromGithub(m, &grpc.GenericServerStream[InstallRuntimeFromGithubRequest, InstallEvent]{ServerStream: stream})
}

func _RuntimeService_StreamingInstallFromLocal_Handler(srv any, stream grpc.ServerStream) error {
	m := new(InstallRuntimeFromLocalRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(RuntimeServiceServer).StreamingInstallFromLocal(m, &grpc.GenericServerStream[InstallRuntimeFromLocalRequest, InstallEvent]{ServerStream: stream})
}

// RuntimeService_ServiceDesc is the grpc.ServiceDesc for the
// burrow.RuntimeService service. Stream indices are referenced by the client
// stubs above.
var RuntimeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "burrow.RuntimeService",
	HandlerType: (*RuntimeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "List", Handler: _RuntimeService_List_Handler},
		{MethodName: "GetInfo", Handler: _RuntimeService_GetInfo_Handler},
		{MethodName: "Test", Handler: _RuntimeService_Test_Handler},
		{MethodName: "InstallFromGithub", Handler: _RuntimeService_InstallFromGithub_Handler},
		{MethodName: "InstallFromLocal", Handler: _RuntimeService_InstallFromLocal_Handler},
		{MethodName: "ValidateSpec", Handler: _RuntimeService_ValidateSpec_Handler},
		{MethodName: "Remove", Handler: _RuntimeService_Remove_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "StreamingInstallFromGithub", Handler: _RuntimeService_StreamingInstallFromGithub_Handler, ServerStreams: true},
		{StreamName: "StreamingInstallFromLocal", Handler: _RuntimeService_StreamingInstallFromLocal_Handler, ServerStreams: true},
	},
	Metadata: "burrow/runtime.json",
}
