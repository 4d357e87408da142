package proto

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Volume is a daemon-managed volume jobs can mount.
type Volume struct {
	Id        string            `json:"id"`
	Name      string            `json:"name"`
	Driver    string            `json:"driver,omitempty"`
	SizeBytes uint64            `json:"size_bytes,omitempty"`
	Labels    map[string]string `json:"labels,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

type CreateVolumeRequest struct {
	Name      string            `json:"name"`
	Driver    string            `json:"driver,omitempty"`
	SizeBytes uint64            `json:"size_bytes,omitempty"`
	Labels    map[string]string `json:"labels,omitempty"`
}

type CreateVolumeResponse struct {
	Volume *Volume `json:"volume"`
}

type ListVolumesRequest struct{}

type ListVolumesResponse struct {
	Volumes []*Volume `json:"volumes,omitempty"`
}

type RemoveVolumeRequest struct {
	Name string `json:"name"`
}

type RemoveVolumeResponse struct{}

const (
	VolumeService_Create_FullMethodName = "/burrow.VolumeService/Create"
	VolumeService_List_FullMethodName   = "/burrow.VolumeService/List"
	VolumeService_Remove_FullMethodName = "/burrow.VolumeService/Remove"
)

// VolumeServiceClient is the client API for the burrow.VolumeService service.
type VolumeServiceClient interface {
	Create(ctx context.Context, in *CreateVolumeRequest, opts ...grpc.CallOption) (*CreateVolumeResponse, error)
	List(ctx context.Context, in *ListVolumesRequest, opts ...grpc.CallOption) (*ListVolumesResponse, error)
	Remove(ctx context.Context, in *RemoveVolumeRequest, opts ...grpc.CallOption) (*RemoveVolumeResponse, error)
}

type volumeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVolumeServiceClient(cc grpc.ClientConnInterface) VolumeServiceClient {
	return &volumeServiceClient{cc}
}

func (c *volumeServiceClient) Create(ctx context.Context, in *CreateVolumeRequest, opts ...grpc.CallOption) (*CreateVolumeResponse, error) {
	out := new(CreateVolumeResponse)
	if err := c.cc.Invoke(ctx, VolumeService_Create_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *volumeServiceClient) List(ctx context.Context, in *ListVolumesRequest, opts ...grpc.CallOption) (*ListVolumesResponse, error) {
	out := new(ListVolumesResponse)
	if err := c.cc.Invoke(ctx, VolumeService_List_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *volumeServiceClient) Remove(ctx context.Context, in *RemoveVolumeRequest, opts ...grpc.CallOption) (*RemoveVolumeResponse, error) {
	out := new(RemoveVolumeResponse)
	if err := c.cc.Invoke(ctx, VolumeService_Remove_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// VolumeServiceServer is the server API for the burrow.VolumeService service.
type VolumeServiceServer interface {
	Create(context.Context, *CreateVolumeRequest) (*CreateVolumeResponse, error)
	List(context.Context, *ListVolumesRequest) (*ListVolumesResponse, error)
	Remove(context.Context, *RemoveVolumeRequest) (*RemoveVolumeResponse, error)
}

// UnimplementedVolumeServiceServer can be embedded for forward compatibility.
type UnimplementedVolumeServiceServer struct{}

func (UnimplementedVolumeServiceServer) Create(context.Context, *CreateVolumeRequest) (*CreateVolumeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Create not implemented")
}
func (UnimplementedVolumeServiceServer) List(context.Context, *ListVolumesRequest) (*ListVolumesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedVolumeServiceServer) Remove(context.Context, *RemoveVolumeRequest) (*RemoveVolumeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Remove not implemented")
}

func RegisterVolumeServiceServer(s grpc.ServiceRegistrar, srv VolumeServiceServer) {
	s.RegisterService(&VolumeService_ServiceDesc, srv)
}

func _VolumeService_Create_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateVolumeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VolumeServiceServer).Create(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: VolumeService_Create_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VolumeServiceServer).Create(ctx, req.(*CreateVolumeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VolumeService_List_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListVolumesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VolumeServiceServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: VolumeService_List_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VolumeServiceServer).List(ctx, req.(*ListVolumesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VolumeService_Remove_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RemoveVolumeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VolumeServiceServer).Remove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: VolumeService_Remove_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VolumeServiceServer).Remove(ctx, req.(*RemoveVolumeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// VolumeService_ServiceDesc is the grpc.ServiceDesc for the
// burrow.VolumeService service.
var VolumeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "burrow.VolumeService",
	HandlerType: (*VolumeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Create", Handler: _VolumeService_Create_Handler},
		{MethodName: "List", Handler: _VolumeService_List_Handler},
		{MethodName: "Remove", Handler: _VolumeService_Remove_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "burrow/volume.json",
}
