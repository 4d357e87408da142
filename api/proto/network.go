package proto

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Network is a daemon-managed network jobs can be attached to.
type Network struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Driver    string    `json:"driver,omitempty"`
	Subnet    string    `json:"subnet,omitempty"`
	Gateway   string    `json:"gateway,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateNetworkRequest struct {
	Name   string `json:"name"`
	Driver string `json:"driver,omitempty"`
	Subnet string `json:"subnet,omitempty"`
}

type CreateNetworkResponse struct {
	Network *Network `json:"network"`
}

type ListNetworksRequest struct{}

type ListNetworksResponse struct {
	Networks []*Network `json:"networks,omitempty"`
}

type RemoveNetworkRequest struct {
	Name string `json:"name"`
}

type RemoveNetworkResponse struct{}

const (
	NetworkService_Create_FullMethodName = "/burrow.NetworkService/Create"
	NetworkService_List_FullMethodName   = "/burrow.NetworkService/List"
	NetworkService_Remove_FullMethodName = "/burrow.NetworkService/Remove"
)

// NetworkServiceClient is the client API for the burrow.NetworkService service.
type NetworkServiceClient interface {
	Create(ctx context.Context, in *CreateNetworkRequest, opts ...grpc.CallOption) (*CreateNetworkResponse, error)
	List(ctx context.Context, in *ListNetworksRequest, opts ...grpc.CallOption) (*ListNetworksResponse, error)
	Remove(ctx context.Context, in *RemoveNetworkRequest, opts ...grpc.CallOption) (*RemoveNetworkResponse, error)
}

type networkServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewNetworkServiceClient(cc grpc.ClientConnInterface) NetworkServiceClient {
	return &networkServiceClient{cc}
}

func (c *networkServiceClient) Create(ctx context.Context, in *CreateNetworkRequest, opts ...grpc.CallOption) (*CreateNetworkResponse, error) {
	out := new(CreateNetworkResponse)
	if err := c.cc.Invoke(ctx, NetworkService_Create_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *networkServiceClient) List(ctx context.Context, in *ListNetworksRequest, opts ...grpc.CallOption) (*ListNetworksResponse, error) {
	out := new(ListNetworksResponse)
	if err := c.cc.Invoke(ctx, NetworkService_List_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *networkServiceClient) Remove(ctx context.Context, in *RemoveNetworkRequest, opts ...grpc.CallOption) (*RemoveNetworkResponse, error) {
	out := new(RemoveNetworkResponse)
	if err := c.cc.Invoke(ctx, NetworkService_Remove_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// NetworkServiceServer is the server API for the burrow.NetworkService service.
type NetworkServiceServer interface {
	Create(context.Context, *CreateNetworkRequest) (*CreateNetworkResponse, error)
	List(context.Context, *ListNetworksRequest) (*ListNetworksResponse, error)
	Remove(context.Context, *RemoveNetworkRequest) (*RemoveNetworkResponse, error)
}

// UnimplementedNetworkServiceServer can be embedded for forward compatibility.
type UnimplementedNetworkServiceServer struct{}

func (UnimplementedNetworkServiceServer) Create(context.Context, *CreateNetworkRequest) (*CreateNetworkResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Create not implemented")
}
func (UnimplementedNetworkServiceServer) List(context.Context, *ListNetworksRequest) (*ListNetworksResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedNetworkServiceServer) Remove(context.Context, *RemoveNetworkRequest) (*RemoveNetworkResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Remove not implemented")
}

func RegisterNetworkServiceServer(s grpc.ServiceRegistrar, srv NetworkServiceServer) {
	s.RegisterService(&NetworkService_ServiceDesc, srv)
}

func _NetworkService_Create_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateNetworkRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NetworkServiceServer).Create(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: NetworkService_Create_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(NetworkServiceServer).Create(ctx, req.(*CreateNetworkRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NetworkService_List_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListNetworksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NetworkServiceServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: NetworkService_List_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(NetworkServiceServer).List(ctx, req.(*ListNetworksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NetworkService_Remove_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RemoveNetworkRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NetworkServiceServer).Remove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: NetworkService_Remove_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(NetworkServiceServer).Remove(ctx, req.(*RemoveNetworkRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// NetworkService_ServiceDesc is the grpc.ServiceDesc for the
// burrow.NetworkService service.
var NetworkService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "burrow.NetworkService",
	HandlerType: (*NetworkServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Create", Handler: _NetworkService_Create_Handler},
		{MethodName: "List", Handler: _NetworkService_List_Handler},
		{MethodName: "Remove", Handler: _NetworkService_Remove_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "burrow/network.json",
}
