package client

import (
	"context"

	"github.com/burrowlabs/burrow/api/proto"
	"github.com/burrowlabs/burrow/pkg/call"
)

// NetworkClient is the facade for the burrow.NetworkService domain.
type NetworkClient struct {
	stub proto.NetworkServiceClient
	c    *Client
}

// Create provisions a named network. Driver and subnet are optional; the
// daemon fills in defaults.
func (n *NetworkClient) Create(ctx context.Context, name, driver, subnet string) (*proto.Network, error) {
	if err := requireID("name", name); err != nil {
		return nil, err
	}
	resp, err := call.Invoke(ctx, proto.NetworkService_Create_FullMethodName, n.c.callTimeout,
		func(ctx context.Context) (*proto.CreateNetworkResponse, error) {
			return n.stub.Create(ctx, &proto.CreateNetworkRequest{Name: name, Driver: driver, Subnet: subnet})
		})
	if err != nil {
		return nil, err
	}
	return resp.Network, nil
}

// List returns all networks known to the daemon.
func (n *NetworkClient) List(ctx context.Context) ([]*proto.Network, error) {
	resp, err := call.Invoke(ctx, proto.NetworkService_List_FullMethodName, n.c.callTimeout,
		func(ctx context.Context) (*proto.ListNetworksResponse, error) {
			return n.stub.List(ctx, &proto.ListNetworksRequest{})
		})
	if err != nil {
		return nil, err
	}
	return resp.Networks, nil
}

// Remove deletes a network by name.
func (n *NetworkClient) Remove(ctx context.Context, name string) error {
	if err := requireID("name", name); err != nil {
		return err
	}
	_, err := call.Invoke(ctx, proto.NetworkService_Remove_FullMethodName, n.c.callTimeout,
		func(ctx context.Context) (*proto.RemoveNetworkResponse, error) {
			return n.stub.Remove(ctx, &proto.RemoveNetworkRequest{Name: name})
		})
	return err
}
