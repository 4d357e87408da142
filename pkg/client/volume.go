package client

import (
	"context"

	"github.com/burrowlabs/burrow/api/proto"
	"github.com/burrowlabs/burrow/pkg/call"
)

// VolumeClient is the facade for the burrow.VolumeService domain.
type VolumeClient struct {
	stub proto.VolumeServiceClient
	c    *Client
}

// Create provisions a named volume. A zero sizeBytes leaves sizing to the
// daemon.
func (v *VolumeClient) Create(ctx context.Context, name, driver string, sizeBytes uint64, labels map[string]string) (*proto.Volume, error) {
	if err := requireID("name", name); err != nil {
		return nil, err
	}
	resp, err := call.Invoke(ctx, proto.VolumeService_Create_FullMethodName, v.c.callTimeout,
		func(ctx context.Context) (*proto.CreateVolumeResponse, error) {
			return v.stub.Create(ctx, &proto.CreateVolumeRequest{
				Name:      name,
				Driver:    driver,
				SizeBytes: sizeBytes,
				Labels:    labels,
			})
		})
	if err != nil {
		return nil, err
	}
	return resp.Volume, nil
}

// List returns all volumes known to the daemon.
func (v *VolumeClient) List(ctx context.Context) ([]*proto.Volume, error) {
	resp, err := call.Invoke(ctx, proto.VolumeService_List_FullMethodName, v.c.callTimeout,
		func(ctx context.Context) (*proto.ListVolumesResponse, error) {
			return v.stub.List(ctx, &proto.ListVolumesRequest{})
		})
	if err != nil {
		return nil, err
	}
	return resp.Volumes, nil
}

// Remove deletes a volume by name.
func (v *VolumeClient) Remove(ctx context.Context, name string) error {
	if err := requireID("name", name); err != nil {
		return err
	}
	_, err := call.Invoke(ctx, proto.VolumeService_Remove_FullMethodName, v.c.callTimeout,
		func(ctx context.Context) (*proto.RemoveVolumeResponse, error) {
			return v.stub.Remove(ctx, &proto.RemoveVolumeRequest{Name: name})
		})
	return err
}
