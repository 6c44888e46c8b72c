// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"context"

	compute "github.com/yandex-cloud/go-genproto/yandex/cloud/compute/v1"
	resourcemanager "github.com/yandex-cloud/go-genproto/yandex/cloud/resourcemanager/v1"
	ycsdk "github.com/yandex-cloud/go-sdk"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CloudAPI, FolderAPI and InstanceAPI are the slices of the Yandex
// Cloud service clients this plugin consumes. The generated clients in
// go-sdk/gen satisfy them directly.
type CloudAPI interface {
	List(ctx context.Context, req *resourcemanager.ListCloudsRequest, opts ...grpc.CallOption) (*resourcemanager.ListCloudsResponse, error)
}

type FolderAPI interface {
	List(ctx context.Context, req *resourcemanager.ListFoldersRequest, opts ...grpc.CallOption) (*resourcemanager.ListFoldersResponse, error)
}

type InstanceAPI interface {
	List(ctx context.Context, req *compute.ListInstancesRequest, opts ...grpc.CallOption) (*compute.ListInstancesResponse, error)
}

// client bundles the three service clients for one inventory run. The
// handles are created once and read-only thereafter.
type client struct {
	clouds    CloudAPI
	folders   FolderAPI
	instances InstanceAPI
}

// newClient builds the service clients from a resolved OAuth token.
// The SDK dials lazily, so construction makes no network call.
func (p *InventoryPlugin) newClient(ctx context.Context, token string) (*client, error) {
	if p.testCloudAPI != nil || p.testFolderAPI != nil || p.testInstanceAPI != nil {
		return &client{
			clouds:    p.testCloudAPI,
			folders:   p.testFolderAPI,
			instances: p.testInstanceAPI,
		}, nil
	}

	sdk, err := ycsdk.Build(ctx, ycsdk.Config{
		Credentials: ycsdk.OAuthToken(token),
		Endpoint:    p.endpoint,
		Plaintext:   p.plaintext,
	})
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "error building yandex cloud sdk: %s", err)
	}

	return &client{
		clouds:    sdk.ResourceManager().Cloud(),
		folders:   sdk.ResourceManager().Folder(),
		instances: sdk.Compute().Instance(),
	}, nil
}

// listClouds returns all clouds visible to the credential, in provider
// order, retaining only the allow-listed names when the allow-list is
// non-empty.
func (c *client) listClouds(ctx context.Context, allowed []string) ([]*resourcemanager.Cloud, error) {
	var clouds []*resourcemanager.Cloud
	req := &resourcemanager.ListCloudsRequest{PageSize: defaultPageSize}
	for {
		resp, err := c.clouds.List(ctx, req)
		if err != nil {
			return nil, status.Errorf(codes.Unknown, "error listing clouds: %s", err)
		}
		clouds = append(clouds, resp.GetClouds()...)
		if resp.GetNextPageToken() == "" {
			break
		}
		req.PageToken = resp.GetNextPageToken()
	}
	return filterByName(clouds, allowed), nil
}

// listFolders returns the folders of all given clouds, concatenated in
// cloud-iteration order. The allow-list applies to the combined set,
// not per cloud: a name matches regardless of which cloud the folder
// belongs to.
func (c *client) listFolders(ctx context.Context, clouds []*resourcemanager.Cloud, allowed []string) ([]*resourcemanager.Folder, error) {
	var folders []*resourcemanager.Folder
	for _, cloud := range clouds {
		req := &resourcemanager.ListFoldersRequest{
			CloudId:  cloud.GetId(),
			PageSize: defaultPageSize,
		}
		for {
			resp, err := c.folders.List(ctx, req)
			if err != nil {
				return nil, status.Errorf(codes.Unknown, "error listing folders for cloud %q: %s", cloud.GetId(), err)
			}
			folders = append(folders, resp.GetFolders()...)
			if resp.GetNextPageToken() == "" {
				break
			}
			req.PageToken = resp.GetNextPageToken()
		}
	}
	return filterByName(folders, allowed), nil
}

// listInstances returns the instances of all given folders,
// concatenated in folder-iteration order. No status filtering happens
// here; stopped instances are collected too.
func (c *client) listInstances(ctx context.Context, folders []*resourcemanager.Folder) ([]*compute.Instance, error) {
	var instances []*compute.Instance
	for _, folder := range folders {
		req := &compute.ListInstancesRequest{
			FolderId: folder.GetId(),
			PageSize: defaultPageSize,
		}
		for {
			resp, err := c.instances.List(ctx, req)
			if err != nil {
				return nil, status.Errorf(codes.Unknown, "error listing instances for folder %q: %s", folder.GetId(), err)
			}
			instances = append(instances, resp.GetInstances()...)
			if resp.GetNextPageToken() == "" {
				break
			}
			req.PageToken = resp.GetNextPageToken()
		}
	}
	return instances, nil
}

type named interface {
	GetName() string
}

// filterByName retains the records whose name is in the allow-list. An
// empty allow-list retains everything.
func filterByName[T named](in []T, allowed []string) []T {
	if len(allowed) == 0 {
		return in
	}
	out := make([]T, 0, len(in))
	for _, v := range in {
		if stringInSlice(allowed, v.GetName()) {
			out = append(out, v)
		}
	}
	return out
}

func stringInSlice(s []string, x string) bool {
	for _, y := range s {
		if x == y {
			return true
		}
	}
	return false
}
