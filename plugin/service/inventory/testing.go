// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"context"
	"strconv"

	compute "github.com/yandex-cloud/go-genproto/yandex/cloud/compute/v1"
	resourcemanager "github.com/yandex-cloud/go-genproto/yandex/cloud/resourcemanager/v1"
	"google.golang.org/grpc"
)

// fakeCloudAPI serves a fixed cloud list, split into pages of pageSize
// when set. Page tokens are the integer offset of the next page.
type fakeCloudAPI struct {
	clouds   []*resourcemanager.Cloud
	pageSize int
	err      error
	calls    int
}

func (f *fakeCloudAPI) List(_ context.Context, req *resourcemanager.ListCloudsRequest, _ ...grpc.CallOption) (*resourcemanager.ListCloudsResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	start := 0
	if req.GetPageToken() != "" {
		start, _ = strconv.Atoi(req.GetPageToken())
	}
	end := len(f.clouds)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}
	resp := &resourcemanager.ListCloudsResponse{Clouds: f.clouds[start:end]}
	if end < len(f.clouds) {
		resp.NextPageToken = strconv.Itoa(end)
	}
	return resp, nil
}

// fakeFolderAPI serves folders keyed by cloud id and records the order
// of requested cloud ids.
type fakeFolderAPI struct {
	folders  map[string][]*resourcemanager.Folder
	err      error
	cloudIDs []string
}

func (f *fakeFolderAPI) List(_ context.Context, req *resourcemanager.ListFoldersRequest, _ ...grpc.CallOption) (*resourcemanager.ListFoldersResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.cloudIDs = append(f.cloudIDs, req.GetCloudId())
	return &resourcemanager.ListFoldersResponse{Folders: f.folders[req.GetCloudId()]}, nil
}

// fakeInstanceAPI serves instances keyed by folder id and records the
// order of requested folder ids.
type fakeInstanceAPI struct {
	instances map[string][]*compute.Instance
	err       error
	folderIDs []string
	calls     int
}

func (f *fakeInstanceAPI) List(_ context.Context, req *compute.ListInstancesRequest, _ ...grpc.CallOption) (*compute.ListInstancesResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.folderIDs = append(f.folderIDs, req.GetFolderId())
	return &compute.ListInstancesResponse{Instances: f.instances[req.GetFolderId()]}, nil
}

func testCloud(id, name string) *resourcemanager.Cloud {
	return &resourcemanager.Cloud{Id: id, Name: name}
}

func testFolder(id, cloudID, name string) *resourcemanager.Folder {
	return &resourcemanager.Folder{Id: id, CloudId: cloudID, Name: name}
}

func testInstance(name string, st compute.Instance_Status, labels map[string]string, nics ...*compute.NetworkInterface) *compute.Instance {
	return &compute.Instance{
		Id:                "epd" + name,
		Name:              name,
		Status:            st,
		Labels:            labels,
		NetworkInterfaces: nics,
	}
}

// testNIC builds a network interface with an internal address and an
// optional NAT address. Both empty means no primary IPv4 record at all.
func testNIC(internal, nat string) *compute.NetworkInterface {
	if internal == "" && nat == "" {
		return &compute.NetworkInterface{}
	}
	addr := &compute.PrimaryAddress{Address: internal}
	if nat != "" {
		addr.OneToOneNat = &compute.OneToOneNat{Address: nat}
	}
	return &compute.NetworkInterface{PrimaryV4Address: addr}
}
