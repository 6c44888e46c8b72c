// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	compute "github.com/yandex-cloud/go-genproto/yandex/cloud/compute/v1"
	resourcemanager "github.com/yandex-cloud/go-genproto/yandex/cloud/resourcemanager/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/testing/protocmp"
)

func TestListClouds(t *testing.T) {
	ctx := context.Background()

	all := []*resourcemanager.Cloud{
		testCloud("c1", "main-cloud"),
		testCloud("c2", "sandbox"),
		testCloud("c3", "legacy"),
	}

	cases := []struct {
		name          string
		api           *fakeCloudAPI
		allowed       []string
		expected      []*resourcemanager.Cloud
		expectedCalls int
		expectedErr   string
	}{
		{
			name:          "no allow-list returns full provider response",
			api:           &fakeCloudAPI{clouds: all},
			expected:      all,
			expectedCalls: 1,
		},
		{
			name:          "allow-list retains named clouds only",
			api:           &fakeCloudAPI{clouds: all},
			allowed:       []string{"sandbox", "absent"},
			expected:      []*resourcemanager.Cloud{testCloud("c2", "sandbox")},
			expectedCalls: 1,
		},
		{
			name:          "pagination follows next page token",
			api:           &fakeCloudAPI{clouds: all, pageSize: 2},
			expected:      all,
			expectedCalls: 2,
		},
		{
			name:        "transport error propagates",
			api:         &fakeCloudAPI{err: errors.New("connection refused")},
			expectedErr: "error listing clouds: connection refused",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require := require.New(t)

			c := &client{clouds: tc.api}
			actual, err := c.listClouds(ctx, tc.allowed)
			if tc.expectedErr != "" {
				require.Error(err)
				require.Contains(err.Error(), tc.expectedErr)
				require.Equal(codes.Unknown, status.Code(err))
				return
			}

			require.NoError(err)
			require.Empty(cmp.Diff(tc.expected, actual, protocmp.Transform()))
			require.Equal(tc.expectedCalls, tc.api.calls)
		})
	}
}

func TestListFolders(t *testing.T) {
	ctx := context.Background()

	clouds := []*resourcemanager.Cloud{
		testCloud("c1", "main-cloud"),
		testCloud("c2", "sandbox"),
	}
	api := &fakeFolderAPI{folders: map[string][]*resourcemanager.Folder{
		"c1": {
			testFolder("f1", "c1", "prod"),
			testFolder("f2", "c1", "staging"),
		},
		"c2": {
			testFolder("f3", "c2", "prod"),
			testFolder("f4", "c2", "scratch"),
		},
	}}

	t.Run("concatenated in cloud order, unfiltered", func(t *testing.T) {
		require := require.New(t)

		c := &client{folders: api}
		actual, err := c.listFolders(ctx, clouds, nil)
		require.NoError(err)
		require.Equal([]string{"c1", "c2"}, api.cloudIDs)

		expected := []*resourcemanager.Folder{
			testFolder("f1", "c1", "prod"),
			testFolder("f2", "c1", "staging"),
			testFolder("f3", "c2", "prod"),
			testFolder("f4", "c2", "scratch"),
		}
		require.Empty(cmp.Diff(expected, actual, protocmp.Transform()))
	})

	t.Run("allow-list filters the union across clouds", func(t *testing.T) {
		require := require.New(t)

		c := &client{folders: &fakeFolderAPI{folders: api.folders}}
		actual, err := c.listFolders(ctx, clouds, []string{"prod"})
		require.NoError(err)

		// "prod" exists in both clouds; both pass the global filter.
		expected := []*resourcemanager.Folder{
			testFolder("f1", "c1", "prod"),
			testFolder("f3", "c2", "prod"),
		}
		require.Empty(cmp.Diff(expected, actual, protocmp.Transform()))
	})

	t.Run("transport error propagates", func(t *testing.T) {
		require := require.New(t)

		c := &client{folders: &fakeFolderAPI{err: errors.New("deadline exceeded")}}
		_, err := c.listFolders(ctx, clouds, nil)
		require.Error(err)
		require.Contains(err.Error(), "error listing folders for cloud \"c1\"")
		require.Equal(codes.Unknown, status.Code(err))
	})
}

func TestListInstances(t *testing.T) {
	ctx := context.Background()

	folders := []*resourcemanager.Folder{
		testFolder("f1", "c1", "prod"),
		testFolder("f2", "c1", "staging"),
	}
	running := testInstance("web-1", compute.Instance_RUNNING, nil, testNIC("10.0.0.5", ""))
	stopped := testInstance("db-1", compute.Instance_STOPPED, nil, testNIC("10.0.0.6", ""))

	t.Run("concatenated in folder order, status not filtered", func(t *testing.T) {
		require := require.New(t)

		api := &fakeInstanceAPI{instances: map[string][]*compute.Instance{
			"f1": {running},
			"f2": {stopped},
		}}
		c := &client{instances: api}

		actual, err := c.listInstances(ctx, folders)
		require.NoError(err)
		require.Equal([]string{"f1", "f2"}, api.folderIDs)
		require.Empty(cmp.Diff([]*compute.Instance{running, stopped}, actual, protocmp.Transform()))
	})

	t.Run("empty folders contribute nothing", func(t *testing.T) {
		require := require.New(t)

		api := &fakeInstanceAPI{instances: map[string][]*compute.Instance{}}
		c := &client{instances: api}

		actual, err := c.listInstances(ctx, folders)
		require.NoError(err)
		require.Empty(actual)
	})

	t.Run("transport error propagates", func(t *testing.T) {
		require := require.New(t)

		c := &client{instances: &fakeInstanceAPI{err: errors.New("unavailable")}}
		_, err := c.listInstances(ctx, folders)
		require.Error(err)
		require.Contains(err.Error(), "error listing instances for folder \"f1\"")
		require.Equal(codes.Unknown, status.Code(err))
	})
}
