// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package inventory

// Package inventory provides a dynamic inventory source that discovers
// Yandex Cloud compute instances and registers them with a host
// automation tool's inventory.
//
// The plugin has no CLI surface of its own. An embedding tool offers a
// candidate config file to VerifyFile and, when accepted, hands it to
// Parse together with an Inventory to populate. The config file is YAML,
// must end in "yacloud_compute.yml" or "yacloud_compute.yaml", and must
// declare `plugin: yacloud_compute`:
//
//	plugin: yacloud_compute
//	yacloud_token_file: /etc/yacloud/token
//	yacloud_clouds: [main-cloud]
//	yacloud_folders: [prod, staging]
//	yacloud_group_label: env
//
// A run is a single sequential pass: list clouds, list folders per
// cloud, list instances per folder, then map instances to inventory
// groups and hosts. Cloud and folder allow-lists are applied client
// side by resource name; the folder allow-list is applied to the union
// of folders across all selected clouds, not per cloud.
//
// Only RUNNING instances with a resolvable address become hosts. The
// connection address is taken from the first network interface carrying
// a primary IPv4 address, preferring its one-to-one NAT address over
// the internal one. The target group is the value of the configured
// group label when the instance carries it, otherwise the literal
// "yacloud" group.
//
// Any transport failure aborts the run; there is no retry and no
// partial inventory.
