// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package inventory

const (
	// PluginName is the identity token a config file must declare to
	// belong to this plugin.
	PluginName = "yacloud_compute"

	// ConstPlugin refers to the config field carrying the plugin
	// identity token.
	ConstPlugin = "plugin"

	// ConstClouds refers to the allow-list of cloud names.
	ConstClouds = "yacloud_clouds"

	// ConstFolders refers to the allow-list of folder names.
	ConstFolders = "yacloud_folders"

	// ConstGroupLabel refers to the instance label key used for group
	// assignment.
	ConstGroupLabel = "yacloud_group_label"

	// defaultGroup is the inventory group for instances when no
	// label-based group applies.
	defaultGroup = "yacloud"

	// connectionAddressVar is the host variable carrying the
	// connection address.
	connectionAddressVar = "ansible_host"

	// defaultPageSize bounds a single page of any list call.
	defaultPageSize = 1000
)

// configSuffixes are the file name suffixes that mark a config file as
// belonging to this plugin.
var configSuffixes = []string{
	"yacloud_compute.yml",
	"yacloud_compute.yaml",
}

var allowedConfigFields = map[string]struct{}{
	ConstPlugin:     {},
	ConstClouds:     {},
	ConstFolders:    {},
	ConstGroupLabel: {},
}
