// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package plugin

import (
	"github.com/yacloud-contrib/yacloud-inventory/plugin/service/inventory"
)

// YacloudPlugin contains a collection of all Yandex Cloud plugin
// services.
type YacloudPlugin struct {
	// InventoryPlugin sources hosts dynamically from Yandex Cloud
	// compute instances.
	*inventory.InventoryPlugin
}

func NewYacloudPlugin(opt ...inventory.Option) (*YacloudPlugin, error) {
	inv, err := inventory.NewInventoryPlugin(opt...)
	if err != nil {
		return nil, err
	}
	return &YacloudPlugin{
		InventoryPlugin: inv,
	}, nil
}
