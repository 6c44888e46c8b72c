// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	compute "github.com/yandex-cloud/go-genproto/yandex/cloud/compute/v1"
)

// Inventory is the output surface of a run, provided by the embedding
// automation tool. AddGroup must be idempotent by name.
type Inventory interface {
	AddGroup(name string)
	AddHost(name, group string)
	SetVariable(host, key, value string)
}

// instanceAddress resolves the connection address of an instance. The
// first interface carrying a primary IPv4 address wins: its NAT address
// when a one-to-one NAT mapping exists, otherwise the internal address.
// Later interfaces are never considered, even if one of them would
// offer a NAT address. Returns "" when no interface qualifies.
func instanceAddress(instance *compute.Instance) string {
	for _, iface := range instance.GetNetworkInterfaces() {
		address := iface.GetPrimaryV4Address()
		if address == nil {
			continue
		}
		if nat := address.GetOneToOneNat(); nat != nil {
			return nat.GetAddress()
		}
		return address.GetAddress()
	}
	return ""
}

// populateHosts maps enumerated instances into the inventory. The group
// is the value of the configured group label when the instance carries
// it, otherwise the default group; the group is registered for every
// instance. Only RUNNING instances with a resolvable address become
// hosts. Skipping is silent: it is expected filtering, not a failure.
func populateHosts(inv Inventory, instances []*compute.Instance, groupLabel string) {
	for _, instance := range instances {
		group := defaultGroup
		if groupLabel != "" {
			if v, ok := instance.GetLabels()[groupLabel]; ok {
				group = v
			}
		}

		inv.AddGroup(group)

		if instance.GetStatus() != compute.Instance_RUNNING {
			continue
		}
		address := instanceAddress(instance)
		if address == "" {
			continue
		}

		inv.AddHost(instance.GetName(), group)
		inv.SetVariable(instance.GetName(), connectionAddressVar, address)
	}
}
