// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

// Package inventory provides an in-memory inventory store. It is the
// concrete form of the group/host/variable surface the plugin populates;
// an embedding automation tool either consumes it directly or adapts
// its own store to the same methods.
package inventory

// Data holds groups, their member hosts, and per-host variables for a
// single inventory run. Groups and hosts keep registration order. The
// zero value is not usable; use NewData.
type Data struct {
	groupOrder []string
	groups     map[string][]string
	hostVars   map[string]map[string]string
}

func NewData() *Data {
	return &Data{
		groups:   make(map[string][]string),
		hostVars: make(map[string]map[string]string),
	}
}

// AddGroup registers a group. Registering an already-known group is a
// no-op.
func (d *Data) AddGroup(name string) {
	if _, ok := d.groups[name]; ok {
		return
	}
	d.groups[name] = nil
	d.groupOrder = append(d.groupOrder, name)
}

// AddHost registers a host under a group, registering the group first
// if needed. Adding a host twice to the same group is a no-op.
func (d *Data) AddHost(name, group string) {
	d.AddGroup(group)
	for _, h := range d.groups[group] {
		if h == name {
			return
		}
	}
	d.groups[group] = append(d.groups[group], name)
}

// SetVariable assigns a variable on a host.
func (d *Data) SetVariable(host, key, value string) {
	vars, ok := d.hostVars[host]
	if !ok {
		vars = make(map[string]string)
		d.hostVars[host] = vars
	}
	vars[key] = value
}

// Groups returns group names in registration order.
func (d *Data) Groups() []string {
	out := make([]string, len(d.groupOrder))
	copy(out, d.groupOrder)
	return out
}

// Hosts returns the hosts registered under a group, in registration
// order. The result is nil for an unknown or empty group.
func (d *Data) Hosts(group string) []string {
	hosts := d.groups[group]
	if len(hosts) == 0 {
		return nil
	}
	out := make([]string, len(hosts))
	copy(out, hosts)
	return out
}

// Variable looks up a variable on a host.
func (d *Data) Variable(host, key string) (string, bool) {
	v, ok := d.hostVars[host][key]
	return v, ok
}
