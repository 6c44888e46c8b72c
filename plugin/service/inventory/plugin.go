// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/yacloud-contrib/yacloud-inventory/internal/credential"
)

// InventoryPlugin is a dynamic inventory source for Yandex Cloud
// compute instances.
type InventoryPlugin struct {
	logger *logrus.Logger

	endpoint  string
	plaintext bool

	// test client injection, bypassing SDK construction
	testCloudAPI    CloudAPI
	testFolderAPI   FolderAPI
	testInstanceAPI InstanceAPI
}

// NewInventoryPlugin builds an InventoryPlugin from the supplied
// options.
func NewInventoryPlugin(opt ...Option) (*InventoryPlugin, error) {
	opts, err := getOpts(opt...)
	if err != nil {
		return nil, err
	}
	return &InventoryPlugin{
		logger:          opts.WithLogger,
		endpoint:        opts.WithEndpoint,
		plaintext:       opts.WithPlaintext,
		testCloudAPI:    opts.WithCloudAPI,
		testFolderAPI:   opts.WithFolderAPI,
		testInstanceAPI: opts.WithInstanceAPI,
	}, nil
}

// Parse runs one inventory refresh: it loads the config file at path,
// resolves the credential, enumerates clouds, folders and instances in
// a single sequential pass, and registers groups and hosts with inv.
// The first error aborts the run; no partial inventory is produced
// beyond what was already registered.
func (p *InventoryPlugin) Parse(ctx context.Context, inv Inventory, path string) error {
	in, err := loadConfigFile(path)
	if err != nil {
		return err
	}

	attrs, err := getInventoryAttributes(in)
	if err != nil {
		return err
	}

	token, err := credential.NewConfig(attrs.CredentialAttributes).Resolve()
	if err != nil {
		return err
	}

	c, err := p.newClient(ctx, token)
	if err != nil {
		return err
	}

	clouds, err := c.listClouds(ctx, attrs.Clouds)
	if err != nil {
		return err
	}
	p.logger.WithField("count", len(clouds)).Debug("listed clouds")

	folders, err := c.listFolders(ctx, clouds, attrs.Folders)
	if err != nil {
		return err
	}
	p.logger.WithField("count", len(folders)).Debug("listed folders")

	instances, err := c.listInstances(ctx, folders)
	if err != nil {
		return err
	}
	p.logger.WithField("count", len(instances)).Debug("listed instances")

	populateHosts(inv, instances, attrs.GroupLabel)
	return nil
}
