// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"os"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// VerifyFile reports whether the file at path belongs to this plugin,
// judged by its name alone. A rejected file is not an error; it simply
// is not ours to parse.
func (p *InventoryPlugin) VerifyFile(path string) bool {
	for _, suffix := range configSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	p.logger.WithField("path", path).Debug("inventory config filename must end with 'yacloud_compute.yml' or 'yacloud_compute.yaml'")
	return false
}

// loadConfigFile reads a YAML config file and normalizes it into a
// structpb.Struct for attribute extraction.
func loadConfigFile(path string) (*structpb.Struct, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "error reading config file %q: %s", path, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "error parsing config file %q: %s", path, err)
	}

	in, err := structpb.NewStruct(doc)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "error normalizing config file %q: %s", path, err)
	}

	return in, nil
}
