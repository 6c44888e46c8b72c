// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/yacloud-contrib/yacloud-inventory/internal/credential"
	"github.com/yacloud-contrib/yacloud-inventory/internal/errors"
	"github.com/yacloud-contrib/yacloud-inventory/internal/values"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// InventoryAttributes defines the set of attributes accepted in an
// inventory config file.
type InventoryAttributes struct {
	*credential.CredentialAttributes

	// Clouds restricts enumeration to clouds with these names. Empty
	// means all clouds visible to the credential.
	Clouds []string

	// Folders restricts the combined folder list to these names. Empty
	// means all folders.
	Folders []string

	// GroupLabel is the instance label key used for group assignment.
	// Empty disables label-based grouping.
	GroupLabel string
}

// decodedAttributes is the mapstructure target for the non-credential
// config fields.
type decodedAttributes struct {
	Clouds     []string `mapstructure:"yacloud_clouds"`
	Folders    []string `mapstructure:"yacloud_folders"`
	GroupLabel string   `mapstructure:"yacloud_group_label"`
}

func getInventoryAttributes(in *structpb.Struct) (*InventoryAttributes, error) {
	unknownFields := values.StructFields(in)
	badFields := make(map[string]string)

	pluginName, err := values.GetStringValue(in, ConstPlugin, true)
	switch {
	case err != nil:
		badFields[fmt.Sprintf("attributes.%s", ConstPlugin)] = err.Error()
	case pluginName != PluginName:
		badFields[fmt.Sprintf("attributes.%s", ConstPlugin)] = fmt.Sprintf("must be %q", PluginName)
	}

	credAttributes, err := credential.GetCredentialAttributes(in)
	if err != nil {
		return nil, err
	}

	for s := range unknownFields {
		switch s {
		// Ignore knownFields from CredentialAttributes
		case credential.ConstToken:
			continue
		case credential.ConstTokenFile:
			continue
		default:
			if _, ok := allowedConfigFields[s]; !ok {
				badFields[fmt.Sprintf("attributes.%s", s)] = "unrecognized field"
			}
		}
	}

	if len(badFields) > 0 {
		return nil, errors.InvalidArgumentError("Invalid arguments in inventory config", badFields)
	}

	// Mapstructure complains if it expects a slice as output and sees a
	// scalar value, so a bare string allow-list entry is promoted to a
	// single-element list first.
	inMap := in.AsMap()
	for _, k := range []string{ConstClouds, ConstFolders} {
		if raw, ok := inMap[k]; ok {
			if s, ok := raw.(string); ok {
				inMap[k] = []string{s}
			}
		}
	}

	var decoded decodedAttributes
	if err := mapstructure.Decode(inMap, &decoded); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "error decoding inventory attributes: %s", err)
	}

	return &InventoryAttributes{
		CredentialAttributes: credAttributes,
		Clouds:               decoded.Clouds,
		Folders:              decoded.Folders,
		GroupLabel:           decoded.GroupLabel,
	}, nil
}
