// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package values

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// StructFields returns the set of field names present in the struct.
func StructFields(in *structpb.Struct) map[string]struct{} {
	fields := make(map[string]struct{}, len(in.GetFields()))
	for f := range in.GetFields() {
		fields[f] = struct{}{}
	}
	return fields
}

// GetStringValue fetches a string field from the struct. A missing field
// is an error only when required is set; a present field of the wrong
// kind is always an error.
func GetStringValue(in *structpb.Struct, k string, required bool) (string, error) {
	v, ok := in.GetFields()[k]
	if !ok {
		if required {
			return "", fmt.Errorf("missing required value %q", k)
		}
		return "", nil
	}

	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("unexpected type for value %q: want string, got %T", k, v.GetKind())
	}

	return s.StringValue, nil
}
