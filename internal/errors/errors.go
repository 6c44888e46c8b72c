// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package errors

import (
	"fmt"
	"sort"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InvalidArgumentError returns an InvalidArgument status error with the
// offending fields listed in the message, sorted by field name.
func InvalidArgumentError(msg string, badFields map[string]string) error {
	fields := make([]string, 0, len(badFields))
	for f := range badFields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, f := range fields {
		details = append(details, fmt.Sprintf("%s: %s", f, badFields[f]))
	}

	return status.Error(codes.InvalidArgument, fmt.Sprintf("%s: %s", msg, strings.Join(details, ", ")))
}
