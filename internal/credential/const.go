// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package credential

const (
	// ConstToken defines the attribute name for a literal OAuth token.
	ConstToken = "yacloud_token"

	// ConstTokenFile defines the attribute name for a file containing
	// the OAuth token.
	ConstTokenFile = "yacloud_token_file"
)
