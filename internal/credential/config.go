// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package credential

import (
	"os"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Config is the configuration for the Yandex Cloud credential.
type Config struct {
	// Token is a literal OAuth token.
	Token string

	// TokenFile is a path to a file containing the OAuth token.
	TokenFile string
}

// NewConfig returns a Config populated from credential attributes.
func NewConfig(attrs *CredentialAttributes) *Config {
	if attrs == nil {
		return &Config{}
	}
	return &Config{
		Token:     attrs.Token,
		TokenFile: attrs.TokenFile,
	}
}

// Resolve returns the effective OAuth token. A configured token file
// takes precedence over the literal token; its contents are read with
// surrounding whitespace trimmed. An empty result from both sources is
// a configuration error. No network call is made.
func (c *Config) Resolve() (string, error) {
	token := c.Token
	if c.TokenFile != "" {
		raw, err := os.ReadFile(c.TokenFile)
		if err != nil {
			return "", status.Errorf(codes.InvalidArgument, "error reading token file %q: %s", c.TokenFile, err)
		}
		token = strings.TrimSpace(string(raw))
	}

	if token == "" {
		return "", status.Errorf(codes.InvalidArgument, "token is empty: provide either %q or %q", ConstTokenFile, ConstToken)
	}

	return token, nil
}
