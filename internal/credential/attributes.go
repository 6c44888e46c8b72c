// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package credential

import (
	"fmt"

	"github.com/yacloud-contrib/yacloud-inventory/internal/errors"
	"github.com/yacloud-contrib/yacloud-inventory/internal/values"
	"google.golang.org/protobuf/types/known/structpb"
)

// CredentialAttributes contain attributes used for authenticating to
// Yandex Cloud. Both fields are optional at this stage; resolution of
// the effective token is deferred to Config.Resolve.
type CredentialAttributes struct {
	// Token is a literal OAuth token.
	Token string

	// TokenFile is a path to a file containing the OAuth token. When
	// set it takes precedence over Token.
	TokenFile string
}

// GetCredentialAttributes extracts the credential fields from the
// supplied attributes struct.
func GetCredentialAttributes(in *structpb.Struct) (*CredentialAttributes, error) {
	badFields := make(map[string]string)

	token, err := values.GetStringValue(in, ConstToken, false)
	if err != nil {
		badFields[fmt.Sprintf("attributes.%s", ConstToken)] = err.Error()
	}

	tokenFile, err := values.GetStringValue(in, ConstTokenFile, false)
	if err != nil {
		badFields[fmt.Sprintf("attributes.%s", ConstTokenFile)] = err.Error()
	}

	if len(badFields) > 0 {
		return nil, errors.InvalidArgumentError("Error in the attributes provided", badFields)
	}

	return &CredentialAttributes{
		Token:     token,
		TokenFile: tokenFile,
	}, nil
}
