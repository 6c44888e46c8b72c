// Copyright (c) The yacloud-inventory Authors
// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"github.com/sirupsen/logrus"
)

// Options = how options are represented
type Options struct {
	WithLogger      *logrus.Logger
	WithEndpoint    string
	WithPlaintext   bool
	WithCloudAPI    CloudAPI
	WithFolderAPI   FolderAPI
	WithInstanceAPI InstanceAPI
}

// getOpts - iterate the inbound Options and return a struct
func getOpts(opts ...Option) (*Options, error) {
	defaultOptions := getDefaultOptions()
	for _, opt := range opts {
		if err := opt(defaultOptions); err != nil {
			return nil, err
		}
	}
	return defaultOptions, nil
}

// Option - how Options are passed as arguments
type Option func(*Options) error

func getDefaultOptions() *Options {
	return &Options{
		WithLogger: logrus.New(),
	}
}

// WithLogger sets the logger used for per-stage debug output.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) error {
		o.WithLogger = l
		return nil
	}
}

// WithEndpoint overrides the Yandex Cloud API endpoint.
func WithEndpoint(endpoint string) Option {
	return func(o *Options) error {
		o.WithEndpoint = endpoint
		return nil
	}
}

// WithPlaintext disables TLS on the API connection. Intended for tests
// against a local fake endpoint.
func WithPlaintext(plaintext bool) Option {
	return func(o *Options) error {
		o.WithPlaintext = plaintext
		return nil
	}
}

// WithCloudAPI injects a cloud service client, bypassing SDK
// construction. Intended for tests.
func WithCloudAPI(api CloudAPI) Option {
	return func(o *Options) error {
		o.WithCloudAPI = api
		return nil
	}
}

// WithFolderAPI injects a folder service client. Intended for tests.
func WithFolderAPI(api FolderAPI) Option {
	return func(o *Options) error {
		o.WithFolderAPI = api
		return nil
	}
}

// WithInstanceAPI injects an instance service client. Intended for tests.
func WithInstanceAPI(api InstanceAPI) Option {
	return func(o *Options) error {
		o.WithInstanceAPI = api
		return nil
	}
}
