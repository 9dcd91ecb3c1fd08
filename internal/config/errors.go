// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [Settings.validate] when the merged settings
// are unusable.
var (
	// ErrInvalidPaths indicates that a required path resolved to an empty
	// string.
	ErrInvalidPaths = errors.New("invalid paths configuration")
	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
