// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import "errors"

// ErrDotenv is returned by [Snapshot.WithDotenv] when the dotenv file cannot
// be read or parsed.
var ErrDotenv = errors.New("error reading dotenv file")
