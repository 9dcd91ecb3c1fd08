// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import "errors"

var (
	// ErrNotObject is returned by [Decode] when the JSON value at the top
	// level is valid but is not an object.
	ErrNotObject = errors.New("configuration document must be a JSON object")
	// ErrInvalidJSON is returned by [Decode] for malformed input.
	ErrInvalidJSON = errors.New("invalid configuration JSON")
	// ErrMerge is returned by [Merge] and [MergeLayers] when two documents
	// cannot be combined.
	ErrMerge = errors.New("error merging configuration documents")
)
