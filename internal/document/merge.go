// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"fmt"

	"dario.cat/mergo"
)

// Merge deep-merges source over target and returns the result. Neither input
// is modified and the result shares no maps or slices with them.
//
// For a key present in both, two objects are merged recursively; in every
// other case the source value replaces the target value. Arrays are replaced
// as a whole, and explicit null or false values from source win as well.
func Merge(target, source Tree) (Tree, error) {
	out := target.Clone()
	if out == nil {
		out = Tree{}
	}

	if err := mergeInto(out, source); err != nil {
		return nil, err
	}

	return out, nil
}

// MergeLayers folds layers from lowest to highest priority. nil layers are
// skipped; on success the result is never nil.
func MergeLayers(layers ...Tree) (Tree, error) {
	out := Tree{}
	for i, layer := range layers {
		if layer == nil {
			continue
		}
		if err := mergeInto(out, layer); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}

	return out, nil
}

// mergeInto merges a private copy of src into dst, so dst never aliases src.
func mergeInto(dst, src Tree) error {
	if len(src) == 0 {
		return nil
	}

	m := map[string]any(dst)
	if err := mergo.Merge(&m, map[string]any(src.Clone()), mergo.WithOverride); err != nil {
		return fmt.Errorf("%w: %w", ErrMerge, err)
	}

	return nil
}
