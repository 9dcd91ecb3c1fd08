// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Tree is the generic form of a configuration document: nested objects are
// map[string]any, arrays are []any, numbers are json.Number.
type Tree map[string]any

// Decode parses data as a JSON object. Numbers are kept as json.Number so
// that values copied from user files are written back verbatim.
func Decode(data []byte) (Tree, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after top-level value", ErrInvalidJSON)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}

	return Tree(obj), nil
}

// Encode serializes t as two-space indented JSON terminated by a newline.
// Object keys are sorted, so equal trees always encode to identical bytes.
func Encode(t Tree) ([]byte, error) {
	if t == nil {
		t = Tree{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any(t)); err != nil {
		return nil, fmt.Errorf("error encoding configuration document: %w", err)
	}

	return buf.Bytes(), nil
}

// Tree converts the typed document into its generic form.
func (d *Document) Tree() (Tree, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("error marshaling configuration document: %w", err)
	}

	return Decode(data)
}

// Clone returns a deep copy of t.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}

	return Tree(cloneObject(t))
}

func cloneValue(v any) any {
	if obj, ok := asObject(v); ok {
		return cloneObject(obj)
	}
	if arr, ok := v.([]any); ok {
		out := make([]any, len(arr))
		for i, item := range arr {
			out[i] = cloneValue(item)
		}
		return out
	}

	return v
}

func cloneObject(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = cloneValue(v)
	}

	return out
}

// asObject reports whether v is a JSON object, in either its plain or its
// Tree form.
func asObject(v any) (map[string]any, bool) {
	switch obj := v.(type) {
	case map[string]any:
		return obj, obj != nil
	case Tree:
		return map[string]any(obj), obj != nil
	default:
		return nil, false
	}
}
