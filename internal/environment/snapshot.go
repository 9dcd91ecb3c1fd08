// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
)

// Snapshot is an immutable view of environment variables taken at a single
// point in time. The zero value is an empty snapshot.
type Snapshot struct {
	vars map[string]string
}

// Capture reads os.Environ exactly once and returns it as a Snapshot.
func Capture() Snapshot {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = value
	}

	return Snapshot{vars: vars}
}

// FromMap builds a Snapshot from a copy of m.
func FromMap(m map[string]string) Snapshot {
	return Snapshot{vars: maps.Clone(m)}
}

// Get returns the raw value of name, or "" when it is unset.
func (s Snapshot) Get(name string) string {
	return s.vars[name]
}

// Lookup returns the raw value of name and whether it is present at all.
func (s Snapshot) Lookup(name string) (string, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// AnySet reports whether at least one of names has a non-empty value.
func (s Snapshot) AnySet(names ...string) bool {
	for _, name := range names {
		if s.vars[name] != "" {
			return true
		}
	}

	return false
}

// AllSet reports whether every one of names has a non-empty value.
func (s Snapshot) AllSet(names ...string) bool {
	for _, name := range names {
		if s.vars[name] == "" {
			return false
		}
	}

	return len(names) > 0
}

// Map returns a copy of the underlying variables.
func (s Snapshot) Map() map[string]string {
	if s.vars == nil {
		return map[string]string{}
	}

	return maps.Clone(s.vars)
}

// Names returns the variable names in sorted order.
func (s Snapshot) Names() []string {
	return slices.Sorted(maps.Keys(s.vars))
}

// Len returns the number of variables in the snapshot.
func (s Snapshot) Len() int {
	return len(s.vars)
}

// WithDotenv returns a new Snapshot extended with the variables found in the
// dotenv file at path. Variables already present in s win over the file, the
// same way a real process environment shadows a .env file.
func (s Snapshot) WithDotenv(path string) (Snapshot, error) {
	fileVars, err := godotenv.Read(path)
	if err != nil {
		return s, fmt.Errorf("%w %q: %w", ErrDotenv, path, err)
	}

	merged := make(map[string]string, len(fileVars)+len(s.vars))
	maps.Copy(merged, fileVars)
	maps.Copy(merged, s.vars)

	return Snapshot{vars: merged}, nil
}
