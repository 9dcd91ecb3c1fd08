// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import (
	"math"
	"strconv"
	"strings"
)

// ParseStringList splits raw on commas, trims every entry and drops empty
// ones. The second result is false when raw is empty, i.e. the list is absent.
// A raw value made only of separators yields a present, empty list.
func ParseStringList(raw string) ([]string, bool) {
	if raw == "" {
		return nil, false
	}

	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			list = append(list, item)
		}
	}

	return list, true
}

// ParseBool returns true iff raw is "true" (any case) or "1". Any other
// non-empty value is false. present is false only for empty input.
func ParseBool(raw string) (value bool, present bool) {
	if raw == "" {
		return false, false
	}

	return strings.ToLower(raw) == "true" || raw == "1", true
}

// radixPrefixes are the integer literal prefixes accepted by [ParseInteger].
var radixPrefixes = map[string]int{"0x": 16, "0o": 8, "0b": 2}

// ParseInteger returns the numeric value of raw when it reads as a finite
// number. Surrounding whitespace is ignored and a whitespace-only value is 0.
// Unsigned 0x/0o/0b integer literals are accepted. Empty, non-numeric, NaN
// and infinite values are reported as absent.
func ParseInteger(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, true
	}

	if len(trimmed) > 2 {
		if base, ok := radixPrefixes[strings.ToLower(trimmed[:2])]; ok {
			n, err := strconv.ParseUint(trimmed[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}

	// Go-only syntax: digit separators and signed or fractional hex.
	if strings.ContainsAny(trimmed, "_xXpP") {
		return 0, false
	}

	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}

	return n, true
}
