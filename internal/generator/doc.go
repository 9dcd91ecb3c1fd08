// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator runs a single configuration pass: it gathers the custom,
// persisted and environment layers, merges them in that order and persists
// the result.
package generator
