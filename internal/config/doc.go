// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves the runtime settings of openclaw-configure itself:
// where the state, workspace, generated and custom files live, and how the
// run behaves (dry run, skipping persisted state, logging).
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (read from an [environment.Snapshot])
//  3. Command-line flags
//
// The main entry point is [GetSettings].
package config
