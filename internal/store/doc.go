// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store reads configuration layers from disk and persists the final
// document.
//
// All file access goes through an afero.Fs, so tests can run against an
// in-memory file system. Reading is best effort: a missing or malformed
// layer is skipped and logged. Writing is strict, except that failing to
// restrict file permissions is only logged as a warning.
package store
