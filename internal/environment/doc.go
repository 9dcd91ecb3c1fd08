// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package environment captures the process environment once, as an immutable
// [Snapshot], and provides the lenient parsers used to turn raw variable
// values into typed configuration fragments.
//
// Parsers never fail: malformed input degrades to "absent" (or false for
// booleans) so a single bad variable can never abort configuration.
package environment
