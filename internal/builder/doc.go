// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package builder turns an environment snapshot into a [document.Document].
//
// The builder is a fixed table of independent rules, one per integration.
// Each rule names the variables it reads, a guard deciding whether it
// applies, and an apply step writing only its own part of the document. No
// rule reads what another rule wrote, so the table order does not affect the
// result. After all rules ran, empty sections are pruned.
package builder
