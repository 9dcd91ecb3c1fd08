// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package document models the openclaw.json configuration document.
//
// Two representations are used:
//   - [Document] is the strongly typed tree produced from the environment.
//     Every section is a pointer so that absent sections disappear from the
//     serialized output, and [Document.Prune] removes sections left empty.
//   - [Tree] is the generic map form used for layers read from disk, which may
//     carry keys this package knows nothing about. Layers are combined with
//     [Merge] / [MergeLayers] and serialized with [Encode].
package document
