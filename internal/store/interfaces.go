// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/openclaw-configure/internal/document"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LayerReader loads optional configuration layers.
type LayerReader interface {
	// ReadLayer returns the document stored at path. The second result is
	// false when the file does not exist or does not hold a JSON object; such
	// layers are meant to be skipped, never treated as fatal.
	ReadLayer(path string) (document.Tree, bool)
}

// DocumentWriter persists the final configuration document.
type DocumentWriter interface {
	// Prepare creates every directory in dirs, including parents. It must be
	// called before Write.
	Prepare(dirs ...string) error

	// Write serializes doc into the config file and its backup, then
	// restricts both to owner read/write.
	Write(doc document.Tree) error
}
