// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrPrepareDirectory indicates that a required directory could not be
	// created.
	ErrPrepareDirectory = errors.New("error creating directory")
	// ErrWriteConfig indicates that the primary config file could not be
	// written.
	ErrWriteConfig = errors.New("error writing config file")
	// ErrWriteBackup indicates that the backup file could not be written.
	ErrWriteBackup = errors.New("error writing backup file")
)
