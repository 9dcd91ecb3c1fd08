// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"

	"github.com/MKhiriev/openclaw-configure/internal/document"
	"github.com/MKhiriev/openclaw-configure/internal/logger"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o600
)

// Paths are the files written by [FileStore.Write].
type Paths struct {
	ConfigFile string
	BackupFile string
}

// FileStore implements [LayerReader] and [DocumentWriter] on top of an
// afero.Fs.
type FileStore struct {
	fs    afero.Fs
	paths Paths
	log   *logger.Logger
}

var (
	_ LayerReader    = (*FileStore)(nil)
	_ DocumentWriter = (*FileStore)(nil)
)

// NewFileStore constructs a FileStore. Use afero.NewOsFs() for the real file
// system.
func NewFileStore(fs afero.Fs, paths Paths, log *logger.Logger) *FileStore {
	return &FileStore{
		fs:    fs,
		paths: paths,
		log:   log.Component("store"),
	}
}

// ReadLayer reads the JSON (or JSONC) document at path.
func (s *FileStore) ReadLayer(path string) (document.Tree, bool) {
	if path == "" {
		return nil, false
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug().Str("path", path).Msg("layer file not found, skipping")
		} else {
			s.log.Warn().Err(err).Str("path", path).Msg("layer file unreadable, skipping")
		}
		return nil, false
	}

	tree, err := document.Decode(jsonc.ToJSON(data))
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("layer file is not a valid JSON object, skipping")
		return nil, false
	}

	return tree, true
}

// Prepare creates dirs recursively. Empty entries are ignored.
func (s *FileStore) Prepare(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("%w %s: %w", ErrPrepareDirectory, dir, err)
		}
	}

	return nil
}

// Write encodes doc and writes it to the config file and the backup file.
func (s *FileStore) Write(doc document.Tree) error {
	data, err := document.Encode(doc)
	if err != nil {
		return err
	}

	if err := afero.WriteFile(s.fs, s.paths.ConfigFile, data, filePerm); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteConfig, s.paths.ConfigFile, err)
	}
	s.log.Info().Str("path", s.paths.ConfigFile).Int("bytes", len(data)).Msg("wrote config")

	if s.paths.BackupFile != "" {
		if err := afero.WriteFile(s.fs, s.paths.BackupFile, data, filePerm); err != nil {
			return fmt.Errorf("%w %s: %w", ErrWriteBackup, s.paths.BackupFile, err)
		}
		s.log.Debug().Str("path", s.paths.BackupFile).Msg("wrote backup")
	}

	// WriteFile only applies the mode to newly created files.
	s.restrict(s.paths.ConfigFile, s.paths.BackupFile)

	return nil
}

func (s *FileStore) restrict(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := s.fs.Chmod(p, filePerm); err != nil {
			s.log.Warn().Err(err).Str("path", p).Msg("could not set file permissions")
		}
	}
}
