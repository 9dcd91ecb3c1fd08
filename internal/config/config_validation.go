// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [Settings] satisfies all invariants
// before it is used at startup.
func (s *Settings) validate() error {
	if s.Paths.StateDir == "" || s.Paths.WorkspaceDir == "" || s.Paths.ConfigFile == "" {
		return ErrInvalidPaths
	}

	if _, err := s.Level(); err != nil {
		return err
	}

	return nil
}

// Level returns the zerolog level named by Run.LogLevel.
func (s *Settings) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(s.Run.LogLevel)
	if err != nil || s.Run.LogLevel == "" {
		return zerolog.NoLevel, fmt.Errorf("%w %q", ErrInvalidLogLevel, s.Run.LogLevel)
	}

	return level, nil
}
